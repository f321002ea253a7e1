package capture

import (
	"time"

	"github.com/robotalks/xy2.go/pkg/xy2"
)

// DefaultClock is the XY2-100 clock period (2 MHz).
const DefaultClock = 500 * time.Nanosecond

// Synthesizer generates parallel samples of frames with the XY2-100 SYNC
// cadence: SYNC active for bits 0..18 and inactive on bit 19.
type Synthesizer struct {
	Lanes xy2.LaneMap
	Sync  xy2.SyncConvention
	Clock time.Duration

	now     time.Duration
	started bool
}

// NewSynthesizer creates a Synthesizer with the default clock.
func NewSynthesizer(lanes xy2.LaneMap, sync xy2.SyncConvention) *Synthesizer {
	return &Synthesizer{Lanes: lanes, Sync: sync, Clock: DefaultClock}
}

func (s *Synthesizer) syncBit(active bool) uint32 {
	if active != (s.Sync.Polarity == xy2.SyncFalling) {
		return 1 << s.Lanes.Sync
	}
	return 0
}

func (s *Synthesizer) sample(word uint32) xy2.ParallelSample {
	sample := xy2.ParallelSample{Timestamp: s.now, Word: word}
	s.now += s.Clock
	return sample
}

// Idle generates n samples with SYNC inactive and all data lanes low.
func (s *Synthesizer) Idle(n int) []xy2.ParallelSample {
	samples := make([]xy2.ParallelSample, 0, n)
	for i := 0; i < n; i++ {
		samples = append(samples, s.sample(s.syncBit(false)))
	}
	s.started = true
	return samples
}

// Frames generates one frame period carrying frames of the axes. Axes
// without a frame stay low. The first call is preceded by an idle sample.
func (s *Synthesizer) Frames(frames map[xy2.Axis]xy2.RawFrame) []xy2.ParallelSample {
	var samples []xy2.ParallelSample
	if !s.started {
		samples = s.Idle(1)
	}
	for i := 0; i < xy2.FrameBits; i++ {
		word := s.syncBit(i < xy2.FrameBits-1)
		for axis, f := range frames {
			if lane, ok := s.Lanes.Data[axis]; ok && f.Bits[i] {
				word |= 1 << lane
			}
		}
		samples = append(samples, s.sample(word))
	}
	return samples
}

// Now returns the timestamp of the next sample.
func (s *Synthesizer) Now() time.Duration {
	return s.now
}

// Ramp returns the frames of period i of a test pattern: each axis ramps by
// step per period, offset by a quarter of the range per axis.
func Ramp(mode xy2.FrameMode, axes []xy2.Axis, i int, step uint32) map[xy2.Axis]xy2.RawFrame {
	span := uint32(1) << uint(mode.Width())
	frames := make(map[xy2.Axis]xy2.RawFrame, len(axes))
	for _, axis := range axes {
		pos := (uint32(i)*step + uint32(axis)*(span/4)) % span
		frames[axis] = xy2.Decoder{}.Encode(mode, pos)
	}
	return frames
}
