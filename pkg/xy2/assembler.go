package xy2

import (
	"fmt"
	"io"
	"strings"
)

// SyncPolarity defines which SYNC transition starts a frame.
type SyncPolarity int

const (
	// SyncRising starts a frame on a low to high SYNC transition.
	SyncRising SyncPolarity = iota
	// SyncFalling starts a frame on a high to low SYNC transition.
	SyncFalling
)

// String implements fmt.Stringer.
func (p SyncPolarity) String() string {
	if p == SyncFalling {
		return "falling"
	}
	return "rising"
}

// ParseSyncPolarity parses "rising" or "falling".
func ParseSyncPolarity(s string) (SyncPolarity, error) {
	switch strings.ToLower(s) {
	case "rising", "":
		return SyncRising, nil
	case "falling":
		return SyncFalling, nil
	}
	return SyncRising, fmt.Errorf("invalid sync polarity %q", s)
}

// SyncConvention describes how the SYNC lane delimits frames.
// The sample carrying the start edge holds bit 0 of the frame.
type SyncConvention struct {
	Polarity SyncPolarity
}

// IsStart checks if the transition prev -> cur starts a frame.
func (c SyncConvention) IsStart(prev, cur bool) bool {
	if c.Polarity == SyncFalling {
		return prev && !cur
	}
	return !prev && cur
}

type assembleState int

const (
	stateUnprimed   assembleState = iota // previous SYNC level unknown
	stateIdle                            // waiting for a frame start edge
	stateCollecting                      // collecting data bits
)

// Assembler groups bit samples into frames using the SYNC lane.
type Assembler struct {
	Sync SyncConvention

	state    assembleState
	prevSync bool
	frame    RawFrame
	count    int
}

// NewAssembler creates an Assembler.
func NewAssembler(sync SyncConvention) *Assembler {
	return &Assembler{Sync: sync}
}

// Pending returns the number of bits collected for the current frame.
func (a *Assembler) Pending() int {
	if a.state != stateCollecting {
		return 0
	}
	return a.count
}

// Reset drops all state including the previous SYNC level.
func (a *Assembler) Reset() {
	a.state, a.count, a.frame = stateUnprimed, 0, RawFrame{}
}

// Push consumes one sample. It returns the frame when its last bit arrives.
// A *ResyncError is returned when a start edge interrupts a frame, in which
// case the new frame is already started with this sample.
func (a *Assembler) Push(s BitSample) (*RawFrame, error) {
	prev := a.prevSync
	a.prevSync = s.Sync
	switch a.state {
	case stateUnprimed:
		a.state = stateIdle
	case stateIdle:
		if a.Sync.IsStart(prev, s.Sync) {
			a.begin(s)
		}
	case stateCollecting:
		if a.Sync.IsStart(prev, s.Sync) {
			err := &ResyncError{Bits: a.count, Start: a.frame.Start, At: s.Timestamp}
			a.begin(s)
			return nil, err
		}
		a.append(s)
		if a.count >= FrameBits {
			return a.frameReady(), nil
		}
	}
	return nil, nil
}

// End notifies the input is exhausted. A pending partial frame is dropped
// and reported as *TruncatedError.
func (a *Assembler) End() error {
	if a.state != stateCollecting {
		return nil
	}
	err := &TruncatedError{Bits: a.count, Start: a.frame.Start}
	a.state, a.count, a.frame = stateIdle, 0, RawFrame{}
	return err
}

func (a *Assembler) begin(s BitSample) {
	a.frame, a.count = RawFrame{Start: s.Timestamp}, 0
	a.state = stateCollecting
	a.append(s)
}

func (a *Assembler) append(s BitSample) {
	a.frame.Bits[a.count] = s.Data
	a.frame.Sync[a.count] = s.Sync
	a.frame.End = s.Timestamp
	a.count++
}

func (a *Assembler) frameReady() *RawFrame {
	f := a.frame
	a.state, a.count, a.frame = stateIdle, 0, RawFrame{}
	return &f
}

// Source provides bit samples in timestamp order.
// NextSample returns io.EOF when exhausted.
type Source interface {
	NextSample() (BitSample, error)
}

// SourceFunc is func form of Source.
type SourceFunc func() (BitSample, error)

// NextSample implements Source.
func (f SourceFunc) NextSample() (BitSample, error) {
	return f()
}

// SliceSource returns a Source over samples.
func SliceSource(samples []BitSample) Source {
	var n int
	return SourceFunc(func() (BitSample, error) {
		if n >= len(samples) {
			return BitSample{}, io.EOF
		}
		n++
		return samples[n-1], nil
	})
}

// FrameReader pulls frames from a Source.
type FrameReader struct {
	src  Source
	asm  *Assembler
	done bool
}

// NewFrameReader creates a FrameReader.
func NewFrameReader(src Source, sync SyncConvention) *FrameReader {
	return &FrameReader{src: src, asm: NewAssembler(sync)}
}

// ReadFrame returns the next frame. A *ResyncError is not fatal and the next
// call continues assembling. At end of input a pending partial frame is
// reported once as *TruncatedError, then io.EOF is returned.
func (r *FrameReader) ReadFrame() (RawFrame, error) {
	if r.done {
		return RawFrame{}, io.EOF
	}
	for {
		s, err := r.src.NextSample()
		if err == io.EOF {
			r.done = true
			if err = r.asm.End(); err != nil {
				return RawFrame{}, err
			}
			return RawFrame{}, io.EOF
		}
		if err != nil {
			return RawFrame{}, err
		}
		f, err := r.asm.Push(s)
		if err != nil {
			return RawFrame{}, err
		}
		if f != nil {
			return *f, nil
		}
	}
}
