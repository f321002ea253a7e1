package xy2

import (
	"fmt"
	"io"
	"time"
)

// ParallelSample is one clock edge of all lanes captured by a parallel sampler.
type ParallelSample struct {
	Timestamp time.Duration
	Word      uint32
}

// ParallelSource provides parallel samples in timestamp order.
// NextParallel returns io.EOF when exhausted.
type ParallelSource interface {
	NextParallel() (ParallelSample, error)
}

// ParallelSourceFunc is func form of ParallelSource.
type ParallelSourceFunc func() (ParallelSample, error)

// NextParallel implements ParallelSource.
func (f ParallelSourceFunc) NextParallel() (ParallelSample, error) {
	return f()
}

// ParallelSliceSource returns a ParallelSource over samples.
func ParallelSliceSource(samples []ParallelSample) ParallelSource {
	var n int
	return ParallelSourceFunc(func() (ParallelSample, error) {
		if n >= len(samples) {
			return ParallelSample{}, io.EOF
		}
		n++
		return samples[n-1], nil
	})
}

// LaneMap assigns bits of a parallel word to axis data lanes and SYNC.
type LaneMap struct {
	Data map[Axis]uint
	Sync uint
}

// DefaultLaneMap returns D0=X, D1=Y, D2=Z, D3=SYNC.
func DefaultLaneMap() LaneMap {
	return LaneMap{
		Data: map[Axis]uint{AxisX: 0, AxisY: 1, AxisZ: 2},
		Sync: 3,
	}
}

// Axes returns the mapped axes in X, Y, Z order.
func (m LaneMap) Axes() []Axis {
	axes := make([]Axis, 0, len(m.Data))
	for _, axis := range Axes {
		if _, ok := m.Data[axis]; ok {
			axes = append(axes, axis)
		}
	}
	return axes
}

// Validate checks lanes are within a 32-bit word and don't overlap.
func (m LaneMap) Validate() error {
	if len(m.Data) == 0 {
		return fmt.Errorf("no data lane mapped")
	}
	if m.Sync > 31 {
		return fmt.Errorf("sync lane D%d out of range", m.Sync)
	}
	used := map[uint]string{m.Sync: "SYNC"}
	for _, axis := range Axes {
		lane, ok := m.Data[axis]
		if !ok {
			continue
		}
		if lane > 31 {
			return fmt.Errorf("%s lane D%d out of range", axis, lane)
		}
		if owner, dup := used[lane]; dup {
			return fmt.Errorf("%s lane D%d already used by %s", axis, lane, owner)
		}
		used[lane] = axis.String()
	}
	for axis := range m.Data {
		if axis < AxisX || axis > AxisZ {
			return fmt.Errorf("invalid axis %d", int(axis))
		}
	}
	return nil
}

// Sample projects a parallel sample onto the lanes of axis.
func (m LaneMap) Sample(axis Axis, p ParallelSample) BitSample {
	return BitSample{
		Timestamp: p.Timestamp,
		Data:      p.Word&(1<<m.Data[axis]) != 0,
		Sync:      p.Word&(1<<m.Sync) != 0,
	}
}

// LaneSource is a Source reading one axis from a ParallelSource.
type LaneSource struct {
	Source ParallelSource
	Lanes  LaneMap
	Axis   Axis
}

// NextSample implements Source.
func (s *LaneSource) NextSample() (BitSample, error) {
	p, err := s.Source.NextParallel()
	if err != nil {
		return BitSample{}, err
	}
	return s.Lanes.Sample(s.Axis, p), nil
}

// Assembled is the assembly result of one axis.
// Exactly one of Frame and Err is set.
type Assembled struct {
	Axis  Axis
	Frame *RawFrame
	Err   error
}

// ParallelAssembler assembles frames of all mapped axes from the same
// parallel samples. All axes share the SYNC lane.
type ParallelAssembler struct {
	lanes LaneMap
	axes  []Axis
	asms  []*Assembler
}

// NewParallelAssembler creates a ParallelAssembler.
func NewParallelAssembler(lanes LaneMap, sync SyncConvention) *ParallelAssembler {
	p := &ParallelAssembler{lanes: lanes, axes: lanes.Axes()}
	p.asms = make([]*Assembler, len(p.axes))
	for n := range p.asms {
		p.asms[n] = NewAssembler(sync)
	}
	return p
}

// Axes returns the assembled axes.
func (p *ParallelAssembler) Axes() []Axis {
	return p.axes
}

// Push consumes one parallel sample.
func (p *ParallelAssembler) Push(s ParallelSample) (res []Assembled) {
	for n, axis := range p.axes {
		f, err := p.asms[n].Push(p.lanes.Sample(axis, s))
		if f != nil || err != nil {
			res = append(res, Assembled{Axis: axis, Frame: f, Err: err})
		}
	}
	return
}

// End notifies the input is exhausted.
func (p *ParallelAssembler) End() (res []Assembled) {
	for n, axis := range p.axes {
		if err := p.asms[n].End(); err != nil {
			res = append(res, Assembled{Axis: axis, Err: err})
		}
	}
	return
}
