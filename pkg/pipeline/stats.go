package pipeline

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/robotalks/xy2.go/pkg/xy2"
)

// Counters are statistics of one axis.
type Counters struct {
	Frames         int
	Standard16     int
	Enhanced18     int
	ParityErrors   int
	UnknownHeaders int
	Idle           int
	Resyncs        int
	Truncated      int
}

// Stats counts events per axis. It's safe for concurrent use.
type Stats struct {
	lock     sync.Mutex
	counters map[xy2.Axis]*Counters
}

// HandleEvent implements Sink.
func (s *Stats) HandleEvent(ev Event) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.counters == nil {
		s.counters = make(map[xy2.Axis]*Counters)
	}
	c := s.counters[ev.Axis]
	if c == nil {
		c = &Counters{}
		s.counters[ev.Axis] = c
	}
	switch {
	case ev.Frame != nil:
		c.Frames++
		if ev.Frame.Mode == xy2.ModeEnhanced18 {
			c.Enhanced18++
		} else {
			c.Standard16++
		}
		if !ev.Frame.ParityOK {
			c.ParityErrors++
		}
	case xy2.IsIdle(ev.Err):
		c.Idle++
	case errors.Is(ev.Err, xy2.ErrUnknownFrameHeader):
		c.UnknownHeaders++
	case errors.Is(ev.Err, xy2.ErrResyncDetected):
		c.Resyncs++
	case errors.Is(ev.Err, xy2.ErrTruncatedFrame):
		c.Truncated++
	}
	return nil
}

// Axis returns a snapshot of counters of axis.
func (s *Stats) Axis(axis xy2.Axis) Counters {
	s.lock.Lock()
	defer s.lock.Unlock()
	if c := s.counters[axis]; c != nil {
		return *c
	}
	return Counters{}
}

// Reset clears all counters.
func (s *Stats) Reset() {
	s.lock.Lock()
	s.counters = nil
	s.lock.Unlock()
}

// Print writes a table of axes with any event.
func (s *Stats) Print(w io.Writer) {
	s.lock.Lock()
	defer s.lock.Unlock()
	fmt.Fprintf(w, "AXIS %8s %8s %8s %8s %8s %8s %8s %8s\n",
		"FRAMES", "STD16", "ENH18", "PARITY", "UNKNOWN", "IDLE", "RESYNC", "TRUNC")
	for _, axis := range xy2.Axes {
		c := s.counters[axis]
		if c == nil {
			continue
		}
		fmt.Fprintf(w, "%-4s %8d %8d %8d %8d %8d %8d %8d %8d\n", axis,
			c.Frames, c.Standard16, c.Enhanced18, c.ParityErrors,
			c.UnknownHeaders, c.Idle, c.Resyncs, c.Truncated)
	}
}
