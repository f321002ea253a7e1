// Package pipeline assembles, decodes and labels frames of all axes from a
// parallel capture and delivers them to sinks.
package pipeline

import (
	"context"
	"io"

	"github.com/robotalks/xy2.go/pkg/xy2"
)

// Event is the outcome of one frame slot of an axis.
// Exactly one of Frame and Err is set.
type Event struct {
	Axis  xy2.Axis
	Frame *xy2.DecodedFrame
	Err   error
}

// Labeled returns the labeled frame. Frame must be set.
func (e Event) Labeled() xy2.LabeledFrame {
	return xy2.Labeler{Axis: e.Axis}.Label(*e.Frame)
}

// Sink receives events in stream order.
type Sink interface {
	HandleEvent(Event) error
}

// SinkFunc is func form of Sink.
type SinkFunc func(Event) error

// HandleEvent implements Sink.
func (f SinkFunc) HandleEvent(ev Event) error {
	return f(ev)
}

// Pipeline pulls parallel samples from Source and produces events.
type Pipeline struct {
	Source xy2.ParallelSource
	Lanes  xy2.LaneMap
	Sync   xy2.SyncConvention
	Parity xy2.ParityScope
	// Buffer > 0 runs assembly ahead of decoding with up to Buffer frames
	// queued. Event order is the same either way.
	Buffer int
	Sinks  []Sink
}

// New creates a Pipeline with the default lane map.
func New(src xy2.ParallelSource, sinks ...Sink) *Pipeline {
	return &Pipeline{Source: src, Lanes: xy2.DefaultLaneMap(), Sinks: sinks}
}

// Run runs until the source is exhausted, ctx is done or a sink fails.
// Exhausting the source is not an error.
func (p *Pipeline) Run(ctx context.Context) error {
	if err := p.Lanes.Validate(); err != nil {
		return err
	}
	if p.Buffer > 0 {
		return p.runBuffered(ctx)
	}
	asm := xy2.NewParallelAssembler(p.Lanes, p.Sync)
	return p.assemble(ctx, asm, p.decode)
}

// assemble feeds the source into asm and passes each result to fn.
func (p *Pipeline) assemble(ctx context.Context, asm *xy2.ParallelAssembler, fn func(xy2.Assembled) error) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		sample, err := p.Source.NextParallel()
		if err == io.EOF {
			for _, res := range asm.End() {
				if err := fn(res); err != nil {
					return err
				}
			}
			return nil
		}
		if err != nil {
			return err
		}
		for _, res := range asm.Push(sample) {
			if err := fn(res); err != nil {
				return err
			}
		}
	}
}

func (p *Pipeline) runBuffered(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	queue := make(chan xy2.Assembled, p.Buffer)
	errCh := make(chan error, 1)
	go func() {
		defer close(queue)
		asm := xy2.NewParallelAssembler(p.Lanes, p.Sync)
		errCh <- p.assemble(ctx, asm, func(res xy2.Assembled) error {
			select {
			case queue <- res:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}()
	for res := range queue {
		if err := p.decode(res); err != nil {
			cancel()
			for range queue {
			}
			<-errCh
			return err
		}
	}
	return <-errCh
}

func (p *Pipeline) decode(res xy2.Assembled) error {
	ev := Event{Axis: res.Axis, Err: res.Err}
	if res.Frame != nil {
		frame, err := xy2.Decoder{Parity: p.Parity}.Decode(*res.Frame)
		if err != nil {
			ev.Err = err
		} else {
			ev.Frame = &frame
		}
	}
	return p.deliver(ev)
}

func (p *Pipeline) deliver(ev Event) error {
	for _, sink := range p.Sinks {
		if err := sink.HandleEvent(ev); err != nil {
			return err
		}
	}
	return nil
}
