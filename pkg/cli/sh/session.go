package sh

import (
	"context"
	"errors"
	"time"

	"github.com/robotalks/xy2.go/pkg/capture"
	"github.com/robotalks/xy2.go/pkg/env"
	"github.com/robotalks/xy2.go/pkg/framework"
	"github.com/robotalks/xy2.go/pkg/pipeline"
	"github.com/robotalks/xy2.go/pkg/xy2"
)

// Session holds the events decoded from a loaded capture.
type Session struct {
	Source string
	Events []pipeline.Event
	Stats  pipeline.Stats
}

// HandleEvent implements pipeline.Sink.
func (s *Session) HandleEvent(ev pipeline.Event) error {
	s.Events = append(s.Events, ev)
	return nil
}

// Frames returns up to n decoded frames of axes, all frames if n <= 0.
func (s *Session) Frames(n int, axes ...xy2.Axis) []xy2.LabeledFrame {
	var frames []xy2.LabeledFrame
	for _, ev := range s.Events {
		if ev.Frame == nil || !matchAxis(ev.Axis, axes) {
			continue
		}
		frames = append(frames, ev.Labeled())
		if n > 0 && len(frames) >= n {
			break
		}
	}
	return frames
}

// Errors returns error events of axes, excluding idle lanes.
func (s *Session) Errors(axes ...xy2.Axis) []pipeline.Event {
	var events []pipeline.Event
	for _, ev := range s.Events {
		if ev.Err != nil && !xy2.IsIdle(ev.Err) && matchAxis(ev.Axis, axes) {
			events = append(events, ev)
		}
	}
	return events
}

func matchAxis(axis xy2.Axis, axes []xy2.Axis) bool {
	if len(axes) == 0 {
		return true
	}
	for _, a := range axes {
		if a == axis {
			return true
		}
	}
	return false
}

// newPipeline creates a pipeline feeding the session.
func (s *Session) newPipeline(conf *env.Config, src xy2.ParallelSource) (*pipeline.Pipeline, error) {
	sync, err := conf.SyncConvention()
	if err != nil {
		return nil, err
	}
	parity, err := conf.ParityScope()
	if err != nil {
		return nil, err
	}
	return &pipeline.Pipeline{
		Source: src,
		Lanes:  conf.LaneMap(),
		Sync:   sync,
		Parity: parity,
		Buffer: conf.Buffer,
		Sinks:  []pipeline.Sink{s, &s.Stats},
	}, nil
}

// LoadSession opens source and decodes it into a new Session. Live sources
// are captured until timeout, a zero timeout waits for the end of input.
func LoadSession(conf *env.Config, source string, timeout time.Duration) (*Session, error) {
	src, err := capture.Open(source, conf.ID)
	if err != nil {
		return nil, err
	}
	s := &Session{Source: source}
	p, err := s.newPipeline(conf, src)
	if err != nil {
		src.Close()
		return nil, err
	}
	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	runner := framework.NewRunnerWith(ctx)
	if src.Runner != nil {
		runner.Go(src.Runner)
	}
	runner.Go(framework.NamedRun("pipeline", framework.RunFunc(func(ctx context.Context) error {
		return framework.RunWithContextCloser(ctx, src, func() error {
			return p.Run(ctx)
		})
	})))
	if err := runner.Wait(); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return nil, err
	}
	return s, nil
}

// SessionFromSamples decodes samples into a new Session.
func SessionFromSamples(conf *env.Config, name string, samples []xy2.ParallelSample) (*Session, error) {
	s := &Session{Source: name}
	p, err := s.newPipeline(conf, xy2.ParallelSliceSource(samples))
	if err != nil {
		return nil, err
	}
	if err := p.Run(context.Background()); err != nil {
		return nil, err
	}
	return s, nil
}
