package framework

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRunnerCancelsOthers(t *testing.T) {
	failure := errors.New("source closed")
	r := NewRunner().Go(
		NamedRun("blocking", RunFunc(func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		})),
		RunFunc(func(ctx context.Context) error {
			return failure
		}),
	)
	err := r.Wait()
	require.Error(t, err)
	agg, ok := err.(*AggregatedError)
	require.True(t, ok)
	require.Equal(t, []error{failure}, agg.Errors)
}

func TestRunnerNoErrors(t *testing.T) {
	r := NewRunner().Go(RunFunc(func(ctx context.Context) error { return nil }))
	require.NoError(t, r.Wait())

	r = NewRunner()
	r.Go(RunFunc(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}))
	r.Stop()
	require.NoError(t, r.Wait())
}

func TestRunnerFinishedCancelsOthers(t *testing.T) {
	canceled := make(chan struct{})
	r := NewRunner().Go(
		NamedRun("blocking", RunFunc(func(ctx context.Context) error {
			<-ctx.Done()
			close(canceled)
			return ctx.Err()
		})),
		NamedRun("done", RunFunc(func(ctx context.Context) error {
			return nil
		})),
	)
	require.NoError(t, r.Wait())
	select {
	case <-canceled:
	default:
		t.Fatal("blocking runnable not canceled")
	}
	require.Equal(t, context.Canceled, r.Context.Err())
}

type testCloser struct{ closed chan struct{} }

func (c *testCloser) Close() error {
	close(c.closed)
	return nil
}

func TestRunWithContextCloser(t *testing.T) {
	c := &testCloser{closed: make(chan struct{})}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := RunWithContextCloser(ctx, c, func() error {
		<-c.closed
		return nil
	})
	require.Equal(t, context.Canceled, err)

	c = &testCloser{closed: make(chan struct{})}
	require.NoError(t, RunWithContextCloser(context.Background(), c, func() error { return nil }))
	<-c.closed
}

func TestAggregatedError(t *testing.T) {
	var errs AggregatedError
	require.NoError(t, errs.Add(nil).Aggregate())
	errs.Add(errors.New("a"), nil, errors.New("b"))
	require.Equal(t, "Multiple errors:\na\nb", errs.Aggregate().Error())
}
