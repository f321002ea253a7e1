package capture

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/robotalks/xy2.go/pkg/comm"
	"github.com/robotalks/xy2.go/pkg/msgs"
	"github.com/robotalks/xy2.go/pkg/xy2"
)

// PacketSource reads SampleBatch messages from a packet transport.
type PacketSource struct {
	Reader comm.PacketReader

	pending []xy2.ParallelSample
}

// NewPacketSource creates a PacketSource.
func NewPacketSource(r comm.PacketReader) *PacketSource {
	return &PacketSource{Reader: r}
}

// NextParallel implements xy2.ParallelSource.
func (s *PacketSource) NextParallel() (xy2.ParallelSample, error) {
	for len(s.pending) == 0 {
		msg, err := comm.ReadMsg(s.Reader)
		if err != nil {
			if _, ok := err.(*msgs.ErrUnknownType); ok {
				glog.Warningf("skip packet: %v", err)
				continue
			}
			return xy2.ParallelSample{}, err
		}
		batch, ok := msg.(*msgs.SampleBatch)
		if !ok {
			glog.V(2).Infof("skip message %T", msg)
			continue
		}
		if s.pending, err = batch.Samples(); err != nil {
			return xy2.ParallelSample{}, fmt.Errorf("bad sample batch: %w", err)
		}
	}
	sample := s.pending[0]
	s.pending = s.pending[1:]
	return sample, nil
}

// PacketSink writes parallel samples as SampleBatch messages.
type PacketSink struct {
	Writer comm.PacketWriter
}

// WriteSamples writes one batch.
func (s *PacketSink) WriteSamples(samples []xy2.ParallelSample) error {
	return comm.WriteMsg(s.Writer, msgs.NewSampleBatch(samples))
}
