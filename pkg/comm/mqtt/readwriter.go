package mqtt

import (
	"context"
	"io"
	"sync"
)

// Topic suffixes used by analyzers.
const (
	SamplesTopic = "samples"
	FramesTopic  = "frames"
)

// ReadWriter implements PacketReadWriter.
type ReadWriter struct {
	Queue    *Queue
	SubTopic string
	PubTopic string

	packetCh  chan []byte
	closeOnce sync.Once
	closed    chan struct{}
}

// NewPacketReadWriter creates the ReadWriter.
func NewPacketReadWriter(q *Queue) *ReadWriter {
	return &ReadWriter{
		Queue:    q,
		packetCh: make(chan []byte, 64),
		closed:   make(chan struct{}),
	}
}

// WithTopics specifies the topics.
func (p *ReadWriter) WithTopics(sub, pub string) *ReadWriter {
	p.SubTopic, p.PubTopic = sub, pub
	return p
}

// ForDecoder sets topics using default convention for a decoder:
// SubTopic = id/samples
// PubTopic = id/frames
func (p *ReadWriter) ForDecoder(id string) *ReadWriter {
	return p.WithTopics(id+"/"+SamplesTopic, id+"/"+FramesTopic)
}

// ForSampler sets topics using default convention for a sampler:
// SubTopic = none
// PubTopic = id/samples
func (p *ReadWriter) ForSampler(id string) *ReadWriter {
	return p.WithTopics("", id+"/"+SamplesTopic)
}

// ReadPacket implements PacketReader.
func (p *ReadWriter) ReadPacket() ([]byte, error) {
	select {
	case pkt := <-p.packetCh:
		return pkt, nil
	case <-p.closed:
		return nil, io.EOF
	}
}

// WritePacket implements PacketWriter.
func (p *ReadWriter) WritePacket(pkt []byte) error {
	token := p.Queue.Pub(p.PubTopic, pkt)
	token.Wait()
	return token.Error()
}

// Run implements Runnable. It subscribes SubTopic until ctx is done.
func (p *ReadWriter) Run(ctx context.Context) error {
	if p.SubTopic != "" {
		sub := p.Queue.Sub(p.SubTopic, Handler(p.handleMsg))
		defer sub.Close()
	}
	<-ctx.Done()
	p.Close()
	return ctx.Err()
}

// Close stops ReadPacket with io.EOF.
func (p *ReadWriter) Close() error {
	p.closeOnce.Do(func() { close(p.closed) })
	return nil
}

func (p *ReadWriter) handleMsg(_ string, payload []byte) {
	select {
	case p.packetCh <- payload:
	case <-p.closed:
	}
}
