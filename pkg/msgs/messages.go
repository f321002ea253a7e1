package msgs

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang/protobuf/proto"

	pb "github.com/robotalks/xy2.go/pkg/proto/xy2/v1"
	"github.com/robotalks/xy2.go/pkg/xy2"
)

// TypeID Groups
const (
	GroupCapture uint32 = 0x00010000
	GroupDecode  uint32 = 0x00020000
)

// TypeIDs
const (
	SampleBatchTypeID uint32 = GroupCapture | 0x0000
	FrameTypeID       uint32 = GroupDecode | 0x0000
	FrameErrorTypeID  uint32 = GroupDecode | 0x0001
)

// SampleBatch is a batch of parallel samples.
type SampleBatch struct {
	pb.SampleBatch
}

// NewSampleBatch creates a SampleBatch from samples.
func NewSampleBatch(samples []xy2.ParallelSample) *SampleBatch {
	m := &SampleBatch{}
	m.Timestamps = make([]int64, len(samples))
	m.Words = make([]uint32, len(samples))
	for n, s := range samples {
		m.Timestamps[n], m.Words[n] = int64(s.Timestamp), s.Word
	}
	return m
}

// NewMessage implements Message.
func (m *SampleBatch) NewMessage() Message { return &SampleBatch{} }

// TypeID implements SerializableMessage.
func (m *SampleBatch) TypeID() uint32 { return SampleBatchTypeID }

// Serializable implements SerializableMessage.
func (m *SampleBatch) Serializable() proto.Message { return &m.SampleBatch }

// Samples converts the batch into parallel samples.
func (m *SampleBatch) Samples() ([]xy2.ParallelSample, error) {
	if len(m.Timestamps) != len(m.Words) {
		return nil, fmt.Errorf("sample batch mismatch: %d timestamps, %d words",
			len(m.Timestamps), len(m.Words))
	}
	samples := make([]xy2.ParallelSample, len(m.Words))
	for n := range samples {
		samples[n] = xy2.ParallelSample{
			Timestamp: time.Duration(m.Timestamps[n]),
			Word:      m.Words[n],
		}
	}
	return samples, nil
}

// Frame is a decoded frame.
type Frame struct {
	pb.Frame
}

// NewFrame creates a Frame message.
func NewFrame(f xy2.LabeledFrame) *Frame {
	mode := pb.FrameMode_STANDARD16
	if f.Mode == xy2.ModeEnhanced18 {
		mode = pb.FrameMode_ENHANCED18
	}
	return &Frame{Frame: pb.Frame{
		Axis:     f.Axis.String(),
		Mode:     mode,
		Header:   uint32(f.Header),
		Position: f.Position,
		ParityOk: f.ParityOK,
		StartNs:  int64(f.Start),
		EndNs:    int64(f.End),
	}}
}

// NewMessage implements Message.
func (m *Frame) NewMessage() Message { return &Frame{} }

// TypeID implements SerializableMessage.
func (m *Frame) TypeID() uint32 { return FrameTypeID }

// Serializable implements SerializableMessage.
func (m *Frame) Serializable() proto.Message { return &m.Frame }

// LabeledFrame converts back to xy2.LabeledFrame.
func (m *Frame) LabeledFrame() (xy2.LabeledFrame, error) {
	axis, err := xy2.ParseAxis(m.Axis)
	if err != nil {
		return xy2.LabeledFrame{}, err
	}
	mode := xy2.ModeStandard16
	if m.Mode == pb.FrameMode_ENHANCED18 {
		mode = xy2.ModeEnhanced18
	}
	return xy2.LabeledFrame{
		Axis: axis,
		DecodedFrame: xy2.DecodedFrame{
			Mode:     mode,
			Header:   uint8(m.Header),
			Position: m.Position,
			ParityOK: m.ParityOk,
			Start:    time.Duration(m.StartNs),
			End:      time.Duration(m.EndNs),
		},
	}, nil
}

// FrameError reports an assembly or decode error.
type FrameError struct {
	pb.FrameError
}

// NewFrameError creates a FrameError from an error of package xy2.
// It returns nil for other errors.
func NewFrameError(axis xy2.Axis, err error) *FrameError {
	m := &FrameError{FrameError: pb.FrameError{Axis: axis.String(), Message: err.Error()}}
	var (
		he *xy2.UnknownHeaderError
		re *xy2.ResyncError
		te *xy2.TruncatedError
	)
	switch {
	case errors.As(err, &he):
		m.Kind = pb.ErrorKind_UNKNOWN_FRAME_HEADER
		m.Header, m.Idle = uint32(he.Header), he.Idle
		m.StartNs, m.EndNs = int64(he.Start), int64(he.End)
	case errors.As(err, &re):
		m.Kind = pb.ErrorKind_RESYNC_DETECTED
		m.StartNs, m.EndNs = int64(re.Start), int64(re.At)
	case errors.As(err, &te):
		m.Kind = pb.ErrorKind_TRUNCATED_FRAME
		m.StartNs = int64(te.Start)
	default:
		return nil
	}
	return m
}

// NewMessage implements Message.
func (m *FrameError) NewMessage() Message { return &FrameError{} }

// TypeID implements SerializableMessage.
func (m *FrameError) TypeID() uint32 { return FrameErrorTypeID }

// Serializable implements SerializableMessage.
func (m *FrameError) Serializable() proto.Message { return &m.FrameError }

// Error implements error.
func (m *FrameError) Error() string {
	return m.Axis + ": " + m.Message
}
