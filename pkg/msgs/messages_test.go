package msgs

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	pb "github.com/robotalks/xy2.go/pkg/proto/xy2/v1"
	"github.com/robotalks/xy2.go/pkg/xy2"
)

func TestSampleBatch(t *testing.T) {
	in := []xy2.ParallelSample{
		{Timestamp: 0, Word: 0},
		{Timestamp: 500, Word: 0x8},
		{Timestamp: time.Second, Word: 0xf},
	}
	data, err := Encode(NewSampleBatch(in))
	require.NoError(t, err)
	msg, err := Decode(data)
	require.NoError(t, err)
	batch, ok := msg.(*SampleBatch)
	require.True(t, ok)
	samples, err := batch.Samples()
	require.NoError(t, err)
	require.Equal(t, in, samples)

	batch.Words = batch.Words[:1]
	_, err = batch.Samples()
	require.Error(t, err)
}

func TestFrame(t *testing.T) {
	d, err := xy2.Decode(xy2.EncodeEnhanced18(0x2abcd))
	require.NoError(t, err)
	d.Start, d.End = 1000, 10500
	in := xy2.LabeledFrame{Axis: xy2.AxisY, DecodedFrame: d}

	data, err := Encode(NewFrame(in))
	require.NoError(t, err)
	msg, err := Decode(data)
	require.NoError(t, err)
	frame, ok := msg.(*Frame)
	require.True(t, ok)
	require.Equal(t, "Y", frame.Axis)
	require.Equal(t, pb.FrameMode_ENHANCED18, frame.Mode)
	out, err := frame.LabeledFrame()
	require.NoError(t, err)
	require.Equal(t, in, out)

	frame.Axis = "W"
	_, err = frame.LabeledFrame()
	require.Error(t, err)
}

func TestNewFrameError(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		kind pb.ErrorKind
	}{
		{"unknown header", &xy2.UnknownHeaderError{Header: 2, Start: 5, End: 15}, pb.ErrorKind_UNKNOWN_FRAME_HEADER},
		{"resync", &xy2.ResyncError{Bits: 10, Start: 5, At: 15}, pb.ErrorKind_RESYNC_DETECTED},
		{"truncated", &xy2.TruncatedError{Bits: 5, Start: 5}, pb.ErrorKind_TRUNCATED_FRAME},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewFrameError(xy2.AxisZ, tc.err)
			require.NotNil(t, m)
			require.Equal(t, tc.kind, m.Kind)
			require.Equal(t, int64(5), m.StartNs)
			require.Equal(t, "Z: "+tc.err.Error(), m.Error())

			data, err := Encode(m)
			require.NoError(t, err)
			msg, err := Decode(data)
			require.NoError(t, err)
			require.Equal(t, tc.kind, msg.(*FrameError).Kind)
		})
	}
	require.Nil(t, NewFrameError(xy2.AxisX, errors.New("other")))
}

func TestDecodeUnknownType(t *testing.T) {
	data, err := (Typed{Typed: pb.Typed{TypeId: 0x7f0000}}).Encode()
	require.NoError(t, err)
	_, err = Decode(data)
	require.Error(t, err)
	require.IsType(t, &ErrUnknownType{}, err)

	_, err = TypedFrom(nil)
	require.Equal(t, ErrNotSerializable, err)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	frame := func(mode xy2.FrameMode, pos uint32, parityOK bool) *Frame {
		return NewFrame(xy2.LabeledFrame{Axis: xy2.AxisX, DecodedFrame: xy2.DecodedFrame{
			Mode: mode, Header: 1, Position: pos, ParityOK: parityOK, Start: 20, End: 9520,
		}})
	}
	testCases := []struct {
		name string
		msg  SerializableMessage
	}{
		{"sample batch", NewSampleBatch([]xy2.ParallelSample{{Timestamp: 500, Word: 0x9}})},
		{"empty sample batch", NewSampleBatch(nil)},
		{"standard frame", frame(xy2.ModeStandard16, 0xffff, true)},
		{"enhanced frame parity fail", frame(xy2.ModeEnhanced18, 0, false)},
		{"unknown header", NewFrameError(xy2.AxisY, &xy2.UnknownHeaderError{Header: 2, Start: 5, End: 15})},
		{"idle", NewFrameError(xy2.AxisZ, &xy2.UnknownHeaderError{Idle: true, Start: 5, End: 15})},
		{"resync", NewFrameError(xy2.AxisX, &xy2.ResyncError{Bits: 10, Start: 5, At: 15})},
		{"truncated", NewFrameError(xy2.AxisX, &xy2.TruncatedError{Bits: 5, Start: 5})},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := Encode(tc.msg)
			require.NoError(t, err)

			typed, err := DecodeTyped(data)
			require.NoError(t, err)
			require.Equal(t, tc.msg.TypeID(), typed.TypeId)

			msg, err := Decode(data)
			require.NoError(t, err)
			require.IsType(t, tc.msg, msg)
			decoded := msg.(SerializableMessage)
			require.Equal(t, tc.msg.Serializable().String(), decoded.Serializable().String())
		})
	}
}

func TestDecodeMalformed(t *testing.T) {
	_, err := Decode([]byte{0x0a, 0xff})
	require.Error(t, err)

	data, err := (Typed{Typed: pb.Typed{TypeId: FrameTypeID, Message: []byte{0x0a, 0x05}}}).Encode()
	require.NoError(t, err)
	_, err = Decode(data)
	require.Error(t, err)
}
