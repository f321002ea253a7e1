package xy2

import (
	"errors"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustParseBits(t *testing.T, s string) RawFrame {
	f, err := ParseBits(s)
	require.NoError(t, err)
	return f
}

func TestDecode(t *testing.T) {
	testCases := []struct {
		name   string
		bits   string
		expect DecodedFrame
	}{
		{"standard position 1", "001 0000000000000001 1",
			DecodedFrame{Mode: ModeStandard16, Header: 1, Position: 1, ParityOK: true}},
		{"standard bad parity", "001 0000000000000001 0",
			DecodedFrame{Mode: ModeStandard16, Header: 1, Position: 1, ParityOK: false}},
		{"standard zero", "001 0000000000000000 0",
			DecodedFrame{Mode: ModeStandard16, Header: 1, Position: 0, ParityOK: true}},
		{"standard max", "001 1111111111111111 0",
			DecodedFrame{Mode: ModeStandard16, Header: 1, Position: 0xffff, ParityOK: true}},
		{"standard msb first", "001 1000000000000000 1",
			DecodedFrame{Mode: ModeStandard16, Header: 1, Position: 0x8000, ParityOK: true}},
		{"enhanced zero", "1 000000000000000000 1",
			DecodedFrame{Mode: ModeEnhanced18, Header: 1, Position: 0, ParityOK: true}},
		{"enhanced bad parity", "1 000000000000000000 0",
			DecodedFrame{Mode: ModeEnhanced18, Header: 1, Position: 0, ParityOK: false}},
		{"enhanced max", "1 111111111111111111 1",
			DecodedFrame{Mode: ModeEnhanced18, Header: 1, Position: 0x3ffff, ParityOK: true}},
		{"enhanced looks like standard", "1 001000000000000000 0",
			DecodedFrame{Mode: ModeEnhanced18, Header: 1, Position: 0x08000, ParityOK: true}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := Decode(mustParseBits(t, tc.bits))
			require.NoError(t, err)
			require.Equal(t, tc.expect, f)
		})
	}
}

func TestDecodeUnknownHeader(t *testing.T) {
	testCases := []struct {
		name   string
		bits   string
		header uint8
		idle   bool
	}{
		{"000", "000 1000000000000000 1", 0, false},
		{"010", "010 0000000000000001 1", 2, false},
		{"011", "011 1111111111111111 0", 3, false},
		{"idle", "000 0000000000000000 0", 0, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := Decode(mustParseBits(t, tc.bits))
			require.Error(t, err)
			require.Equal(t, DecodedFrame{}, f)
			require.True(t, errors.Is(err, ErrUnknownFrameHeader))
			var he *UnknownHeaderError
			require.True(t, errors.As(err, &he))
			require.Equal(t, tc.header, he.Header)
			require.Equal(t, tc.idle, he.Idle)
			require.Equal(t, tc.idle, IsIdle(err))
		})
	}
}

func TestDecodeStandardParityProperty(t *testing.T) {
	for _, pos := range []uint32{0, 1, 2, 3, 0x7fff, 0x8001, 0xaaaa, 0x5555, 0xfffe, 0xffff} {
		for _, p := range []bool{false, true} {
			f := Decoder{}.Encode(ModeStandard16, pos)
			f.Bits[FrameBits-1] = p
			d, err := Decode(f)
			require.NoError(t, err)
			require.Equal(t, ModeStandard16, d.Mode)
			require.Equal(t, pos, d.Position)
			ones := bits.OnesCount32(pos)
			if p {
				ones++
			}
			require.Equal(t, ones%2 == 0, d.ParityOK, "pos=%x p=%v", pos, p)
		}
	}
}

func TestDecodeEnhancedParityProperty(t *testing.T) {
	for _, pos := range []uint32{0, 1, 0x10000, 0x20000, 0x1ffff, 0x2aaaa, 0x15555, 0x3ffff} {
		for _, p := range []bool{false, true} {
			f := Decoder{}.Encode(ModeEnhanced18, pos)
			f.Bits[FrameBits-1] = p
			d, err := Decode(f)
			require.NoError(t, err)
			require.Equal(t, ModeEnhanced18, d.Mode)
			require.Equal(t, pos, d.Position)
			ones := bits.OnesCount32(pos)
			if p {
				ones++
			}
			require.Equal(t, ones%2 == 1, d.ParityOK, "pos=%x p=%v", pos, p)
		}
	}
}

func TestDecodeIdempotent(t *testing.T) {
	f := EncodeEnhanced18(0x12345)
	f.Start, f.End = 10, 20
	a, err := Decode(f)
	require.NoError(t, err)
	b, err := Decode(f)
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.Equal(t, f.Start, a.Start)
	require.Equal(t, f.End, a.End)
}

func TestDecodeFrameParity(t *testing.T) {
	d := Decoder{Parity: ParityFrame}
	// even over all 20 bits
	f, err := d.Decode(mustParseBits(t, "001 0000000000000001 0"))
	require.NoError(t, err)
	require.True(t, f.ParityOK)
	// odd over all 20 bits
	f, err = d.Decode(mustParseBits(t, "1 000000000000000000 0"))
	require.NoError(t, err)
	require.True(t, f.ParityOK)
	f, err = d.Decode(mustParseBits(t, "1 000000000000000000 1"))
	require.NoError(t, err)
	require.False(t, f.ParityOK)

	for _, mode := range []FrameMode{ModeStandard16, ModeEnhanced18} {
		f, err := d.Decode(d.Encode(mode, 0x1234))
		require.NoError(t, err)
		require.True(t, f.ParityOK)
		require.Equal(t, uint32(0x1234), f.Position)
	}
}

func TestParseBits(t *testing.T) {
	f, err := ParseBits("0b0010000_0000_0000_0001_1")
	require.NoError(t, err)
	require.Equal(t, uint32(0x20003), f.Word())
	require.Equal(t, "00100000000000000011", f.String())
	require.Equal(t, f.Bits, FrameFromWord(0x20003).Bits)

	_, err = ParseBits("0010")
	require.Error(t, err)
	_, err = ParseBits("001000000000000000011")
	require.Error(t, err)
	_, err = ParseBits("00100000000000000x11")
	require.Error(t, err)
}

func TestLabeledFrameString(t *testing.T) {
	f, err := Decode(EncodeStandard16(0x1234))
	require.NoError(t, err)
	require.Equal(t, "X | Header: 0b001 | Pos: 0x1234 (16-bit) | Parity: OK",
		Labeler{Axis: AxisX}.Label(f).String())
	f, err = Decode(mustParseBits(t, "1 000000000000000011 0"))
	require.NoError(t, err)
	require.Equal(t, "Z | Header: 0b1 | Pos: 0x00003 (18-bit) | Parity: FAIL",
		Labeler{Axis: AxisZ}.Label(f).String())
}
