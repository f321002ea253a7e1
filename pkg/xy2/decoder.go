package xy2

import "math/bits"

const (
	headerStandard16 uint8 = 0x1 // 001
	headerEnhanced18 uint8 = 0x1 // 1
)

// ParityScope selects the bits covered by the parity check.
type ParityScope int

const (
	// ParityPosition covers the position bits and the parity bit.
	ParityPosition ParityScope = iota
	// ParityFrame covers the whole frame including the header, as some
	// analyzers do.
	ParityFrame
)

// String implements fmt.Stringer.
func (s ParityScope) String() string {
	if s == ParityFrame {
		return "frame"
	}
	return "position"
}

// Decoder interprets raw frames. The zero value is ready to use.
type Decoder struct {
	Parity ParityScope
}

// Decode decodes a frame with the default Decoder.
func Decode(f RawFrame) (DecodedFrame, error) {
	return Decoder{}.Decode(f)
}

// Decode classifies the frame, extracts the position and checks parity.
// A parity mismatch is reported in ParityOK, not as an error.
func (d Decoder) Decode(f RawFrame) (DecodedFrame, error) {
	header := uint8(f.field(0, 2))
	var mode FrameMode
	switch {
	case header == headerStandard16:
		mode = ModeStandard16
	case f.Bits[0]:
		mode = ModeEnhanced18
	default:
		return DecodedFrame{}, &UnknownHeaderError{
			Header: header,
			Idle:   f.IsIdle(),
			Start:  f.Start,
			End:    f.End,
		}
	}
	hw := mode.HeaderWidth()
	return DecodedFrame{
		Mode:     mode,
		Header:   uint8(f.field(0, hw-1)),
		Position: f.field(hw, FrameBits-2),
		ParityOK: d.parityOK(mode, &f),
		Start:    f.Start,
		End:      f.End,
	}, nil
}

func (d Decoder) parityFrom(mode FrameMode) int {
	if d.Parity == ParityFrame {
		return 0
	}
	return mode.HeaderWidth()
}

// parityOK: even count of set bits for standard, odd for enhanced.
func (d Decoder) parityOK(mode FrameMode, f *RawFrame) bool {
	ones := bits.OnesCount32(f.field(d.parityFrom(mode), FrameBits-1))
	if mode == ModeEnhanced18 {
		return ones%2 == 1
	}
	return ones%2 == 0
}

// Encode builds a frame carrying pos with a valid parity bit.
// pos is truncated to the mode width.
func (d Decoder) Encode(mode FrameMode, pos uint32) RawFrame {
	var f RawFrame
	hw := mode.HeaderWidth()
	header := headerStandard16
	if mode == ModeEnhanced18 {
		header = headerEnhanced18
	}
	for i := 0; i < hw; i++ {
		f.Bits[i] = header&(1<<uint(hw-1-i)) != 0
	}
	width := mode.Width()
	for i := 0; i < width; i++ {
		f.Bits[hw+i] = pos&(1<<uint(width-1-i)) != 0
	}
	ones := bits.OnesCount32(f.field(d.parityFrom(mode), FrameBits-2))
	if mode == ModeEnhanced18 {
		f.Bits[FrameBits-1] = ones%2 == 0
	} else {
		f.Bits[FrameBits-1] = ones%2 == 1
	}
	return f
}

// EncodeStandard16 builds a standard mode frame.
func EncodeStandard16(pos uint16) RawFrame {
	return Decoder{}.Encode(ModeStandard16, uint32(pos))
}

// EncodeEnhanced18 builds an enhanced mode frame.
func EncodeEnhanced18(pos uint32) RawFrame {
	return Decoder{}.Encode(ModeEnhanced18, pos)
}
