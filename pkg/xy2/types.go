package xy2

import (
	"fmt"
	"time"
)

// FrameBits is the number of clock periods in a frame.
const FrameBits = 20

// BitSample is one clock edge observation of a data lane and the SYNC lane.
type BitSample struct {
	Timestamp time.Duration
	Data      bool
	Sync      bool
}

// RawFrame contains the bits of one assembled frame in arrival order.
type RawFrame struct {
	Bits  [FrameBits]bool
	Sync  [FrameBits]bool
	Start time.Duration
	End   time.Duration
}

// Word packs the bits into an integer, bit 0 being the most significant.
func (f *RawFrame) Word() uint32 {
	var w uint32
	for _, b := range f.Bits {
		w <<= 1
		if b {
			w |= 1
		}
	}
	return w
}

// IsIdle indicates no data bit is set, usually an unused lane.
func (f *RawFrame) IsIdle() bool {
	return f.Word() == 0
}

// field reads bits [from, to] MSB first.
func (f *RawFrame) field(from, to int) uint32 {
	var v uint32
	for i := from; i <= to; i++ {
		v <<= 1
		if f.Bits[i] {
			v |= 1
		}
	}
	return v
}

// String returns the bits as 0/1 characters.
func (f RawFrame) String() string {
	b := make([]byte, FrameBits)
	for n, bit := range f.Bits {
		b[n] = '0'
		if bit {
			b[n] = '1'
		}
	}
	return string(b)
}

// FrameMode is the encoding mode of a frame.
type FrameMode int

const (
	// ModeStandard16 is the 16-bit standard mode, header 001.
	ModeStandard16 FrameMode = iota
	// ModeEnhanced18 is the 18-bit enhanced mode, header 1.
	ModeEnhanced18
)

// Width returns the position width in bits.
func (m FrameMode) Width() int {
	if m == ModeEnhanced18 {
		return 18
	}
	return 16
}

// HeaderWidth returns the number of header bits.
func (m FrameMode) HeaderWidth() int {
	if m == ModeEnhanced18 {
		return 1
	}
	return 3
}

// String implements fmt.Stringer.
func (m FrameMode) String() string {
	switch m {
	case ModeStandard16:
		return "Standard16"
	case ModeEnhanced18:
		return "Enhanced18"
	default:
		return fmt.Sprintf("FrameMode(%d)", int(m))
	}
}

// ParseFrameMode parses 16, 18 or the mode names.
func ParseFrameMode(s string) (FrameMode, error) {
	switch s {
	case "16", "std", "standard", "Standard16":
		return ModeStandard16, nil
	case "18", "enh", "enhanced", "Enhanced18":
		return ModeEnhanced18, nil
	}
	return ModeStandard16, fmt.Errorf("invalid frame mode %q", s)
}

// DecodedFrame is the result of decoding a RawFrame.
type DecodedFrame struct {
	Mode     FrameMode
	Header   uint8
	Position uint32
	ParityOK bool
	Start    time.Duration
	End      time.Duration
}

// Axis identifies the scanner axis a lane carries.
type Axis int

// Axes
const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Axes lists all axes in output order.
var Axes = []Axis{AxisX, AxisY, AxisZ}

// String implements fmt.Stringer.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// ParseAxis parses X, Y or Z (case-insensitive).
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "X", "x":
		return AxisX, nil
	case "Y", "y":
		return AxisY, nil
	case "Z", "z":
		return AxisZ, nil
	}
	return 0, fmt.Errorf("invalid axis %q", s)
}

// LabeledFrame is a DecodedFrame tagged with an axis for presentation.
type LabeledFrame struct {
	Axis Axis
	DecodedFrame
}

// String formats the frame for display.
func (f LabeledFrame) String() string {
	parity := "OK"
	if !f.ParityOK {
		parity = "FAIL"
	}
	if f.Mode == ModeEnhanced18 {
		return fmt.Sprintf("%s | Header: 0b%01b | Pos: 0x%05X (18-bit) | Parity: %s",
			f.Axis, f.Header, f.Position, parity)
	}
	return fmt.Sprintf("%s | Header: 0b%03b | Pos: 0x%04X (16-bit) | Parity: %s",
		f.Axis, f.Header, f.Position, parity)
}

// Labeler tags decoded frames with a configured axis.
type Labeler struct {
	Axis Axis
}

// Label implements labeling.
func (l Labeler) Label(f DecodedFrame) LabeledFrame {
	return LabeledFrame{Axis: l.Axis, DecodedFrame: f}
}
