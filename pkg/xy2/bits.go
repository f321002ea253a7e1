package xy2

import "fmt"

// ParseBits parses a frame written as 0/1 characters, bit 0 first.
// Spaces, underscores and an optional 0b prefix are ignored.
func ParseBits(s string) (RawFrame, error) {
	var f RawFrame
	if len(s) > 2 && s[0] == '0' && (s[1] == 'b' || s[1] == 'B') {
		s = s[2:]
	}
	var n int
	for _, c := range s {
		switch c {
		case ' ', '_':
			continue
		case '0', '1':
			if n >= FrameBits {
				return RawFrame{}, fmt.Errorf("too many bits, want %d", FrameBits)
			}
			f.Bits[n] = c == '1'
			n++
		default:
			return RawFrame{}, fmt.Errorf("invalid bit character %q", c)
		}
	}
	if n != FrameBits {
		return RawFrame{}, fmt.Errorf("got %d bits, want %d", n, FrameBits)
	}
	return f, nil
}

// FrameFromWord builds a frame from a 20-bit word, bit 0 being the MSB.
func FrameFromWord(w uint32) RawFrame {
	var f RawFrame
	for i := 0; i < FrameBits; i++ {
		f.Bits[i] = w&(1<<uint(FrameBits-1-i)) != 0
	}
	return f
}
