package xy2

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrTruncatedFrame indicates the input ended in the middle of a frame.
	ErrTruncatedFrame = errors.New("truncated frame")
	// ErrResyncDetected indicates a frame start edge arrived before the
	// previous frame was complete. The partial frame is discarded.
	ErrResyncDetected = errors.New("resync detected")
	// ErrUnknownFrameHeader indicates the header bits match no frame mode.
	ErrUnknownFrameHeader = errors.New("unknown frame header")
)

// TruncatedError reports the partial frame dropped at end of input.
type TruncatedError struct {
	Bits  int
	Start time.Duration
}

// Error implements error.
func (e *TruncatedError) Error() string {
	return fmt.Sprintf("truncated frame: %d of %d bits at %v", e.Bits, FrameBits, e.Start)
}

// Is matches ErrTruncatedFrame.
func (e *TruncatedError) Is(target error) bool {
	return target == ErrTruncatedFrame
}

// ResyncError reports the partial frame dropped by a new start edge.
type ResyncError struct {
	Bits  int
	Start time.Duration
	At    time.Duration
}

// Error implements error.
func (e *ResyncError) Error() string {
	return fmt.Sprintf("resync detected at %v: dropped %d bits since %v", e.At, e.Bits, e.Start)
}

// Is matches ErrResyncDetected.
func (e *ResyncError) Is(target error) bool {
	return target == ErrResyncDetected
}

// UnknownHeaderError reports a frame with an unrecognized header.
type UnknownHeaderError struct {
	// Header is bits 0..2 of the frame.
	Header uint8
	// Idle is set when no bit of the frame is set.
	Idle  bool
	Start time.Duration
	End   time.Duration
}

// Error implements error.
func (e *UnknownHeaderError) Error() string {
	if e.Idle {
		return "unknown frame header: idle lane"
	}
	return fmt.Sprintf("unknown frame header: 0b%03b", e.Header)
}

// Is matches ErrUnknownFrameHeader.
func (e *UnknownHeaderError) Is(target error) bool {
	return target == ErrUnknownFrameHeader
}

// IsIdle checks if err is an UnknownHeaderError from an idle lane.
func IsIdle(err error) bool {
	var e *UnknownHeaderError
	return errors.As(err, &e) && e.Idle
}
