package tensor

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrLengthMismatch  = errors.New("input length does not match tensor capacity")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidDim      = errors.New("invalid dimension")
	ErrLayoutMismatch  = errors.New("operands use different layouts")
	ErrZeroValue       = errors.New("tensor not created by a constructor")
)

// IndexError describes an out-of-range multi-index.
// Axis is -1 when every component is in range but the computed flat offset
// falls outside the buffer (possible with LayoutCompat).
type IndexError struct {
	Axis  int // Offending axis, or -1 for a flat offset overflow
	Index int // Offending index component or flat offset
	Bound int // Dimension length or capacity
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	if e.Axis < 0 {
		return fmt.Sprintf("%s: flat offset %d exceeds capacity %d", ErrIndexOutOfRange, e.Index, e.Bound)
	}
	return fmt.Sprintf("%s: index %d for dimension %d (size %d)", ErrIndexOutOfRange, e.Index, e.Axis, e.Bound)
}

// Unwrap lets errors.Is match ErrIndexOutOfRange.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
