package tensor

import (
	"fmt"
	"math"
)

// MaxRank is the highest supported tensor rank.
const MaxRank = 4

// Shape represents the dimensions of a tensor.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// Validate checks if the shape is valid: 1 to MaxRank dimensions, all > 0,
// and an element count that fits in an int.
func (s Shape) Validate() error {
	if len(s) == 0 || len(s) > MaxRank {
		return fmt.Errorf("%w: rank %d not in [1, %d]", ErrInvalidDim, len(s), MaxRank)
	}
	n := 1
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("%w: dimension at index %d: %d (must be > 0)", ErrInvalidDim, i, dim)
		}
		if n > math.MaxInt/dim {
			return fmt.Errorf("%w: element count of %v overflows int", ErrInvalidDim, s)
		}
		n *= dim
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// String formats the shape as "(d0, d1, ...)".
func (s Shape) String() string {
	out := "("
	for i, d := range s {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprint(d)
	}
	return out + ")"
}
