// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/tense/internal/tensor"
)

// Tensor3 is a rank-3 tensor whose shape is fixed by its dimension types.
type Tensor3[T Scalar, N0, N1, N2 Dim] = tensor.Tensor3[T, N0, N1, N2]

// Shape3 returns the shape encoded by 3 dimension types.
func Shape3[N0, N1, N2 Dim]() Shape {
	return tensor.Shape3[N0, N1, N2]()
}

// Capacity3 returns the element count of a Tensor3 with the given dimensions.
func Capacity3[N0, N1, N2 Dim]() int {
	return tensor.Capacity3[N0, N1, N2]()
}

// Zeros3 creates a rank-3 tensor filled with zeros.
func Zeros3[T Scalar, N0, N1, N2 Dim]() *Tensor3[T, N0, N1, N2] {
	return tensor.Zeros3[T, N0, N1, N2]()
}

// Full3 creates a rank-3 tensor filled with x.
func Full3[T Scalar, N0, N1, N2 Dim](x T) *Tensor3[T, N0, N1, N2] {
	return tensor.Full3[T, N0, N1, N2](x)
}

// FromSlice3 creates a rank-3 tensor from values in flat order.
// Returns ErrLengthMismatch unless len(values) equals the capacity.
func FromSlice3[T Scalar, N0, N1, N2 Dim](values []T) (*Tensor3[T, N0, N1, N2], error) {
	return tensor.FromSlice3[T, N0, N1, N2](values)
}

// MustFromSlice3 is like FromSlice3 but panics on error.
func MustFromSlice3[T Scalar, N0, N1, N2 Dim](values []T) *Tensor3[T, N0, N1, N2] {
	return tensor.MustFromSlice3[T, N0, N1, N2](values)
}

// UnsafeFromPointer3 copies Capacity3() contiguous elements starting at p.
// The caller must guarantee that many readable elements.
func UnsafeFromPointer3[T Scalar, N0, N1, N2 Dim](p *T) *Tensor3[T, N0, N1, N2] {
	return tensor.UnsafeFromPointer3[T, N0, N1, N2](p)
}
