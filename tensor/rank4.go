// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/tense/internal/tensor"
)

// Tensor4 is a rank-4 tensor whose shape is fixed by its dimension types.
type Tensor4[T Scalar, N0, N1, N2, N3 Dim] = tensor.Tensor4[T, N0, N1, N2, N3]

// Shape4 returns the shape encoded by 4 dimension types.
func Shape4[N0, N1, N2, N3 Dim]() Shape {
	return tensor.Shape4[N0, N1, N2, N3]()
}

// Capacity4 returns the element count of a Tensor4 with the given dimensions.
func Capacity4[N0, N1, N2, N3 Dim]() int {
	return tensor.Capacity4[N0, N1, N2, N3]()
}

// Zeros4 creates a rank-4 tensor filled with zeros.
func Zeros4[T Scalar, N0, N1, N2, N3 Dim]() *Tensor4[T, N0, N1, N2, N3] {
	return tensor.Zeros4[T, N0, N1, N2, N3]()
}

// Full4 creates a rank-4 tensor filled with x.
func Full4[T Scalar, N0, N1, N2, N3 Dim](x T) *Tensor4[T, N0, N1, N2, N3] {
	return tensor.Full4[T, N0, N1, N2, N3](x)
}

// FromSlice4 creates a rank-4 tensor from values in flat order.
// Returns ErrLengthMismatch unless len(values) equals the capacity.
func FromSlice4[T Scalar, N0, N1, N2, N3 Dim](values []T) (*Tensor4[T, N0, N1, N2, N3], error) {
	return tensor.FromSlice4[T, N0, N1, N2, N3](values)
}

// MustFromSlice4 is like FromSlice4 but panics on error.
func MustFromSlice4[T Scalar, N0, N1, N2, N3 Dim](values []T) *Tensor4[T, N0, N1, N2, N3] {
	return tensor.MustFromSlice4[T, N0, N1, N2, N3](values)
}

// UnsafeFromPointer4 copies Capacity4() contiguous elements starting at p.
// The caller must guarantee that many readable elements.
func UnsafeFromPointer4[T Scalar, N0, N1, N2, N3 Dim](p *T) *Tensor4[T, N0, N1, N2, N3] {
	return tensor.UnsafeFromPointer4[T, N0, N1, N2, N3](p)
}
