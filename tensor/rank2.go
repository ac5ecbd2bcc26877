// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/tense/internal/tensor"
)

// Tensor2 is a rank-2 tensor whose shape is fixed by its dimension types.
type Tensor2[T Scalar, N0, N1 Dim] = tensor.Tensor2[T, N0, N1]

// Shape2 returns the shape encoded by 2 dimension types.
func Shape2[N0, N1 Dim]() Shape {
	return tensor.Shape2[N0, N1]()
}

// Capacity2 returns the element count of a Tensor2 with the given dimensions.
func Capacity2[N0, N1 Dim]() int {
	return tensor.Capacity2[N0, N1]()
}

// Zeros2 creates a rank-2 tensor filled with zeros.
func Zeros2[T Scalar, N0, N1 Dim]() *Tensor2[T, N0, N1] {
	return tensor.Zeros2[T, N0, N1]()
}

// Full2 creates a rank-2 tensor filled with x.
func Full2[T Scalar, N0, N1 Dim](x T) *Tensor2[T, N0, N1] {
	return tensor.Full2[T, N0, N1](x)
}

// FromSlice2 creates a rank-2 tensor from values in flat order.
// Returns ErrLengthMismatch unless len(values) equals the capacity.
func FromSlice2[T Scalar, N0, N1 Dim](values []T) (*Tensor2[T, N0, N1], error) {
	return tensor.FromSlice2[T, N0, N1](values)
}

// MustFromSlice2 is like FromSlice2 but panics on error.
func MustFromSlice2[T Scalar, N0, N1 Dim](values []T) *Tensor2[T, N0, N1] {
	return tensor.MustFromSlice2[T, N0, N1](values)
}

// UnsafeFromPointer2 copies Capacity2() contiguous elements starting at p.
// The caller must guarantee that many readable elements.
func UnsafeFromPointer2[T Scalar, N0, N1 Dim](p *T) *Tensor2[T, N0, N1] {
	return tensor.UnsafeFromPointer2[T, N0, N1](p)
}
