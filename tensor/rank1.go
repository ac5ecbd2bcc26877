// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/tense/internal/tensor"
)

// Tensor1 is a rank-1 tensor whose shape is fixed by its dimension types.
type Tensor1[T Scalar, N0 Dim] = tensor.Tensor1[T, N0]

// Shape1 returns the shape encoded by 1 dimension types.
func Shape1[N0 Dim]() Shape {
	return tensor.Shape1[N0]()
}

// Capacity1 returns the element count of a Tensor1 with the given dimensions.
func Capacity1[N0 Dim]() int {
	return tensor.Capacity1[N0]()
}

// Zeros1 creates a rank-1 tensor filled with zeros.
func Zeros1[T Scalar, N0 Dim]() *Tensor1[T, N0] {
	return tensor.Zeros1[T, N0]()
}

// Full1 creates a rank-1 tensor filled with x.
func Full1[T Scalar, N0 Dim](x T) *Tensor1[T, N0] {
	return tensor.Full1[T, N0](x)
}

// FromSlice1 creates a rank-1 tensor from values in flat order.
// Returns ErrLengthMismatch unless len(values) equals the capacity.
func FromSlice1[T Scalar, N0 Dim](values []T) (*Tensor1[T, N0], error) {
	return tensor.FromSlice1[T, N0](values)
}

// MustFromSlice1 is like FromSlice1 but panics on error.
func MustFromSlice1[T Scalar, N0 Dim](values []T) *Tensor1[T, N0] {
	return tensor.MustFromSlice1[T, N0](values)
}

// UnsafeFromPointer1 copies Capacity1() contiguous elements starting at p.
// The caller must guarantee that many readable elements.
func UnsafeFromPointer1[T Scalar, N0 Dim](p *T) *Tensor1[T, N0] {
	return tensor.UnsafeFromPointer1[T, N0](p)
}
