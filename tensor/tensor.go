// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/tense/internal/tensor"
)

// Type aliases for public API

// Scalar is a constraint for tensor element types.
// Supported types: signed and unsigned integers, float32, float64.
type Scalar = tensor.Scalar

// DataType represents the runtime element type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Int     DataType = tensor.Int
	Int8    DataType = tensor.Int8
	Int16   DataType = tensor.Int16
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint    DataType = tensor.Uint
	Uint8   DataType = tensor.Uint8
	Uint16  DataType = tensor.Uint16
	Uint32  DataType = tensor.Uint32
	Uint64  DataType = tensor.Uint64
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// MaxRank is the highest supported tensor rank.
const MaxRank = tensor.MaxRank

// Layout selects how a multi-index maps to a flat offset.
type Layout = tensor.Layout

// Layout constants.
const (
	LayoutCompat   Layout = tensor.LayoutCompat
	LayoutRowMajor Layout = tensor.LayoutRowMajor
)

// Dim is implemented by dimension types. Len must return a positive constant.
type Dim = tensor.Dim

// Predefined dimension types.
type (
	D1   = tensor.D1
	D2   = tensor.D2
	D3   = tensor.D3
	D4   = tensor.D4
	D5   = tensor.D5
	D6   = tensor.D6
	D7   = tensor.D7
	D8   = tensor.D8
	D10  = tensor.D10
	D12  = tensor.D12
	D16  = tensor.D16
	D32  = tensor.D32
	D64  = tensor.D64
	D128 = tensor.D128
	D256 = tensor.D256
)

// Errors returned by checked constructors and accessors.
var (
	ErrLengthMismatch  = tensor.ErrLengthMismatch
	ErrIndexOutOfRange = tensor.ErrIndexOutOfRange
	ErrInvalidDim      = tensor.ErrInvalidDim
	ErrLayoutMismatch  = tensor.ErrLayoutMismatch
	ErrZeroValue       = tensor.ErrZeroValue
)

// IndexError describes an out-of-range multi-index.
type IndexError = tensor.IndexError

// DataTypeOf returns the DataType of T.
func DataTypeOf[T Scalar]() DataType {
	return tensor.DataTypeOf[T]()
}
