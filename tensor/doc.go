// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides small fixed-shape tensors with element-wise arithmetic.
//
// # Overview
//
// The shape of a tensor is part of its Go type. Each axis is described by a
// dimension type, a type with a Len method returning a constant:
//   - Tensor1[T, N0] through Tensor4[T, N0, N1, N2, N3]
//   - Element access takes exactly as many indices as the rank
//   - Operands of Add, Sub, Mul and Div must have identical types
//
// Mismatched ranks and shapes are therefore compile errors, not runtime ones.
//
// # Basic Usage
//
//	import "github.com/born-ml/tense/tensor"
//
//	type Batch struct{}
//
//	func (Batch) Len() int { return 32 }
//
//	func main() {
//	    a := tensor.Full2[float32, Batch, tensor.D4](2)
//	    b := tensor.Full2[float32, Batch, tensor.D4](3)
//
//	    c := a.Mul(b)    // new tensor
//	    a.AddAssign(c)   // in place
//	    c.Set(1, 0, 3)   // c(j=0, i=3) = 1
//	}
//
// # Supported Data Types
//
// Any type whose underlying type is a Go integer or floating point type
// satisfies Scalar. Division follows Go semantics: integer division by zero
// panics, float division by zero yields ±Inf or NaN.
//
// # Indexing
//
// Offsets are computed as sum(idx[k] * stride[k]). The default LayoutCompat
// uses the legacy strides (dims[0], ..., dims[n-2], 1):
//
//	(j, i)       -> j*dims[0] + i
//	(k, j, i)    -> k*dims[0] + j*dims[1] + i
//	(l, k, j, i) -> l*dims[0] + k*dims[1] + j*dims[2] + i
//
// This is not row-major addressing. Call WithLayout(LayoutRowMajor) to switch
// a tensor to canonical C-order strides.
//
// # Bounds
//
// Ref, At and Set do not check index components; an offset past the buffer
// still panics through Go's slice bounds check. Get and Put return an
// *IndexError instead. Building with -tags tensedebug makes Ref, At and Set
// check every component and panic on violation.
//
// # Memory
//
// Every tensor owns one buffer of exactly Capacity() elements, allocated by
// its constructor and never resized. Tensors are used through pointers;
// Clone and Assign copy elements, so two tensors never share storage.
package tensor
