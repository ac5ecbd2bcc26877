package tensor

import (
	"fmt"
	"unsafe"
)

// dense is the storage shared by every rank: a flat buffer of exactly
// shape.NumElements() scalars plus the strides of the active layout.
// The buffer is allocated once and never resized or shared between tensors.
type dense[T Scalar] struct {
	data    []T
	shape   Shape
	strides []int
	layout  Layout
}

// newDense allocates a zeroed buffer for shape.
func newDense[T Scalar](shape Shape) dense[T] {
	return dense[T]{
		data:    make([]T, shape.NumElements()),
		shape:   shape,
		strides: LayoutCompat.Strides(shape),
		layout:  LayoutCompat,
	}
}

// newDenseFromSlice copies src into a new buffer for shape.
func newDenseFromSlice[T Scalar](shape Shape, src []T) (dense[T], error) {
	if len(src) != shape.NumElements() {
		return dense[T]{}, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrLengthMismatch, shape, shape.NumElements(), len(src))
	}
	d := newDense[T](shape)
	copy(d.data, src)
	return d, nil
}

// newDenseFromPointer copies shape.NumElements() scalars starting at p.
// The caller guarantees that many readable elements follow p.
func newDenseFromPointer[T Scalar](shape Shape, p *T) dense[T] {
	if p == nil {
		panic("tensor: nil pointer passed to UnsafeFromPointer")
	}
	d := newDense[T](shape)
	//nolint:gosec // caller guarantees capacity contiguous elements
	copy(d.data, unsafe.Slice(p, len(d.data)))
	return d
}

// setLayout switches the index mapping. The buffer is not reordered.
func (d *dense[T]) setLayout(l Layout) {
	d.strides = l.Strides(d.shape)
	d.layout = l
}

// Shape returns the tensor's shape.
func (d *dense[T]) Shape() Shape {
	return d.shape.Clone()
}

// Rank returns the number of dimensions.
func (d *dense[T]) Rank() int {
	return len(d.shape)
}

// DimLen returns the length of dimension i.
// Panics if i is not in [0, Rank()).
func (d *dense[T]) DimLen(i int) int {
	if i < 0 || i >= len(d.shape) {
		panic(fmt.Sprintf("dimension %d out of range for rank %d", i, len(d.shape)))
	}
	return d.shape[i]
}

// Capacity returns the total number of elements.
func (d *dense[T]) Capacity() int {
	return len(d.data)
}

// Layout returns the active index mapping.
func (d *dense[T]) Layout() Layout {
	return d.layout
}

// DType returns the element data type.
func (d *dense[T]) DType() DataType {
	return DataTypeOf[T]()
}

// Data returns the flat buffer in storage order.
// The slice directly accesses the underlying memory (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (d *dense[T]) Data() []T {
	return d.data
}

// Fill sets every element to x.
func (d *dense[T]) Fill(x T) {
	for i := range d.data {
		d.data[i] = x
	}
}

// NegInPlace negates every element of the receiver.
// Unsigned types wrap around.
func (d *dense[T]) NegInPlace() {
	for i, v := range d.data {
		d.data[i] = -v
	}
}

// ByteSize returns the memory held by the element buffer in bytes.
func (d *dense[T]) ByteSize() int {
	return len(d.data) * d.DType().Size()
}

// String returns a human-readable representation of the tensor.
func (d *dense[T]) String() string {
	return fmt.Sprintf("Tensor[%s]%v %s", d.DType(), d.shape, d.layout)
}

// ref returns the element at a flat offset.
// With the tensedebug tag every index component is checked first.
func (d *dense[T]) ref(off int, idx ...int) *T {
	if boundsChecked {
		if err := d.check(off, idx...); err != nil {
			panic(err)
		}
	}
	return &d.data[off]
}

// check validates every index component and the resulting offset.
func (d *dense[T]) check(off int, idx ...int) error {
	if len(idx) != len(d.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(d.shape), len(idx)))
	}
	for axis, v := range idx {
		if v < 0 || v >= d.shape[axis] {
			return &IndexError{Axis: axis, Index: v, Bound: d.shape[axis]}
		}
	}
	if off >= len(d.data) {
		return &IndexError{Axis: -1, Index: off, Bound: len(d.data)}
	}
	return nil
}

func (d *dense[T]) get(off int, idx ...int) (T, error) {
	if err := d.check(off, idx...); err != nil {
		var zero T
		return zero, err
	}
	return d.data[off], nil
}

func (d *dense[T]) put(v T, off int, idx ...int) error {
	if err := d.check(off, idx...); err != nil {
		return err
	}
	d.data[off] = v
	return nil
}

// like returns an empty tensor with the receiver's shape and layout.
func (d *dense[T]) like() dense[T] {
	return dense[T]{
		data:    make([]T, len(d.data)),
		shape:   d.shape,
		strides: d.strides,
		layout:  d.layout,
	}
}

func (d *dense[T]) clone() dense[T] {
	out := d.like()
	copy(out.data, d.data)
	return out
}

// mustMatch panics unless other can be combined with d element by element.
// Both operands must come from a constructor and share a layout, otherwise
// flat positions would not correspond to the same multi-index.
func (d *dense[T]) mustMatch(other *dense[T]) {
	if len(d.data) == 0 || len(other.data) == 0 {
		panic(ErrZeroValue)
	}
	if d.layout != other.layout {
		panic(fmt.Errorf("%w: %s vs %s", ErrLayoutMismatch, d.layout, other.layout))
	}
}

// assign makes d an element-for-element copy of src, layout included.
// A zero-value receiver gets its own buffer.
func (d *dense[T]) assign(src *dense[T]) {
	if len(src.data) == 0 {
		panic(ErrZeroValue)
	}
	if len(d.data) != len(src.data) {
		d.data = make([]T, len(src.data))
	}
	copy(d.data, src.data)
	d.shape = src.shape
	d.strides = src.strides
	d.layout = src.layout
}

// equal reports whether d and other address the same values at every
// multi-index: same layout and same elements in flat order.
func (d *dense[T]) equal(other *dense[T]) bool {
	if d.layout != other.layout || len(d.data) != len(other.data) {
		return false
	}
	for i, v := range d.data {
		if v != other.data[i] {
			return false
		}
	}
	return true
}

func (d *dense[T]) neg() dense[T] {
	out := d.clone()
	out.NegInPlace()
	return out
}
