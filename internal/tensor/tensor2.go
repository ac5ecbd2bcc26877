package tensor

// Tensor2 is a rank-2 tensor whose shape is fixed by its dimension types.
//
// Tensors of different element or dimension types are different Go types,
// so element-wise operations between mismatched shapes do not compile.
// Always handle tensors through pointers; copy with Clone or Assign.
// Only the constructors (Zeros2, Full2, FromSlice2, ...) produce a usable
// tensor: the zero value has no buffer, and combining it with another
// tensor panics with ErrZeroValue.
//
// Operands of element-wise methods must share a layout; mixing LayoutCompat
// and LayoutRowMajor panics with ErrLayoutMismatch.
//
// Example:
//
//	a := tensor.MustFromSlice2[float64, tensor.D3, tensor.D4]([]float64{
//		0, 1, 2, 3,
//		4, 5, 6, 7,
//		8, 9, 10, 11,
//	})
//	a.At(1, 2)           // 5: offset 1*3 + 2 under LayoutCompat
//	b := a.Add(a)        // new tensor, a untouched
//	a.MulAssign(b)       // in place
type Tensor2[T Scalar, N0, N1 Dim] struct {
	dense[T]
}

// Zeros2 creates a rank-2 tensor filled with zeros.
func Zeros2[T Scalar, N0, N1 Dim]() *Tensor2[T, N0, N1] {
	return &Tensor2[T, N0, N1]{dense: newDense[T](Shape2[N0, N1]())}
}

// Full2 creates a rank-2 tensor filled with x.
func Full2[T Scalar, N0, N1 Dim](x T) *Tensor2[T, N0, N1] {
	t := Zeros2[T, N0, N1]()
	t.Fill(x)
	return t
}

// FromSlice2 creates a rank-2 tensor from values in flat order.
// Returns ErrLengthMismatch unless len(values) equals the capacity.
func FromSlice2[T Scalar, N0, N1 Dim](values []T) (*Tensor2[T, N0, N1], error) {
	d, err := newDenseFromSlice(Shape2[N0, N1](), values)
	if err != nil {
		return nil, err
	}
	return &Tensor2[T, N0, N1]{dense: d}, nil
}

// MustFromSlice2 is like FromSlice2 but panics on a length mismatch.
func MustFromSlice2[T Scalar, N0, N1 Dim](values []T) *Tensor2[T, N0, N1] {
	t, err := FromSlice2[T, N0, N1](values)
	if err != nil {
		panic(err)
	}
	return t
}

// UnsafeFromPointer2 copies Capacity2[N0, N1]() contiguous elements starting at p.
// The caller must guarantee that many readable elements; nothing is checked
// except that p is non-nil.
func UnsafeFromPointer2[T Scalar, N0, N1 Dim](p *T) *Tensor2[T, N0, N1] {
	return &Tensor2[T, N0, N1]{dense: newDenseFromPointer(Shape2[N0, N1](), p)}
}

// WithLayout switches the index mapping and returns t.
// Stored elements are not moved.
func (t *Tensor2[T, N0, N1]) WithLayout(l Layout) *Tensor2[T, N0, N1] {
	t.setLayout(l)
	return t
}

func (t *Tensor2[T, N0, N1]) offset(j, i int) int {
	return j*t.strides[0] + i
}

// Ref returns a pointer to the element at (j, i).
// Under LayoutCompat the offset is j*dims[0] + i.
// Indices are not checked unless built with the tensedebug tag.
func (t *Tensor2[T, N0, N1]) Ref(j, i int) *T {
	return t.ref(t.offset(j, i), j, i)
}

// At returns the element at (j, i) without bounds checking.
func (t *Tensor2[T, N0, N1]) At(j, i int) T {
	return *t.Ref(j, i)
}

// Set stores v at (j, i) without bounds checking.
func (t *Tensor2[T, N0, N1]) Set(v T, j, i int) {
	*t.Ref(j, i) = v
}

// Get returns the element at (j, i), or an *IndexError when any
// component or the resulting offset is out of range.
func (t *Tensor2[T, N0, N1]) Get(j, i int) (T, error) {
	return t.get(t.offset(j, i), j, i)
}

// Put stores v at (j, i), or returns an *IndexError when out of range.
func (t *Tensor2[T, N0, N1]) Put(v T, j, i int) error {
	return t.put(v, t.offset(j, i), j, i)
}

// Add returns t + other element-wise.
// Panics with ErrLayoutMismatch if the layouts differ.
func (t *Tensor2[T, N0, N1]) Add(other *Tensor2[T, N0, N1]) *Tensor2[T, N0, N1] {
	return &Tensor2[T, N0, N1]{dense: t.binary(&other.dense, addInto[T])}
}

// Sub returns t - other element-wise.
func (t *Tensor2[T, N0, N1]) Sub(other *Tensor2[T, N0, N1]) *Tensor2[T, N0, N1] {
	return &Tensor2[T, N0, N1]{dense: t.binary(&other.dense, subInto[T])}
}

// Mul returns t * other element-wise.
func (t *Tensor2[T, N0, N1]) Mul(other *Tensor2[T, N0, N1]) *Tensor2[T, N0, N1] {
	return &Tensor2[T, N0, N1]{dense: t.binary(&other.dense, mulInto[T])}
}

// Div returns t / other element-wise.
func (t *Tensor2[T, N0, N1]) Div(other *Tensor2[T, N0, N1]) *Tensor2[T, N0, N1] {
	return &Tensor2[T, N0, N1]{dense: t.binary(&other.dense, divInto[T])}
}

// AddAssign adds other to t in place and returns t.
func (t *Tensor2[T, N0, N1]) AddAssign(other *Tensor2[T, N0, N1]) *Tensor2[T, N0, N1] {
	t.inPlace(&other.dense, addInto[T])
	return t
}

// SubAssign subtracts other from t in place and returns t.
func (t *Tensor2[T, N0, N1]) SubAssign(other *Tensor2[T, N0, N1]) *Tensor2[T, N0, N1] {
	t.inPlace(&other.dense, subInto[T])
	return t
}

// MulAssign multiplies t by other in place and returns t.
func (t *Tensor2[T, N0, N1]) MulAssign(other *Tensor2[T, N0, N1]) *Tensor2[T, N0, N1] {
	t.inPlace(&other.dense, mulInto[T])
	return t
}

// DivAssign divides t by other in place and returns t.
func (t *Tensor2[T, N0, N1]) DivAssign(other *Tensor2[T, N0, N1]) *Tensor2[T, N0, N1] {
	t.inPlace(&other.dense, divInto[T])
	return t
}

// AddScalar returns t + s element-wise.
func (t *Tensor2[T, N0, N1]) AddScalar(s T) *Tensor2[T, N0, N1] {
	return &Tensor2[T, N0, N1]{dense: t.scalar(s, addScalarInto[T])}
}

// SubScalar returns t - s element-wise.
func (t *Tensor2[T, N0, N1]) SubScalar(s T) *Tensor2[T, N0, N1] {
	return &Tensor2[T, N0, N1]{dense: t.scalar(s, subScalarInto[T])}
}

// MulScalar returns t * s element-wise.
func (t *Tensor2[T, N0, N1]) MulScalar(s T) *Tensor2[T, N0, N1] {
	return &Tensor2[T, N0, N1]{dense: t.scalar(s, mulScalarInto[T])}
}

// DivScalar returns t / s element-wise.
func (t *Tensor2[T, N0, N1]) DivScalar(s T) *Tensor2[T, N0, N1] {
	return &Tensor2[T, N0, N1]{dense: t.scalar(s, divScalarInto[T])}
}

// Neg returns -t. The receiver is left untouched; see NegInPlace.
func (t *Tensor2[T, N0, N1]) Neg() *Tensor2[T, N0, N1] {
	return &Tensor2[T, N0, N1]{dense: t.neg()}
}

// Assign makes t a copy of src: every element, in flat order, and the layout.
// Afterwards t and src read the same value at every multi-index and share no
// storage.
func (t *Tensor2[T, N0, N1]) Assign(src *Tensor2[T, N0, N1]) {
	t.assign(&src.dense)
}

// Clone returns an independent copy of t with the same layout.
func (t *Tensor2[T, N0, N1]) Clone() *Tensor2[T, N0, N1] {
	return &Tensor2[T, N0, N1]{dense: t.clone()}
}

// Equal reports whether t and other use the same layout and hold the same
// elements in flat order.
func (t *Tensor2[T, N0, N1]) Equal(other *Tensor2[T, N0, N1]) bool {
	return t.equal(&other.dense)
}
