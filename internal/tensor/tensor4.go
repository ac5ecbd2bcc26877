package tensor

// Tensor4 is a rank-4 tensor whose shape is fixed by its dimension types.
//
// Tensors of different element or dimension types are different Go types,
// so element-wise operations between mismatched shapes do not compile.
// Always handle tensors through pointers; copy with Clone or Assign.
// Only the constructors (Zeros4, Full4, FromSlice4, ...) produce a usable
// tensor: the zero value has no buffer, and combining it with another
// tensor panics with ErrZeroValue.
//
// Operands of element-wise methods must share a layout; mixing LayoutCompat
// and LayoutRowMajor panics with ErrLayoutMismatch.
type Tensor4[T Scalar, N0, N1, N2, N3 Dim] struct {
	dense[T]
}

// Zeros4 creates a rank-4 tensor filled with zeros.
func Zeros4[T Scalar, N0, N1, N2, N3 Dim]() *Tensor4[T, N0, N1, N2, N3] {
	return &Tensor4[T, N0, N1, N2, N3]{dense: newDense[T](Shape4[N0, N1, N2, N3]())}
}

// Full4 creates a rank-4 tensor filled with x.
func Full4[T Scalar, N0, N1, N2, N3 Dim](x T) *Tensor4[T, N0, N1, N2, N3] {
	t := Zeros4[T, N0, N1, N2, N3]()
	t.Fill(x)
	return t
}

// FromSlice4 creates a rank-4 tensor from values in flat order.
// Returns ErrLengthMismatch unless len(values) equals the capacity.
func FromSlice4[T Scalar, N0, N1, N2, N3 Dim](values []T) (*Tensor4[T, N0, N1, N2, N3], error) {
	d, err := newDenseFromSlice(Shape4[N0, N1, N2, N3](), values)
	if err != nil {
		return nil, err
	}
	return &Tensor4[T, N0, N1, N2, N3]{dense: d}, nil
}

// MustFromSlice4 is like FromSlice4 but panics on a length mismatch.
func MustFromSlice4[T Scalar, N0, N1, N2, N3 Dim](values []T) *Tensor4[T, N0, N1, N2, N3] {
	t, err := FromSlice4[T, N0, N1, N2, N3](values)
	if err != nil {
		panic(err)
	}
	return t
}

// UnsafeFromPointer4 copies Capacity4[N0, N1, N2, N3]() contiguous elements starting at p.
// The caller must guarantee that many readable elements; nothing is checked
// except that p is non-nil.
func UnsafeFromPointer4[T Scalar, N0, N1, N2, N3 Dim](p *T) *Tensor4[T, N0, N1, N2, N3] {
	return &Tensor4[T, N0, N1, N2, N3]{dense: newDenseFromPointer(Shape4[N0, N1, N2, N3](), p)}
}

// WithLayout switches the index mapping and returns t.
// Stored elements are not moved.
func (t *Tensor4[T, N0, N1, N2, N3]) WithLayout(l Layout) *Tensor4[T, N0, N1, N2, N3] {
	t.setLayout(l)
	return t
}

func (t *Tensor4[T, N0, N1, N2, N3]) offset(l, k, j, i int) int {
	return l*t.strides[0] + k*t.strides[1] + j*t.strides[2] + i
}

// Ref returns a pointer to the element at (l, k, j, i).
// Under LayoutCompat the offset is l*dims[0] + k*dims[1] + j*dims[2] + i.
// Indices are not checked unless built with the tensedebug tag.
func (t *Tensor4[T, N0, N1, N2, N3]) Ref(l, k, j, i int) *T {
	return t.ref(t.offset(l, k, j, i), l, k, j, i)
}

// At returns the element at (l, k, j, i) without bounds checking.
func (t *Tensor4[T, N0, N1, N2, N3]) At(l, k, j, i int) T {
	return *t.Ref(l, k, j, i)
}

// Set stores v at (l, k, j, i) without bounds checking.
func (t *Tensor4[T, N0, N1, N2, N3]) Set(v T, l, k, j, i int) {
	*t.Ref(l, k, j, i) = v
}

// Get returns the element at (l, k, j, i), or an *IndexError when any
// component or the resulting offset is out of range.
func (t *Tensor4[T, N0, N1, N2, N3]) Get(l, k, j, i int) (T, error) {
	return t.get(t.offset(l, k, j, i), l, k, j, i)
}

// Put stores v at (l, k, j, i), or returns an *IndexError when out of range.
func (t *Tensor4[T, N0, N1, N2, N3]) Put(v T, l, k, j, i int) error {
	return t.put(v, t.offset(l, k, j, i), l, k, j, i)
}

// Add returns t + other element-wise.
// Panics with ErrLayoutMismatch if the layouts differ.
func (t *Tensor4[T, N0, N1, N2, N3]) Add(other *Tensor4[T, N0, N1, N2, N3]) *Tensor4[T, N0, N1, N2, N3] {
	return &Tensor4[T, N0, N1, N2, N3]{dense: t.binary(&other.dense, addInto[T])}
}

// Sub returns t - other element-wise.
func (t *Tensor4[T, N0, N1, N2, N3]) Sub(other *Tensor4[T, N0, N1, N2, N3]) *Tensor4[T, N0, N1, N2, N3] {
	return &Tensor4[T, N0, N1, N2, N3]{dense: t.binary(&other.dense, subInto[T])}
}

// Mul returns t * other element-wise.
func (t *Tensor4[T, N0, N1, N2, N3]) Mul(other *Tensor4[T, N0, N1, N2, N3]) *Tensor4[T, N0, N1, N2, N3] {
	return &Tensor4[T, N0, N1, N2, N3]{dense: t.binary(&other.dense, mulInto[T])}
}

// Div returns t / other element-wise.
func (t *Tensor4[T, N0, N1, N2, N3]) Div(other *Tensor4[T, N0, N1, N2, N3]) *Tensor4[T, N0, N1, N2, N3] {
	return &Tensor4[T, N0, N1, N2, N3]{dense: t.binary(&other.dense, divInto[T])}
}

// AddAssign adds other to t in place and returns t.
func (t *Tensor4[T, N0, N1, N2, N3]) AddAssign(other *Tensor4[T, N0, N1, N2, N3]) *Tensor4[T, N0, N1, N2, N3] {
	t.inPlace(&other.dense, addInto[T])
	return t
}

// SubAssign subtracts other from t in place and returns t.
func (t *Tensor4[T, N0, N1, N2, N3]) SubAssign(other *Tensor4[T, N0, N1, N2, N3]) *Tensor4[T, N0, N1, N2, N3] {
	t.inPlace(&other.dense, subInto[T])
	return t
}

// MulAssign multiplies t by other in place and returns t.
func (t *Tensor4[T, N0, N1, N2, N3]) MulAssign(other *Tensor4[T, N0, N1, N2, N3]) *Tensor4[T, N0, N1, N2, N3] {
	t.inPlace(&other.dense, mulInto[T])
	return t
}

// DivAssign divides t by other in place and returns t.
func (t *Tensor4[T, N0, N1, N2, N3]) DivAssign(other *Tensor4[T, N0, N1, N2, N3]) *Tensor4[T, N0, N1, N2, N3] {
	t.inPlace(&other.dense, divInto[T])
	return t
}

// AddScalar returns t + s element-wise.
func (t *Tensor4[T, N0, N1, N2, N3]) AddScalar(s T) *Tensor4[T, N0, N1, N2, N3] {
	return &Tensor4[T, N0, N1, N2, N3]{dense: t.scalar(s, addScalarInto[T])}
}

// SubScalar returns t - s element-wise.
func (t *Tensor4[T, N0, N1, N2, N3]) SubScalar(s T) *Tensor4[T, N0, N1, N2, N3] {
	return &Tensor4[T, N0, N1, N2, N3]{dense: t.scalar(s, subScalarInto[T])}
}

// MulScalar returns t * s element-wise.
func (t *Tensor4[T, N0, N1, N2, N3]) MulScalar(s T) *Tensor4[T, N0, N1, N2, N3] {
	return &Tensor4[T, N0, N1, N2, N3]{dense: t.scalar(s, mulScalarInto[T])}
}

// DivScalar returns t / s element-wise.
func (t *Tensor4[T, N0, N1, N2, N3]) DivScalar(s T) *Tensor4[T, N0, N1, N2, N3] {
	return &Tensor4[T, N0, N1, N2, N3]{dense: t.scalar(s, divScalarInto[T])}
}

// Neg returns -t. The receiver is left untouched; see NegInPlace.
func (t *Tensor4[T, N0, N1, N2, N3]) Neg() *Tensor4[T, N0, N1, N2, N3] {
	return &Tensor4[T, N0, N1, N2, N3]{dense: t.neg()}
}

// Assign makes t a copy of src: every element, in flat order, and the layout.
// Afterwards t and src read the same value at every multi-index and share no
// storage.
func (t *Tensor4[T, N0, N1, N2, N3]) Assign(src *Tensor4[T, N0, N1, N2, N3]) {
	t.assign(&src.dense)
}

// Clone returns an independent copy of t with the same layout.
func (t *Tensor4[T, N0, N1, N2, N3]) Clone() *Tensor4[T, N0, N1, N2, N3] {
	return &Tensor4[T, N0, N1, N2, N3]{dense: t.clone()}
}

// Equal reports whether t and other use the same layout and hold the same
// elements in flat order.
func (t *Tensor4[T, N0, N1, N2, N3]) Equal(other *Tensor4[T, N0, N1, N2, N3]) bool {
	return t.equal(&other.dense)
}
