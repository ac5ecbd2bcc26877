package tensor

// Tensor3 is a rank-3 tensor whose shape is fixed by its dimension types.
//
// Tensors of different element or dimension types are different Go types,
// so element-wise operations between mismatched shapes do not compile.
// Always handle tensors through pointers; copy with Clone or Assign.
// Only the constructors (Zeros3, Full3, FromSlice3, ...) produce a usable
// tensor: the zero value has no buffer, and combining it with another
// tensor panics with ErrZeroValue.
//
// Operands of element-wise methods must share a layout; mixing LayoutCompat
// and LayoutRowMajor panics with ErrLayoutMismatch.
type Tensor3[T Scalar, N0, N1, N2 Dim] struct {
	dense[T]
}

// Zeros3 creates a rank-3 tensor filled with zeros.
func Zeros3[T Scalar, N0, N1, N2 Dim]() *Tensor3[T, N0, N1, N2] {
	return &Tensor3[T, N0, N1, N2]{dense: newDense[T](Shape3[N0, N1, N2]())}
}

// Full3 creates a rank-3 tensor filled with x.
func Full3[T Scalar, N0, N1, N2 Dim](x T) *Tensor3[T, N0, N1, N2] {
	t := Zeros3[T, N0, N1, N2]()
	t.Fill(x)
	return t
}

// FromSlice3 creates a rank-3 tensor from values in flat order.
// Returns ErrLengthMismatch unless len(values) equals the capacity.
func FromSlice3[T Scalar, N0, N1, N2 Dim](values []T) (*Tensor3[T, N0, N1, N2], error) {
	d, err := newDenseFromSlice(Shape3[N0, N1, N2](), values)
	if err != nil {
		return nil, err
	}
	return &Tensor3[T, N0, N1, N2]{dense: d}, nil
}

// MustFromSlice3 is like FromSlice3 but panics on a length mismatch.
func MustFromSlice3[T Scalar, N0, N1, N2 Dim](values []T) *Tensor3[T, N0, N1, N2] {
	t, err := FromSlice3[T, N0, N1, N2](values)
	if err != nil {
		panic(err)
	}
	return t
}

// UnsafeFromPointer3 copies Capacity3[N0, N1, N2]() contiguous elements starting at p.
// The caller must guarantee that many readable elements; nothing is checked
// except that p is non-nil.
func UnsafeFromPointer3[T Scalar, N0, N1, N2 Dim](p *T) *Tensor3[T, N0, N1, N2] {
	return &Tensor3[T, N0, N1, N2]{dense: newDenseFromPointer(Shape3[N0, N1, N2](), p)}
}

// WithLayout switches the index mapping and returns t.
// Stored elements are not moved.
func (t *Tensor3[T, N0, N1, N2]) WithLayout(l Layout) *Tensor3[T, N0, N1, N2] {
	t.setLayout(l)
	return t
}

func (t *Tensor3[T, N0, N1, N2]) offset(k, j, i int) int {
	return k*t.strides[0] + j*t.strides[1] + i
}

// Ref returns a pointer to the element at (k, j, i).
// Under LayoutCompat the offset is k*dims[0] + j*dims[1] + i.
// Indices are not checked unless built with the tensedebug tag.
func (t *Tensor3[T, N0, N1, N2]) Ref(k, j, i int) *T {
	return t.ref(t.offset(k, j, i), k, j, i)
}

// At returns the element at (k, j, i) without bounds checking.
func (t *Tensor3[T, N0, N1, N2]) At(k, j, i int) T {
	return *t.Ref(k, j, i)
}

// Set stores v at (k, j, i) without bounds checking.
func (t *Tensor3[T, N0, N1, N2]) Set(v T, k, j, i int) {
	*t.Ref(k, j, i) = v
}

// Get returns the element at (k, j, i), or an *IndexError when any
// component or the resulting offset is out of range.
func (t *Tensor3[T, N0, N1, N2]) Get(k, j, i int) (T, error) {
	return t.get(t.offset(k, j, i), k, j, i)
}

// Put stores v at (k, j, i), or returns an *IndexError when out of range.
func (t *Tensor3[T, N0, N1, N2]) Put(v T, k, j, i int) error {
	return t.put(v, t.offset(k, j, i), k, j, i)
}

// Add returns t + other element-wise.
// Panics with ErrLayoutMismatch if the layouts differ.
func (t *Tensor3[T, N0, N1, N2]) Add(other *Tensor3[T, N0, N1, N2]) *Tensor3[T, N0, N1, N2] {
	return &Tensor3[T, N0, N1, N2]{dense: t.binary(&other.dense, addInto[T])}
}

// Sub returns t - other element-wise.
func (t *Tensor3[T, N0, N1, N2]) Sub(other *Tensor3[T, N0, N1, N2]) *Tensor3[T, N0, N1, N2] {
	return &Tensor3[T, N0, N1, N2]{dense: t.binary(&other.dense, subInto[T])}
}

// Mul returns t * other element-wise.
func (t *Tensor3[T, N0, N1, N2]) Mul(other *Tensor3[T, N0, N1, N2]) *Tensor3[T, N0, N1, N2] {
	return &Tensor3[T, N0, N1, N2]{dense: t.binary(&other.dense, mulInto[T])}
}

// Div returns t / other element-wise.
func (t *Tensor3[T, N0, N1, N2]) Div(other *Tensor3[T, N0, N1, N2]) *Tensor3[T, N0, N1, N2] {
	return &Tensor3[T, N0, N1, N2]{dense: t.binary(&other.dense, divInto[T])}
}

// AddAssign adds other to t in place and returns t.
func (t *Tensor3[T, N0, N1, N2]) AddAssign(other *Tensor3[T, N0, N1, N2]) *Tensor3[T, N0, N1, N2] {
	t.inPlace(&other.dense, addInto[T])
	return t
}

// SubAssign subtracts other from t in place and returns t.
func (t *Tensor3[T, N0, N1, N2]) SubAssign(other *Tensor3[T, N0, N1, N2]) *Tensor3[T, N0, N1, N2] {
	t.inPlace(&other.dense, subInto[T])
	return t
}

// MulAssign multiplies t by other in place and returns t.
func (t *Tensor3[T, N0, N1, N2]) MulAssign(other *Tensor3[T, N0, N1, N2]) *Tensor3[T, N0, N1, N2] {
	t.inPlace(&other.dense, mulInto[T])
	return t
}

// DivAssign divides t by other in place and returns t.
func (t *Tensor3[T, N0, N1, N2]) DivAssign(other *Tensor3[T, N0, N1, N2]) *Tensor3[T, N0, N1, N2] {
	t.inPlace(&other.dense, divInto[T])
	return t
}

// AddScalar returns t + s element-wise.
func (t *Tensor3[T, N0, N1, N2]) AddScalar(s T) *Tensor3[T, N0, N1, N2] {
	return &Tensor3[T, N0, N1, N2]{dense: t.scalar(s, addScalarInto[T])}
}

// SubScalar returns t - s element-wise.
func (t *Tensor3[T, N0, N1, N2]) SubScalar(s T) *Tensor3[T, N0, N1, N2] {
	return &Tensor3[T, N0, N1, N2]{dense: t.scalar(s, subScalarInto[T])}
}

// MulScalar returns t * s element-wise.
func (t *Tensor3[T, N0, N1, N2]) MulScalar(s T) *Tensor3[T, N0, N1, N2] {
	return &Tensor3[T, N0, N1, N2]{dense: t.scalar(s, mulScalarInto[T])}
}

// DivScalar returns t / s element-wise.
func (t *Tensor3[T, N0, N1, N2]) DivScalar(s T) *Tensor3[T, N0, N1, N2] {
	return &Tensor3[T, N0, N1, N2]{dense: t.scalar(s, divScalarInto[T])}
}

// Neg returns -t. The receiver is left untouched; see NegInPlace.
func (t *Tensor3[T, N0, N1, N2]) Neg() *Tensor3[T, N0, N1, N2] {
	return &Tensor3[T, N0, N1, N2]{dense: t.neg()}
}

// Assign makes t a copy of src: every element, in flat order, and the layout.
// Afterwards t and src read the same value at every multi-index and share no
// storage.
func (t *Tensor3[T, N0, N1, N2]) Assign(src *Tensor3[T, N0, N1, N2]) {
	t.assign(&src.dense)
}

// Clone returns an independent copy of t with the same layout.
func (t *Tensor3[T, N0, N1, N2]) Clone() *Tensor3[T, N0, N1, N2] {
	return &Tensor3[T, N0, N1, N2]{dense: t.clone()}
}

// Equal reports whether t and other use the same layout and hold the same
// elements in flat order.
func (t *Tensor3[T, N0, N1, N2]) Equal(other *Tensor3[T, N0, N1, N2]) bool {
	return t.equal(&other.dense)
}
