package tensor

// Tensor1 is a rank-1 tensor whose shape is fixed by its dimension types.
//
// Tensors of different element or dimension types are different Go types,
// so element-wise operations between mismatched shapes do not compile.
// Always handle tensors through pointers; copy with Clone or Assign.
// Only the constructors (Zeros1, Full1, FromSlice1, ...) produce a usable
// tensor: the zero value has no buffer, and combining it with another
// tensor panics with ErrZeroValue.
//
// Operands of element-wise methods must share a layout; mixing LayoutCompat
// and LayoutRowMajor panics with ErrLayoutMismatch.
type Tensor1[T Scalar, N0 Dim] struct {
	dense[T]
}

// Zeros1 creates a rank-1 tensor filled with zeros.
func Zeros1[T Scalar, N0 Dim]() *Tensor1[T, N0] {
	return &Tensor1[T, N0]{dense: newDense[T](Shape1[N0]())}
}

// Full1 creates a rank-1 tensor filled with x.
func Full1[T Scalar, N0 Dim](x T) *Tensor1[T, N0] {
	t := Zeros1[T, N0]()
	t.Fill(x)
	return t
}

// FromSlice1 creates a rank-1 tensor from values in flat order.
// Returns ErrLengthMismatch unless len(values) equals the capacity.
func FromSlice1[T Scalar, N0 Dim](values []T) (*Tensor1[T, N0], error) {
	d, err := newDenseFromSlice(Shape1[N0](), values)
	if err != nil {
		return nil, err
	}
	return &Tensor1[T, N0]{dense: d}, nil
}

// MustFromSlice1 is like FromSlice1 but panics on a length mismatch.
func MustFromSlice1[T Scalar, N0 Dim](values []T) *Tensor1[T, N0] {
	t, err := FromSlice1[T, N0](values)
	if err != nil {
		panic(err)
	}
	return t
}

// UnsafeFromPointer1 copies Capacity1[N0]() contiguous elements starting at p.
// The caller must guarantee that many readable elements; nothing is checked
// except that p is non-nil.
func UnsafeFromPointer1[T Scalar, N0 Dim](p *T) *Tensor1[T, N0] {
	return &Tensor1[T, N0]{dense: newDenseFromPointer(Shape1[N0](), p)}
}

// WithLayout switches the index mapping and returns t.
// Both layouts address a rank-1 tensor identically; the layout only
// propagates to tensors derived from t.
func (t *Tensor1[T, N0]) WithLayout(l Layout) *Tensor1[T, N0] {
	t.setLayout(l)
	return t
}

func (t *Tensor1[T, N0]) offset(i int) int {
	return i
}

// Ref returns a pointer to the element at (i).
// Under LayoutCompat the offset is i.
// Indices are not checked unless built with the tensedebug tag.
func (t *Tensor1[T, N0]) Ref(i int) *T {
	return t.ref(t.offset(i), i)
}

// At returns the element at (i) without bounds checking.
func (t *Tensor1[T, N0]) At(i int) T {
	return *t.Ref(i)
}

// Set stores v at (i) without bounds checking.
func (t *Tensor1[T, N0]) Set(v T, i int) {
	*t.Ref(i) = v
}

// Get returns the element at (i), or an *IndexError when any
// component or the resulting offset is out of range.
func (t *Tensor1[T, N0]) Get(i int) (T, error) {
	return t.get(t.offset(i), i)
}

// Put stores v at (i), or returns an *IndexError when out of range.
func (t *Tensor1[T, N0]) Put(v T, i int) error {
	return t.put(v, t.offset(i), i)
}

// Add returns t + other element-wise.
// Panics with ErrLayoutMismatch if the layouts differ.
func (t *Tensor1[T, N0]) Add(other *Tensor1[T, N0]) *Tensor1[T, N0] {
	return &Tensor1[T, N0]{dense: t.binary(&other.dense, addInto[T])}
}

// Sub returns t - other element-wise.
func (t *Tensor1[T, N0]) Sub(other *Tensor1[T, N0]) *Tensor1[T, N0] {
	return &Tensor1[T, N0]{dense: t.binary(&other.dense, subInto[T])}
}

// Mul returns t * other element-wise.
func (t *Tensor1[T, N0]) Mul(other *Tensor1[T, N0]) *Tensor1[T, N0] {
	return &Tensor1[T, N0]{dense: t.binary(&other.dense, mulInto[T])}
}

// Div returns t / other element-wise.
func (t *Tensor1[T, N0]) Div(other *Tensor1[T, N0]) *Tensor1[T, N0] {
	return &Tensor1[T, N0]{dense: t.binary(&other.dense, divInto[T])}
}

// AddAssign adds other to t in place and returns t.
func (t *Tensor1[T, N0]) AddAssign(other *Tensor1[T, N0]) *Tensor1[T, N0] {
	t.inPlace(&other.dense, addInto[T])
	return t
}

// SubAssign subtracts other from t in place and returns t.
func (t *Tensor1[T, N0]) SubAssign(other *Tensor1[T, N0]) *Tensor1[T, N0] {
	t.inPlace(&other.dense, subInto[T])
	return t
}

// MulAssign multiplies t by other in place and returns t.
func (t *Tensor1[T, N0]) MulAssign(other *Tensor1[T, N0]) *Tensor1[T, N0] {
	t.inPlace(&other.dense, mulInto[T])
	return t
}

// DivAssign divides t by other in place and returns t.
func (t *Tensor1[T, N0]) DivAssign(other *Tensor1[T, N0]) *Tensor1[T, N0] {
	t.inPlace(&other.dense, divInto[T])
	return t
}

// AddScalar returns t + s element-wise.
func (t *Tensor1[T, N0]) AddScalar(s T) *Tensor1[T, N0] {
	return &Tensor1[T, N0]{dense: t.scalar(s, addScalarInto[T])}
}

// SubScalar returns t - s element-wise.
func (t *Tensor1[T, N0]) SubScalar(s T) *Tensor1[T, N0] {
	return &Tensor1[T, N0]{dense: t.scalar(s, subScalarInto[T])}
}

// MulScalar returns t * s element-wise.
func (t *Tensor1[T, N0]) MulScalar(s T) *Tensor1[T, N0] {
	return &Tensor1[T, N0]{dense: t.scalar(s, mulScalarInto[T])}
}

// DivScalar returns t / s element-wise.
func (t *Tensor1[T, N0]) DivScalar(s T) *Tensor1[T, N0] {
	return &Tensor1[T, N0]{dense: t.scalar(s, divScalarInto[T])}
}

// Neg returns -t. The receiver is left untouched; see NegInPlace.
func (t *Tensor1[T, N0]) Neg() *Tensor1[T, N0] {
	return &Tensor1[T, N0]{dense: t.neg()}
}

// Assign makes t a copy of src: every element, in flat order, and the layout.
// Afterwards t and src read the same value at every multi-index and share no
// storage.
func (t *Tensor1[T, N0]) Assign(src *Tensor1[T, N0]) {
	t.assign(&src.dense)
}

// Clone returns an independent copy of t with the same layout.
func (t *Tensor1[T, N0]) Clone() *Tensor1[T, N0] {
	return &Tensor1[T, N0]{dense: t.clone()}
}

// Equal reports whether t and other use the same layout and hold the same
// elements in flat order.
func (t *Tensor1[T, N0]) Equal(other *Tensor1[T, N0]) bool {
	return t.equal(&other.dense)
}
