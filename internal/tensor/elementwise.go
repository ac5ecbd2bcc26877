package tensor

// Element-wise kernels over flat buffers of equal length.
// Both operands always come from tensors of the same type, so lengths match.

func addInto[T Scalar](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func subInto[T Scalar](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func mulInto[T Scalar](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// divInto follows Go division semantics: an integer zero divisor panics,
// a float zero divisor yields ±Inf or NaN.
func divInto[T Scalar](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] / b[i]
	}
}

func addScalarInto[T Scalar](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] + s
	}
}

func subScalarInto[T Scalar](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] - s
	}
}

func mulScalarInto[T Scalar](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] * s
	}
}

func divScalarInto[T Scalar](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] / s
	}
}

// binary applies kernel to d and other into a fresh buffer.
func (d *dense[T]) binary(other *dense[T], kernel func(dst, a, b []T)) dense[T] {
	d.mustMatch(other)
	out := d.like()
	kernel(out.data, d.data, other.data)
	return out
}

// scalar applies kernel to d and s into a fresh buffer.
func (d *dense[T]) scalar(s T, kernel func(dst, a []T, s T)) dense[T] {
	out := d.like()
	kernel(out.data, d.data, s)
	return out
}

// inPlace applies kernel to d and other, writing into d.
func (d *dense[T]) inPlace(other *dense[T], kernel func(dst, a, b []T)) {
	d.mustMatch(other)
	kernel(d.data, d.data, other.data)
}
