package tensor

// Layout selects how a multi-index maps to a flat offset.
//
// Both layouts reduce to offset = sum(idx[k] * stride[k]) and differ only in
// the strides:
//
//	LayoutCompat:   stride = (dims[0], dims[1], ..., dims[n-2], 1)
//	LayoutRowMajor: stride[k] = dims[k+1] * ... * dims[n-1]
//
// For a (3, 4) tensor, LayoutCompat maps (1, 2) to 1*3 + 2 = 5 while
// LayoutRowMajor maps it to 1*4 + 2 = 6.
type Layout int

// Supported layouts.
const (
	// LayoutCompat reproduces the legacy addressing, where every index except
	// the last is scaled by the length of the dimension at its own position.
	// It is not row-major for rank >= 2: distinct indices can collide and some
	// in-range indices land past the buffer. Kept for bit-compatible results.
	LayoutCompat Layout = iota

	// LayoutRowMajor is canonical C-order addressing.
	LayoutRowMajor
)

// String returns a human-readable layout name.
func (l Layout) String() string {
	switch l {
	case LayoutCompat:
		return "compat"
	case LayoutRowMajor:
		return "row-major"
	default:
		return "unknown"
	}
}

// Strides returns the per-axis multipliers the layout uses for shape s.
func (l Layout) Strides(s Shape) []int {
	switch l {
	case LayoutCompat:
		strides := make([]int, len(s))
		for k := 0; k < len(s)-1; k++ {
			strides[k] = s[k]
		}
		if len(s) > 0 {
			strides[len(s)-1] = 1
		}
		return strides
	case LayoutRowMajor:
		return s.ComputeStrides()
	default:
		panic("unknown layout")
	}
}

// Offset maps idx to a flat offset without any bounds checking.
func (l Layout) Offset(s Shape, idx ...int) int {
	strides := l.Strides(s)
	off := 0
	for k, v := range idx {
		off += v * strides[k]
	}
	return off
}
