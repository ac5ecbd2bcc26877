package tensor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func operands() (*Tensor2[float64, D3, D4], *Tensor2[float64, D3, D4]) {
	a := MustFromSlice2[float64, D3, D4]([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12})
	b := MustFromSlice2[float64, D3, D4]([]float64{2, 4, 8, 16, 1, 3, 5, 7, -1, -2, -4, -8})
	return a, b
}

func TestBinaryOps_ElementWise(t *testing.T) {
	tests := []struct {
		name string
		op   func(a, b *Tensor2[float64, D3, D4]) *Tensor2[float64, D3, D4]
		want func(x, y float64) float64
	}{
		{"Add", (*Tensor2[float64, D3, D4]).Add, func(x, y float64) float64 { return x + y }},
		{"Sub", (*Tensor2[float64, D3, D4]).Sub, func(x, y float64) float64 { return x - y }},
		{"Mul", (*Tensor2[float64, D3, D4]).Mul, func(x, y float64) float64 { return x * y }},
		{"Div", (*Tensor2[float64, D3, D4]).Div, func(x, y float64) float64 { return x / y }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := operands()
			aBefore := a.Clone()
			bBefore := b.Clone()

			c := tt.op(a, b)

			for j := range 3 {
				for i := range 4 {
					assert.Equal(t, tt.want(a.At(j, i), b.At(j, i)), c.At(j, i), "(%d, %d)", j, i)
				}
			}
			for n := range c.Capacity() {
				assert.Equal(t, tt.want(a.Data()[n], b.Data()[n]), c.Data()[n])
			}

			assert.True(t, a.Equal(aBefore), "left operand must be untouched")
			assert.True(t, b.Equal(bBefore), "right operand must be untouched")
		})
	}
}

func TestCompoundOps_MatchBinary(t *testing.T) {
	tests := []struct {
		name     string
		binary   func(a, b *Tensor2[float64, D3, D4]) *Tensor2[float64, D3, D4]
		compound func(a, b *Tensor2[float64, D3, D4]) *Tensor2[float64, D3, D4]
	}{
		{"Add", (*Tensor2[float64, D3, D4]).Add, (*Tensor2[float64, D3, D4]).AddAssign},
		{"Sub", (*Tensor2[float64, D3, D4]).Sub, (*Tensor2[float64, D3, D4]).SubAssign},
		{"Mul", (*Tensor2[float64, D3, D4]).Mul, (*Tensor2[float64, D3, D4]).MulAssign},
		{"Div", (*Tensor2[float64, D3, D4]).Div, (*Tensor2[float64, D3, D4]).DivAssign},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := operands()
			expected := tt.binary(a, b)

			got := tt.compound(a, b)
			assert.Same(t, a, got, "compound op returns its receiver")
			assert.True(t, a.Equal(expected), "got %v, want %v", a.Data(), expected.Data())
		})
	}
}

func TestOps_AllRanks(t *testing.T) {
	a1 := MustFromSlice1[int, D3]([]int{1, 2, 3})
	assert.Equal(t, []int{2, 4, 6}, a1.Add(a1).Data())

	a3 := Full3[int32, D2, D2, D2](6)
	b3 := Full3[int32, D2, D2, D2](4)
	assert.Equal(t, []int32{2, 2, 2, 2, 2, 2, 2, 2}, a3.Sub(b3).Data())
	assert.Equal(t, []int32{1, 1, 1, 1, 1, 1, 1, 1}, a3.Div(b3).Data())

	a4 := Full4[float32, D1, D2, D1, D2](1.5)
	b4 := Full4[float32, D1, D2, D1, D2](2)
	a4.MulAssign(b4)
	assert.Equal(t, []float32{3, 3, 3, 3}, a4.Data())
}

func TestOps_ChainedCompound(t *testing.T) {
	a := Full2[int, D2, D2](1)
	b := Full2[int, D2, D2](2)

	a.AddAssign(b).MulAssign(b).SubAssign(b)
	assert.Equal(t, []int{4, 4, 4, 4}, a.Data())
}

func TestScalarOps(t *testing.T) {
	a := MustFromSlice1[float64, D4]([]float64{1, 2, 3, 4})

	assert.Equal(t, []float64{3, 4, 5, 6}, a.AddScalar(2).Data())
	assert.Equal(t, []float64{0, 1, 2, 3}, a.SubScalar(1).Data())
	assert.Equal(t, []float64{2, 4, 6, 8}, a.MulScalar(2).Data())
	assert.Equal(t, []float64{0.5, 1, 1.5, 2}, a.DivScalar(2).Data())
	assert.Equal(t, []float64{1, 2, 3, 4}, a.Data(), "receiver untouched")
}

func TestOps_PreserveLayout(t *testing.T) {
	a := Full2[float64, D3, D4](1).WithLayout(LayoutRowMajor)
	b := Full2[float64, D3, D4](2).WithLayout(LayoutRowMajor)

	assert.Equal(t, LayoutRowMajor, a.Add(b).Layout())
	assert.Equal(t, LayoutRowMajor, a.Neg().Layout())
	assert.Equal(t, LayoutRowMajor, a.Clone().Layout())
	assert.Equal(t, LayoutRowMajor, a.MulScalar(3).Layout())
	assert.Equal(t, LayoutCompat, Full2[float64, D3, D4](1).Sub(Full2[float64, D3, D4](2)).Layout())
}

func TestDiv_IntegerByZeroPanics(t *testing.T) {
	a := Full2[int, D2, D2](1)
	b := Zeros2[int, D2, D2]()

	assert.Panics(t, func() { a.Div(b) })
	assert.Panics(t, func() { a.DivAssign(b) })
}

func TestDiv_FloatByZero(t *testing.T) {
	a := MustFromSlice1[float64, D3]([]float64{1, -1, 0})
	b := Zeros1[float64, D3]()

	c := a.Div(b)
	assert.True(t, math.IsInf(c.At(0), 1))
	assert.True(t, math.IsInf(c.At(1), -1))
	assert.True(t, math.IsNaN(c.At(2)))
}

func TestNeg(t *testing.T) {
	a := MustFromSlice2[float64, D2, D3]([]float64{0, 1, -2, 3.5, -4.25, 5})

	n := a.Neg()
	assert.Equal(t, []float64{0, -1, 2, -3.5, 4.25, -5}, n.Data())
	assert.Equal(t, []float64{0, 1, -2, 3.5, -4.25, 5}, a.Data(), "Neg must not mutate")
	assert.True(t, math.Signbit(n.Data()[0]), "negated zero is -0")
}

func TestNegInPlace(t *testing.T) {
	a := MustFromSlice3[int16, D1, D2, D2]([]int16{1, -2, 3, 0})

	a.NegInPlace()
	assert.Equal(t, []int16{-1, 2, -3, 0}, a.Data())
}

func TestNeg_UnsignedWraps(t *testing.T) {
	a := MustFromSlice1[uint8, D2]([]uint8{1, 0})

	assert.Equal(t, []uint8{255, 0}, a.Neg().Data())
}

func TestAssign_NoAliasing(t *testing.T) {
	a := Zeros2[float64, D3, D4]()
	b := MustFromSlice2[float64, D3, D4](iota64(12))

	a.Assign(b)
	require.True(t, a.Equal(b))

	b.Set(100, 1, 2)
	b.Data()[0] = -1
	assert.Equal(t, float64(5), a.At(1, 2))
	assert.Equal(t, float64(0), a.Data()[0])

	a.Set(-5, 2, 2)
	assert.Equal(t, float64(8), b.At(2, 2))
}

func TestAssign_Self(t *testing.T) {
	a := MustFromSlice1[int, D3]([]int{1, 2, 3})
	a.Assign(a)
	assert.Equal(t, []int{1, 2, 3}, a.Data())
}

func TestClone_Independent(t *testing.T) {
	a := MustFromSlice4[int64, D1, D1, D2, D2]([]int64{1, 2, 3, 4})
	c := a.Clone()

	require.True(t, c.Equal(a))
	c.Data()[3] = 40
	assert.Equal(t, int64(4), a.Data()[3])
	assert.False(t, c.Equal(a))
}

func TestEqual(t *testing.T) {
	a := Full1[float64, D2](1)
	b := Full1[float64, D2](1)
	assert.True(t, a.Equal(b))

	b.Set(2, 1)
	assert.False(t, a.Equal(b))

	nan := Full1[float64, D2](math.NaN())
	assert.False(t, nan.Equal(nan), "NaN never equals itself")
}

func TestOps_MixedLayoutsPanic(t *testing.T) {
	a := MustFromSlice2[float64, D3, D4](iota64(12))
	b := MustFromSlice2[float64, D3, D4](iota64(12)).WithLayout(LayoutRowMajor)

	// Same flat buffers, different multi-index mapping.
	require.NotEqual(t, a.At(1, 2), b.At(1, 2))

	ops := map[string]func(){
		"Add":       func() { a.Add(b) },
		"Sub":       func() { b.Sub(a) },
		"Mul":       func() { a.Mul(b) },
		"Div":       func() { a.Div(b) },
		"AddAssign": func() { a.AddAssign(b) },
		"SubAssign": func() { a.SubAssign(b) },
		"MulAssign": func() { b.MulAssign(a) },
		"DivAssign": func() { a.DivAssign(b) },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			defer func() {
				r := recover()
				require.NotNil(t, r, "%s across layouts should panic", name)
				err, ok := r.(error)
				require.True(t, ok)
				assert.ErrorIs(t, err, ErrLayoutMismatch)
			}()
			op()
		})
	}
	assert.Equal(t, iota64(12), a.Data(), "a untouched by rejected ops")
	assert.Equal(t, iota64(12), b.Data(), "b untouched by rejected ops")
}

func TestOps_SameLayoutPerIndex(t *testing.T) {
	a := MustFromSlice3[float64, D2, D3, D4](iota64(24)).WithLayout(LayoutRowMajor)
	b := Full3[float64, D2, D3, D4](10).WithLayout(LayoutRowMajor)

	c := a.Add(b)
	for k := range 2 {
		for j := range 3 {
			for i := range 4 {
				assert.Equal(t, a.At(k, j, i)+b.At(k, j, i), c.At(k, j, i))
			}
		}
	}
}

func TestAssign_CopiesLayout(t *testing.T) {
	a := MustFromSlice2[float64, D3, D4](iota64(12))
	b := MustFromSlice2[float64, D3, D4](iota64(12)).WithLayout(LayoutRowMajor)

	a.Assign(b)
	assert.Equal(t, LayoutRowMajor, a.Layout())
	assert.True(t, a.Equal(b))
	for j := range 3 {
		for i := range 4 {
			assert.Equal(t, b.At(j, i), a.At(j, i))
		}
	}

	// Switching one copy's layout does not affect the other.
	a.WithLayout(LayoutCompat)
	assert.Equal(t, LayoutRowMajor, b.Layout())
	assert.Equal(t, float64(6), b.At(1, 2))
}

func TestEqual_DifferentLayouts(t *testing.T) {
	a := MustFromSlice2[float64, D3, D4](iota64(12))
	b := a.Clone().WithLayout(LayoutRowMajor)

	assert.False(t, a.Equal(b))
	assert.False(t, b.Equal(a))
}
