package tensor

import (
	"errors"
	"math"
	"testing"
)

// Test helpers

func assertEqualShape(t *testing.T, expected, actual Shape, msg string) {
	t.Helper()
	if !expected.Equal(actual) {
		t.Errorf("%s: expected shape %v, got %v", msg, expected, actual)
	}
}

type celsius float64

type level uint16

// DType Tests

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
	}{
		{Int8, 1},
		{Uint8, 1},
		{Int16, 2},
		{Uint16, 2},
		{Float32, 4},
		{Int32, 4},
		{Uint32, 4},
		{Float64, 8},
		{Int64, 8},
		{Uint64, 8},
	}

	for _, tt := range tests {
		if got := tt.dtype.Size(); got != tt.size {
			t.Errorf("%s.Size() = %d, want %d", tt.dtype, got, tt.size)
		}
	}
}

func TestDataTypeString(t *testing.T) {
	tests := []struct {
		dtype DataType
		str   string
	}{
		{Int, "int"},
		{Int8, "int8"},
		{Int16, "int16"},
		{Int32, "int32"},
		{Int64, "int64"},
		{Uint, "uint"},
		{Uint8, "uint8"},
		{Uint16, "uint16"},
		{Uint32, "uint32"},
		{Uint64, "uint64"},
		{Float32, "float32"},
		{Float64, "float64"},
		{DataType(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.dtype.String(); got != tt.str {
			t.Errorf("%d.String() = %q, want %q", int(tt.dtype), got, tt.str)
		}
	}
}

func TestInferDataType(t *testing.T) {
	if dt := inferDataType(float32(0)); dt != Float32 {
		t.Errorf("inferDataType(float32) = %v, want Float32", dt)
	}
	if dt := inferDataType(float64(0)); dt != Float64 {
		t.Errorf("inferDataType(float64) = %v, want Float64", dt)
	}
	if dt := inferDataType(int32(0)); dt != Int32 {
		t.Errorf("inferDataType(int32) = %v, want Int32", dt)
	}
	if dt := inferDataType(uint8(0)); dt != Uint8 {
		t.Errorf("inferDataType(uint8) = %v, want Uint8", dt)
	}
	if dt := DataTypeOf[celsius](); dt != Float64 {
		t.Errorf("DataTypeOf[celsius]() = %v, want Float64", dt)
	}
	if dt := DataTypeOf[level](); dt != Uint16 {
		t.Errorf("DataTypeOf[level]() = %v, want Uint16", dt)
	}
}

// Shape Tests

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape    Shape
		expected int
	}{
		{Shape{5}, 5},            // 1D
		{Shape{3, 4}, 12},        // 2D
		{Shape{2, 3, 4}, 24},     // 3D
		{Shape{2, 3, 4, 5}, 120}, // 4D
		{Shape{1, 1, 1}, 1},      // Ones
		{Shape2[D7, D10](), 70},
		{Shape4[D2, D2, D2, D2](), 16},
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.expected {
			t.Errorf("Shape%v.NumElements() = %d, want %d", tt.shape, got, tt.expected)
		}
	}
}

func TestShapeValidation(t *testing.T) {
	validShapes := []Shape{
		{1},
		{3, 4},
		{2, 3, 4},
		{2, 3, 4, 5},
	}

	for _, s := range validShapes {
		if err := s.Validate(); err != nil {
			t.Errorf("Shape%v.Validate() failed: %v", s, err)
		}
	}

	invalidShapes := []Shape{
		{},
		{0},
		{3, 0},
		{-1},
		{3, -4},
		{1, 1, 1, 1, 1},
		{1 << 16, 1 << 16, 1 << 16, 1 << 16}, // product overflows int
		{math.MaxInt, 2},
	}

	for _, s := range invalidShapes {
		err := s.Validate()
		if err == nil {
			t.Errorf("Shape%v.Validate() should fail but didn't", s)
			continue
		}
		if !errors.Is(err, ErrInvalidDim) {
			t.Errorf("Shape%v.Validate() = %v, want ErrInvalidDim", s, err)
		}
	}
}

func TestShapeEqual(t *testing.T) {
	tests := []struct {
		a, b  Shape
		equal bool
	}{
		{Shape{3, 4}, Shape{3, 4}, true},
		{Shape{3, 4}, Shape{4, 3}, false},
		{Shape{3}, Shape{3, 1}, false},
		{Shape{}, Shape{}, true},
	}

	for _, tt := range tests {
		if got := tt.a.Equal(tt.b); got != tt.equal {
			t.Errorf("Shape%v.Equal(%v) = %v, want %v", tt.a, tt.b, got, tt.equal)
		}
	}
}

func TestShapeClone(t *testing.T) {
	s := Shape{3, 4}
	c := s.Clone()
	c[0] = 9
	assertEqualShape(t, Shape{3, 4}, s, "original after clone mutation")
}

func TestShapeString(t *testing.T) {
	if got := (Shape{3, 4, 5}).String(); got != "(3, 4, 5)" {
		t.Errorf("String() = %q, want %q", got, "(3, 4, 5)")
	}
}

func TestComputeStrides(t *testing.T) {
	tests := []struct {
		shape    Shape
		expected []int
	}{
		{Shape{4}, []int{1}},
		{Shape{3, 4}, []int{4, 1}},
		{Shape{2, 3, 4}, []int{12, 4, 1}},
		{Shape{2, 3, 4, 5}, []int{60, 20, 5, 1}},
	}

	for _, tt := range tests {
		got := tt.shape.ComputeStrides()
		if len(got) != len(tt.expected) {
			t.Fatalf("Shape%v.ComputeStrides() length = %d, want %d", tt.shape, len(got), len(tt.expected))
		}
		for i := range got {
			if got[i] != tt.expected[i] {
				t.Errorf("Shape%v.ComputeStrides()[%d] = %d, want %d", tt.shape, i, got[i], tt.expected[i])
			}
		}
	}
}

// Layout Tests

func TestLayoutStrides(t *testing.T) {
	tests := []struct {
		layout   Layout
		shape    Shape
		expected []int
	}{
		{LayoutCompat, Shape{4}, []int{1}},
		{LayoutCompat, Shape{3, 4}, []int{3, 1}},
		{LayoutCompat, Shape{2, 3, 4}, []int{2, 3, 1}},
		{LayoutCompat, Shape{2, 3, 4, 5}, []int{2, 3, 4, 1}},
		{LayoutRowMajor, Shape{3, 4}, []int{4, 1}},
		{LayoutRowMajor, Shape{2, 3, 4, 5}, []int{60, 20, 5, 1}},
	}

	for _, tt := range tests {
		got := tt.layout.Strides(tt.shape)
		if len(got) != len(tt.expected) {
			t.Fatalf("%s.Strides(%v) length = %d, want %d", tt.layout, tt.shape, len(got), len(tt.expected))
		}
		for i := range got {
			if got[i] != tt.expected[i] {
				t.Errorf("%s.Strides(%v)[%d] = %d, want %d", tt.layout, tt.shape, i, got[i], tt.expected[i])
			}
		}
	}
}

func TestLayoutOffset(t *testing.T) {
	tests := []struct {
		layout Layout
		shape  Shape
		idx    []int
		want   int
	}{
		{LayoutCompat, Shape{3, 4}, []int{1, 2}, 1*3 + 2},
		{LayoutCompat, Shape{2, 3, 4}, []int{1, 2, 3}, 1*2 + 2*3 + 3},
		{LayoutCompat, Shape{2, 3, 4, 5}, []int{1, 2, 3, 4}, 1*2 + 2*3 + 3*4 + 4},
		{LayoutRowMajor, Shape{3, 4}, []int{1, 2}, 1*4 + 2},
		{LayoutRowMajor, Shape{2, 3, 4}, []int{1, 2, 3}, 1*12 + 2*4 + 3},
	}

	for _, tt := range tests {
		if got := tt.layout.Offset(tt.shape, tt.idx...); got != tt.want {
			t.Errorf("%s.Offset(%v, %v) = %d, want %d", tt.layout, tt.shape, tt.idx, got, tt.want)
		}
	}
}

func TestLayoutString(t *testing.T) {
	if LayoutCompat.String() != "compat" || LayoutRowMajor.String() != "row-major" || Layout(7).String() != "unknown" {
		t.Error("unexpected Layout.String() output")
	}
}
