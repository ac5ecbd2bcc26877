package tensor

// Dim is a dimension type: a type whose zero value reports a fixed axis length.
//
// Dimension types carry the shape of a tensor in its type, so two tensors
// with different dimension types can never be combined. Len must return the
// same positive constant for every call.
//
// Example:
//
//	type Rows struct{}
//
//	func (Rows) Len() int { return 480 }
//
//	img := tensor.Zeros2[uint8, Rows, tensor.D64]()
type Dim interface {
	Len() int
}

// Predefined dimension types.
type (
	D1   struct{}
	D2   struct{}
	D3   struct{}
	D4   struct{}
	D5   struct{}
	D6   struct{}
	D7   struct{}
	D8   struct{}
	D10  struct{}
	D12  struct{}
	D16  struct{}
	D32  struct{}
	D64  struct{}
	D128 struct{}
	D256 struct{}
)

func (D1) Len() int { return 1 }
func (D2) Len() int { return 2 }
func (D3) Len() int { return 3 }
func (D4) Len() int { return 4 }
func (D5) Len() int { return 5 }
func (D6) Len() int { return 6 }
func (D7) Len() int { return 7 }
func (D8) Len() int { return 8 }
func (D10) Len() int { return 10 }
func (D12) Len() int { return 12 }
func (D16) Len() int { return 16 }
func (D32) Len() int { return 32 }
func (D64) Len() int { return 64 }
func (D128) Len() int { return 128 }
func (D256) Len() int { return 256 }

// dimLen returns the length carried by dimension type N.
func dimLen[N Dim]() int {
	var d N
	return d.Len()
}

// Shape1 returns the shape encoded by a rank-1 dimension list.
func Shape1[N0 Dim]() Shape {
	return mustShape(Shape{dimLen[N0]()})
}

// Shape2 returns the shape encoded by a rank-2 dimension list.
func Shape2[N0, N1 Dim]() Shape {
	return mustShape(Shape{dimLen[N0](), dimLen[N1]()})
}

// Shape3 returns the shape encoded by a rank-3 dimension list.
func Shape3[N0, N1, N2 Dim]() Shape {
	return mustShape(Shape{dimLen[N0](), dimLen[N1](), dimLen[N2]()})
}

// Shape4 returns the shape encoded by a rank-4 dimension list.
func Shape4[N0, N1, N2, N3 Dim]() Shape {
	return mustShape(Shape{dimLen[N0](), dimLen[N1](), dimLen[N2](), dimLen[N3]()})
}

// Capacity1 returns the element count of a rank-1 tensor with the given dimensions.
func Capacity1[N0 Dim]() int { return Shape1[N0]().NumElements() }

// Capacity2 returns the element count of a rank-2 tensor with the given dimensions.
func Capacity2[N0, N1 Dim]() int { return Shape2[N0, N1]().NumElements() }

// Capacity3 returns the element count of a rank-3 tensor with the given dimensions.
func Capacity3[N0, N1, N2 Dim]() int { return Shape3[N0, N1, N2]().NumElements() }

// Capacity4 returns the element count of a rank-4 tensor with the given dimensions.
func Capacity4[N0, N1, N2, N3 Dim]() int { return Shape4[N0, N1, N2, N3]().NumElements() }

// mustShape panics if a dimension type reports a non-positive length.
func mustShape(s Shape) Shape {
	if err := s.Validate(); err != nil {
		panic(err)
	}
	return s
}
