//go:build !tensedebug

package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Without the tensedebug tag a component past its dimension is accepted as
// long as the flat offset stays inside the buffer.
func TestAt_UncheckedComponents(t *testing.T) {
	x := MustFromSlice2[float64, D3, D4](iota64(12))

	// (0, 5) -> offset 5.
	assert.Equal(t, float64(5), x.At(0, 5))
}

func TestAt_OffsetPastBufferPanics(t *testing.T) {
	x := Zeros2[float64, D3, D4]()

	assert.Panics(t, func() { x.At(10, 0) })
}
