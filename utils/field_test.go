package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestField(t *testing.T) {
	f := NewField(4, 3)
	nr, nc := f.Dims()
	assert.Equal(t, 6, nr)
	assert.Equal(t, 5, nc)
	ur, uc := f.U.Dims()
	assert.Equal(t, nr, ur)
	assert.Equal(t, nc, uc)
	dr, dc := f.Dudt.Dims()
	assert.Equal(t, nr, dr)
	assert.Equal(t, nc, dc)

	f.U.Set(0, 0, -2)
	f.U.Set(5, 4, 3)
	uMin, uMax := f.MinMax()
	assert.Equal(t, -2., uMin)
	assert.Equal(t, 3., uMax)

	assert.False(t, f.HasNaN())
	f.U.Set(2, 2, math.NaN())
	assert.True(t, f.HasNaN())
}

func TestFieldBadDims(t *testing.T) {
	assert.Panics(t, func() { NewField(0, 3) })
	assert.Panics(t, func() { NewField(3, -1) })
}
