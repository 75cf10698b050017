package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewVecCellCentered(t *testing.T) {
	V := NewVecCellCentered(10, 0, 1)
	assert.Equal(t, 12, V.Len())
	assert.InDelta(t, -0.05, V.AtVec(0), 1.e-12)
	assert.InDelta(t, 0.05, V.AtVec(1), 1.e-12)
	assert.InDelta(t, 0.95, V.AtVec(10), 1.e-12)
	assert.InDelta(t, 1.05, V.AtVec(11), 1.e-12)
	// Uniform spacing
	for i := 1; i < V.Len(); i++ {
		assert.InDelta(t, 0.1, V.AtVec(i)-V.AtVec(i-1), 1.e-12)
	}
}

func TestNewVecConst(t *testing.T) {
	V := NewVecConst(4, 2.5)
	assert.Equal(t, 4, V.Len())
	for i := 0; i < V.Len(); i++ {
		assert.Equal(t, 2.5, V.AtVec(i))
	}
}
