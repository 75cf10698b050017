package utils

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Field holds the scalar state for a structured grid of NX x NY interior
// cells plus one ghost cell per boundary per axis. U is the solution and
// Dudt is per-step scratch for the rate of change; both are (NX+2)x(NY+2)
// row-major dense matrices, row index i along x, column index j along y.
// Dudt is never read across steps.
type Field struct {
	NX, NY  int
	U, Dudt *mat.Dense
}

func NewField(NX, NY int) (f *Field) {
	if NX <= 0 || NY <= 0 {
		panic(fmt.Errorf("field dimensions must be positive, have [%d,%d]", NX, NY))
	}
	f = &Field{
		NX:   NX,
		NY:   NY,
		U:    mat.NewDense(NX+2, NY+2, nil),
		Dudt: mat.NewDense(NX+2, NY+2, nil),
	}
	return
}

// Dims returns the allocated shape including ghost cells
func (f *Field) Dims() (nr, nc int) {
	return f.NX + 2, f.NY + 2
}

func (f *Field) MinMax() (uMin, uMax float64) {
	var (
		d = f.U.RawMatrix().Data
	)
	uMin, uMax = floats.Min(d), floats.Max(d)
	return
}

// HasNaN reports whether the solution has diverged into NaN values. This is
// a diagnostic - nothing in the solver acts on it.
func (f *Field) HasNaN() bool {
	return floats.HasNaN(f.U.RawMatrix().Data)
}
