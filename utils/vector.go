package utils

import "gonum.org/v1/gonum/mat"

// NewVecCellCentered returns the N+2 cell-centered coordinates of an axis
// with N interior cells of spacing d = (max-min)/N, cell i centered at
// (i-0.5)*d. The first and last entries are the ghost cell centers.
func NewVecCellCentered(N int, min, max float64) (V *mat.VecDense) {
	var (
		d = (max - min) / float64(N)
		x = make([]float64, N+2)
	)
	for i := 0; i < N+2; i++ {
		x[i] = (float64(i) - 0.5) * d
	}
	V = mat.NewVecDense(N+2, x)
	return
}

func NewVecConst(N int, val float64) (V *mat.VecDense) {
	var (
		x = make([]float64, N)
	)
	for i := 0; i < N; i++ {
		x[i] = val
	}
	V = mat.NewVecDense(N, x)
	return
}
