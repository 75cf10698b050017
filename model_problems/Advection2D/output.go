package Advection2D

import (
	"bufio"
	"fmt"
	"os"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// WriteSnapshot writes one "x y u" row per grid point, ghost cells included,
// outer loop over the x index and inner over the y index. The order matters
// to downstream plotting, so the write is sequential.
func WriteSnapshot(fileName string, X, Y *mat.VecDense, U *mat.Dense) (err error) {
	var (
		f      *os.File
		nr, nc = U.Dims()
	)
	if f, err = os.Create(fileName); err != nil {
		return fmt.Errorf("unable to create snapshot file %s: %w", fileName, err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			fmt.Fprintf(w, "%g %g %g\n", X.AtVec(i), Y.AtVec(j), U.At(i, j))
		}
	}
	return w.Flush()
}

// WriteVerticalAverage writes one "x yAvg" row per x index, where yAvg is
// the sum of u over the full NY+2 column range divided by NY. The divisor is
// NY, not NY+2, so this is not a true mean when ghost cells are nonzero -
// kept for fidelity with the historical output.
func WriteVerticalAverage(fileName string, X *mat.VecDense, U *mat.Dense, NY int) (err error) {
	var (
		f     *os.File
		nr, _ = U.Dims()
	)
	if f, err = os.Create(fileName); err != nil {
		return fmt.Errorf("unable to create average file %s: %w", fileName, err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	for i := 0; i < nr; i++ {
		yAvg := floats.Sum(U.RawRowView(i)) / float64(NY)
		fmt.Fprintf(w, "%g %g\n", X.AtVec(i), yAvg)
	}
	return w.Flush()
}
