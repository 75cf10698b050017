package Advection2D

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/advect2d/utils"
)

func TestWriteSnapshot(t *testing.T) {
	var (
		NX, NY = 2, 2
		X      = utils.NewVecCellCentered(NX, 0, 2)
		Y      = utils.NewVecCellCentered(NY, 0, 2)
		data   = make([]float64, (NX+2)*(NY+2))
	)
	for i := range data {
		data[i] = float64(i)
	}
	U := mat.NewDense(NX+2, NY+2, data)

	fileName := filepath.Join(t.TempDir(), "snapshot.dat")
	assert.NoError(t, WriteSnapshot(fileName, X, Y, U))

	lines := readLines(t, fileName)
	assert.Equal(t, (NX+2)*(NY+2), len(lines))
	// Outer x index, inner y index: row 1 is (x[0], y[1], u[0][1])
	cols := strings.Fields(lines[1])
	assert.Equal(t, 3, len(cols))
	assert.Equal(t, -0.5, parseF(t, cols[0]))
	assert.Equal(t, 0.5, parseF(t, cols[1]))
	assert.Equal(t, 1., parseF(t, cols[2]))
	// Last row is (x[NX+1], y[NY+1], u[NX+1][NY+1])
	cols = strings.Fields(lines[len(lines)-1])
	assert.Equal(t, 2.5, parseF(t, cols[0]))
	assert.Equal(t, 2.5, parseF(t, cols[1]))
	assert.Equal(t, 15., parseF(t, cols[2]))
}

func TestWriteVerticalAverage(t *testing.T) {
	var (
		NX, NY = 2, 2
		X      = utils.NewVecCellCentered(NX, 0, 2)
		data   = make([]float64, (NX+2)*(NY+2))
	)
	for i := range data {
		data[i] = float64(i)
	}
	U := mat.NewDense(NX+2, NY+2, data)

	fileName := filepath.Join(t.TempDir(), "average.dat")
	assert.NoError(t, WriteVerticalAverage(fileName, X, U, NY))

	lines := readLines(t, fileName)
	assert.Equal(t, NX+2, len(lines))
	// Row i=1 holds values 4,5,6,7: the sum runs over the full NY+2 range
	// but the divisor is NY, not NY+2
	cols := strings.Fields(lines[1])
	assert.Equal(t, 2, len(cols))
	assert.Equal(t, 0.5, parseF(t, cols[0]))
	assert.Equal(t, (4.+5.+6.+7.)/2., parseF(t, cols[1]))
}

func TestWriteSnapshotBadPath(t *testing.T) {
	var (
		NX, NY = 2, 2
		X      = utils.NewVecCellCentered(NX, 0, 2)
		U      = mat.NewDense(NX+2, NY+2, nil)
	)
	err := WriteSnapshot(filepath.Join(t.TempDir(), "no", "such", "dir.dat"), X, X, U)
	assert.Error(t, err)
	err = WriteVerticalAverage(filepath.Join(t.TempDir(), "no", "such", "dir.dat"), X, U, NY)
	assert.Error(t, err)
}

func readLines(t *testing.T, fileName string) (lines []string) {
	data, err := os.ReadFile(fileName)
	assert.NoError(t, err)
	lines = strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	return
}

func parseF(t *testing.T, s string) (val float64) {
	val, err := strconv.ParseFloat(s, 64)
	assert.NoError(t, err)
	return
}
