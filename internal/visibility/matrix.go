package visibility

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ErrTooFewPixels indicates a matrix over fewer than two pixels, for which
// the index is undefined.
var ErrTooFewPixels = errors.New("visibility: need at least two pixels")

// Matrix is the symmetric 0/1 visibility matrix over a pixel set.
// Entry (i, j) is 1 when pixel i and pixel j see each other.
type Matrix struct {
	sym *mat.SymDense
}

func newMatrix(n int) *Matrix {
	return &Matrix{sym: mat.NewSymDense(n, nil)}
}

// Size returns N, the number of pixels.
func (m *Matrix) Size() int { return m.sym.SymmetricDim() }

// At returns entry (i, j).
func (m *Matrix) At(i, j int) float64 { return m.sym.At(i, j) }

// Visible reports whether pixels i and j see each other.
func (m *Matrix) Visible(i, j int) bool { return m.sym.At(i, j) != 0 }

// set stores v at (i, j) and (j, i). Distinct unordered pairs touch distinct
// storage cells, so concurrent calls for different pairs do not race.
func (m *Matrix) set(i, j int, v bool) {
	if v {
		m.sym.SetSym(i, j, 1)
	}
}

// Sym exposes the underlying gonum matrix. Callers must not modify it.
func (m *Matrix) Sym() mat.Symmetric { return m.sym }

// RowSums returns, per pixel, how many other pixels it sees.
func (m *Matrix) RowSums() []float64 {
	n := m.Size()
	sums := make([]float64, n)
	row := make([]float64, n)
	for i := 0; i < n; i++ {
		mat.Row(row, i, m.sym)
		sums[i] = floats.Sum(row)
	}
	return sums
}

// Ratios returns each pixel's visibility count divided by N-1.
func (m *Matrix) Ratios() ([]float64, error) {
	n := m.Size()
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPixels, n)
	}
	r := m.RowSums()
	// Divide rather than scale by 1/(n-1) so a full row gives exactly 1.
	for i := range r {
		r[i] /= float64(n - 1)
	}
	return r, nil
}

// Aggregate reduces the matrix to the convexity index: the mean over all
// pixels of the fraction of other pixels each one sees.
func Aggregate(m *Matrix) (float64, error) {
	r, err := m.Ratios()
	if err != nil {
		return 0, err
	}
	return stat.Mean(r, nil), nil
}
