package mask

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Point is a cell coordinate in (row, col) order.
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Mask is a dense binary grid. The zero value is an empty 0×0 mask.
type Mask struct {
	rows int
	cols int
	data []bool
}

// New returns an all-background mask of the given size.
func New(rows, cols int) (*Mask, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrEmptyMask, rows, cols)
	}
	return &Mask{rows: rows, cols: cols, data: make([]bool, rows*cols)}, nil
}

// FromGrid builds a mask from an integer grid; any nonzero cell is foreground.
func FromGrid[T constraints.Integer](grid [][]T) (*Mask, error) {
	cols, err := gridShape(len(grid), func(i int) int { return len(grid[i]) })
	if err != nil {
		return nil, err
	}
	m := &Mask{rows: len(grid), cols: cols, data: make([]bool, len(grid)*cols)}
	for r, row := range grid {
		for c, v := range row {
			m.data[r*cols+c] = v != 0
		}
	}
	return m, nil
}

// FromBools builds a mask from a boolean grid.
func FromBools(grid [][]bool) (*Mask, error) {
	cols, err := gridShape(len(grid), func(i int) int { return len(grid[i]) })
	if err != nil {
		return nil, err
	}
	m := &Mask{rows: len(grid), cols: cols, data: make([]bool, len(grid)*cols)}
	for r, row := range grid {
		copy(m.data[r*cols:(r+1)*cols], row)
	}
	return m, nil
}

// gridShape validates a row-of-rows grid and returns its column count.
func gridShape(rows int, rowLen func(int) int) (int, error) {
	if rows == 0 {
		return 0, ErrEmptyMask
	}
	cols := rowLen(0)
	if cols == 0 {
		return 0, ErrEmptyMask
	}
	for i := 1; i < rows; i++ {
		if n := rowLen(i); n != cols {
			return 0, fmt.Errorf("%w: row %d has %d cells, row 0 has %d", ErrRaggedMask, i, n, cols)
		}
	}
	return cols, nil
}

// Rows returns the number of rows.
func (m *Mask) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Mask) Cols() int { return m.cols }

// At reports whether (r, c) is foreground. Cells outside the mask are background.
func (m *Mask) At(r, c int) bool {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return false
	}
	return m.data[r*m.cols+c]
}

// Set sets cell (r, c). Coordinates outside the mask are ignored.
func (m *Mask) Set(r, c int, v bool) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return
	}
	m.data[r*m.cols+c] = v
}

// Count returns the number of foreground cells.
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.data {
		if v {
			n++
		}
	}
	return n
}

// Pad returns a copy of m with a border of n background cells on every side.
func (m *Mask) Pad(n int) *Mask {
	if n < 0 {
		n = 0
	}
	out := &Mask{rows: m.rows + 2*n, cols: m.cols + 2*n}
	out.data = make([]bool, out.rows*out.cols)
	for r := 0; r < m.rows; r++ {
		dst := (r+n)*out.cols + n
		copy(out.data[dst:dst+m.cols], m.data[r*m.cols:(r+1)*m.cols])
	}
	return out
}

// Points lists the foreground cells in row-major order.
func (m *Mask) Points() []Point {
	pts := make([]Point, 0, m.Count())
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			if m.data[r*m.cols+c] {
				pts = append(pts, Point{Row: r, Col: c})
			}
		}
	}
	return pts
}
