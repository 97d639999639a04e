package mask

import "fmt"

// Element is a structuring element: a boolean neighbourhood centred on the
// cell being tested. Its dimensions are always odd.
type Element struct {
	rows int
	cols int
	on   []bool
}

// NewElement validates grid and returns it as a structuring element.
//
// The grid must be non-empty, rectangular and odd in both dimensions so that
// it has a single centre cell.
func NewElement(grid [][]bool) (*Element, error) {
	cols, err := gridShape(len(grid), func(i int) int { return len(grid[i]) })
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidElement, err)
	}
	if len(grid)%2 == 0 || cols%2 == 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidElement, len(grid), cols)
	}
	e := &Element{rows: len(grid), cols: cols, on: make([]bool, len(grid)*cols)}
	for r, row := range grid {
		copy(e.on[r*cols:(r+1)*cols], row)
	}
	return e, nil
}

// Conn8 returns the 3×3 all-true element (8-connectivity).
func Conn8() *Element {
	return &Element{rows: 3, cols: 3, on: []bool{
		true, true, true,
		true, true, true,
		true, true, true,
	}}
}

// Conn4 returns the 3×3 cross element (4-connectivity).
func Conn4() *Element {
	return &Element{rows: 3, cols: 3, on: []bool{
		false, true, false,
		true, true, true,
		false, true, false,
	}}
}

// Size returns the element dimensions.
func (e *Element) Size() (rows, cols int) { return e.rows, e.cols }

// offsets lists the (dr, dc) displacements of the element's true cells
// relative to its centre.
func (e *Element) offsets() []Point {
	cr, cc := e.rows/2, e.cols/2
	var out []Point
	for r := 0; r < e.rows; r++ {
		for c := 0; c < e.cols; c++ {
			if e.on[r*e.cols+c] {
				out = append(out, Point{Row: r - cr, Col: c - cc})
			}
		}
	}
	return out
}

// Erode returns the binary erosion of m by e.
//
// A foreground cell survives only if every cell covered by e, centred on it,
// is foreground. Cells outside m count as background.
func Erode(m *Mask, e *Element) *Mask {
	out := &Mask{rows: m.rows, cols: m.cols, data: make([]bool, len(m.data))}
	offsets := e.offsets()
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			if !m.data[r*m.cols+c] {
				continue
			}
			keep := true
			for _, d := range offsets {
				if !m.At(r+d.Row, c+d.Col) {
					keep = false
					break
				}
			}
			out.data[r*m.cols+c] = keep
		}
	}
	return out
}
