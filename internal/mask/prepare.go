package mask

import "fmt"

// Mode selects which pixel set Prepare derives.
type Mode int

const (
	// Object tests every foreground pixel.
	Object Mode = iota
	// Boundary tests only the pixels removed by one erosion step.
	Boundary
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Object:
		return "object"
	case Boundary:
		return "boundary"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Prepared is the output of Prepare.
type Prepared struct {
	// Padded is m with a one-cell background border. All Points index into it.
	Padded *Mask
	// Points is the pixel set under test, row-major.
	Points []Point
}

// Prepare pads m by one background cell and derives the pixel set for mode.
//
// In Boundary mode e is the structuring element used for the erosion; it is
// ignored in Object mode. A pixel set with fewer than two members yields
// ErrTooFewPixels.
func Prepare(m *Mask, mode Mode, e *Element) (*Prepared, error) {
	if m == nil || m.rows == 0 || m.cols == 0 {
		return nil, ErrEmptyMask
	}
	padded := m.Pad(1)

	var pts []Point
	switch mode {
	case Object:
		pts = padded.Points()
	case Boundary:
		if e == nil {
			return nil, fmt.Errorf("%w: nil element", ErrInvalidElement)
		}
		eroded := Erode(padded, e)
		for r := 0; r < padded.rows; r++ {
			for c := 0; c < padded.cols; c++ {
				i := r*padded.cols + c
				if padded.data[i] && !eroded.data[i] {
					pts = append(pts, Point{Row: r, Col: c})
				}
			}
		}
	default:
		return nil, fmt.Errorf("mask: unknown mode %v", mode)
	}

	if len(pts) < 2 {
		return nil, fmt.Errorf("%w: %s set has %d", ErrTooFewPixels, mode, len(pts))
	}
	return &Prepared{Padded: padded, Points: pts}, nil
}
