package convexity

import (
	"image"

	"golang.org/x/exp/constraints"

	"github.com/ironsheep/shape-convexity/internal/mask"
)

type (
	// Mask is a binary shape mask; see NewMask.
	Mask = mask.Mask
	// Point is a (row, col) cell coordinate.
	Point = mask.Point
	// StructuringElement is the erosion neighbourhood for boundary pixels.
	StructuringElement = mask.Element
)

// NewMask builds a mask from an integer grid; nonzero cells are foreground.
// The grid must be non-empty and rectangular.
func NewMask[T constraints.Integer](grid [][]T) (*Mask, error) {
	m, err := mask.FromGrid(grid)
	return m, classify("new mask", err)
}

// NewMaskFromBools builds a mask from a boolean grid.
func NewMaskFromBools(grid [][]bool) (*Mask, error) {
	m, err := mask.FromBools(grid)
	return m, classify("new mask", err)
}

// MaskFromImage binarizes region of img by luminance: pixels at or above
// level are foreground. An empty region selects the whole image.
func MaskFromImage(img image.Image, region image.Rectangle, level uint8) (*Mask, error) {
	m, err := mask.FromImage(img, region, level)
	return m, classify("mask from image", err)
}

// MaskFromColor marks pixels within CIEDE2000 distance tolerance of the
// "#RRGGBB" colour key as foreground.
func MaskFromColor(img image.Image, key string, tolerance float64) (*Mask, error) {
	m, err := mask.FromColor(img, key, tolerance)
	return m, classify("mask from color", err)
}

// Conn8 returns the 3×3 square structuring element (8-neighbourhood).
func Conn8() *StructuringElement { return mask.Conn8() }

// Conn4 returns the 3×3 cross structuring element (4-neighbourhood).
func Conn4() *StructuringElement { return mask.Conn4() }

// NewStructuringElement validates a custom element. It must be non-empty,
// rectangular and odd-sized in both dimensions.
func NewStructuringElement(grid [][]bool) (*StructuringElement, error) {
	e, err := mask.NewElement(grid)
	return e, classify("new structuring element", err)
}
