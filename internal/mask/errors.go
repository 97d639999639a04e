package mask

import "errors"

var (
	// ErrEmptyMask indicates the input grid has no rows or no columns.
	ErrEmptyMask = errors.New("mask: grid must have at least one row and one column")
	// ErrRaggedMask indicates rows of differing lengths.
	ErrRaggedMask = errors.New("mask: all rows must have the same length")
	// ErrInvalidElement indicates a structuring element that is empty,
	// non-rectangular or has an even dimension.
	ErrInvalidElement = errors.New("mask: structuring element must be a non-empty odd×odd grid")
	// ErrTooFewPixels indicates the derived pixel set has fewer than two members.
	ErrTooFewPixels = errors.New("mask: pixel set has fewer than two pixels")
	// ErrRegionOutOfBounds indicates a crop region that is not inside the image.
	ErrRegionOutOfBounds = errors.New("mask: region outside image bounds")
)
