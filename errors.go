package convexity

import (
	"context"
	"errors"
	"fmt"

	"github.com/ironsheep/shape-convexity/internal/mask"
	"github.com/ironsheep/shape-convexity/internal/visibility"
)

var (
	// ErrDegenerateInput indicates a pixel set with fewer than two pixels,
	// for which the index is undefined.
	ErrDegenerateInput = errors.New("convexity: degenerate input, fewer than two pixels to compare")
	// ErrInvalidMaskShape indicates an empty or ragged mask, or a structuring
	// element without a single centre cell.
	ErrInvalidMaskShape = errors.New("convexity: invalid mask or structuring element shape")
)

// classify wraps err so it matches the public sentinel for its cause while
// keeping the internal cause reachable through errors.Is/As.
func classify(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, mask.ErrTooFewPixels), errors.Is(err, visibility.ErrTooFewPixels):
		return fmt.Errorf("%s: %w: %w", op, ErrDegenerateInput, err)
	case errors.Is(err, mask.ErrEmptyMask),
		errors.Is(err, mask.ErrRaggedMask),
		errors.Is(err, mask.ErrInvalidElement):
		return fmt.Errorf("%s: %w: %w", op, ErrInvalidMaskShape, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
