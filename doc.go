// Package convexity computes visibility-based convexity indices of binary
// shape masks.
//
// Two pixels of a shape see each other when the discrete straight line
// between them stays inside the shape. Counting, for every pixel, how many
// of the others it sees and averaging the resulting fractions gives a score
// in [0, 1]: 1 for a fully convex pixel set, lower as parts of the shape
// hide behind concavities or holes.
//
// Two variants share one pipeline and differ only in the pixel set tested:
//
//   - BeerIndex tests every foreground pixel of the shape.
//   - BeerBoundaryIndex tests only the boundary layer, the pixels removed by
//     one erosion with the given structuring element (Conn8 or Conn4).
//
// Analyze runs either variant and returns the intermediate counts as well.
//
// # Input
//
// Masks are built with NewMask (integer grids), NewMaskFromBools,
// MaskFromImage (luminance threshold of a decoded image) or MaskFromColor
// (colour key). The caller owns image loading; this package reads no files.
//
// # Errors
//
// Every failure matches one of two sentinels with errors.Is:
//
//   - ErrInvalidMaskShape: empty or ragged grid, or an unusable structuring
//     element. Reported before any work starts.
//   - ErrDegenerateInput: the pixel set has fewer than two pixels, so the
//     index is undefined. No NaN is ever returned.
//
// Context cancellation is returned unchanged.
//
// # Performance Considerations
//
// The object variant is quadratic in the number of foreground pixels and
// stores an N×N matrix; for large shapes prefer the boundary variant or
// downsample the mask first. Pair evaluation runs on WithWorkers goroutines.
package convexity
