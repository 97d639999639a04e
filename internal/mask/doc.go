// Package mask holds binary shape masks and derives the pixel sets that the
// visibility pipeline tests.
//
// A Mask is a dense rows×cols grid of foreground/background cells. Masks are
// built from integer or boolean grids, or from an already-decoded image by
// luminance threshold or colour key. Nothing in this package reads files.
//
// # Coordinate System
//
// Cells are addressed as (row, col), 0-based, row increasing downward and col
// increasing rightward. Point uses the same order; it is not an image.Point.
//
// # Pixel Sets
//
// Prepare pads a mask by one background cell on every side and returns the
// padded copy together with either:
//
//   - every foreground cell (Object mode), or
//   - the foreground cells removed by one binary erosion with a structuring
//     element (Boundary mode), which is the outer boundary layer.
//
// Points returned by Prepare are in padded coordinates and are listed in
// row-major order.
//
// # Thread Safety
//
// Masks are not mutated after construction by anything in this package, so a
// Mask may be shared between goroutines as long as the caller does not call
// Set concurrently.
package mask
