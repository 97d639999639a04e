// Package visibility computes mutual pixel visibility over a pixel set and
// reduces it to a convexity index.
//
// # Algorithm Overview
//
//  1. Visible: rasterize the segment between two pixels and require every
//     cell on it, endpoints included, to be foreground.
//  2. Build: evaluate Visible once per unordered pair (i < j) and store the
//     result symmetrically in an N×N Matrix. The diagonal stays zero.
//  3. Aggregate: for each pixel, the fraction of the other N-1 pixels it
//     sees; the index is the mean of those fractions, in [0, 1].
//
// # Performance Considerations
//
// Build performs N·(N-1)/2 line tests, each linear in the segment length.
// Rows of the upper triangle are handed to a bounded pool of goroutines; each
// pair writes only its own matrix cell, so no locking is needed. The context
// is checked before every row, so cancelling it stops large builds promptly.
package visibility
