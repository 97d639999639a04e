package visibility

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ironsheep/shape-convexity/internal/mask"
)

// Build evaluates Visible for every unordered pair of pts over m and returns
// the filled symmetric matrix.
//
// Parameters:
//   - ctx: Checked before each row of pairs; cancellation aborts the build
//     and returns ctx.Err().
//   - m: The padded mask the points index into.
//   - pts: Pixel set under test; must have at least two entries.
//   - workers: Maximum concurrent rows. Values < 1 mean runtime.NumCPU().
//
// Rows of the upper triangle shrink as i grows, so rows are scheduled one at
// a time rather than in fixed blocks.
func Build(ctx context.Context, m *mask.Mask, pts []mask.Point, workers int) (*Matrix, error) {
	n := len(pts)
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPixels, n)
	}
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	vis := newMatrix(n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < n-1; i++ {
		if err := gctx.Err(); err != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p := pts[i]
			for j := i + 1; j < n; j++ {
				vis.set(i, j, Visible(m, p, pts[j]))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// A cancellation observed only by the scheduling loop leaves no goroutine
	// error behind.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return vis, nil
}
