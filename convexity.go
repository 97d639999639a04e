package convexity

import (
	"context"
	"fmt"
	"time"

	"github.com/ironsheep/shape-convexity/internal/mask"
	"github.com/ironsheep/shape-convexity/internal/visibility"
)

// PixelSet selects which pixels of the shape are tested against each other.
type PixelSet = mask.Mode

const (
	// ObjectPixels tests every foreground pixel.
	ObjectPixels PixelSet = mask.Object
	// BoundaryPixels tests only the pixels removed by one erosion.
	BoundaryPixels PixelSet = mask.Boundary
)

// Result contains an index together with the counts it was derived from.
type Result struct {
	// Index is the mean per-pixel visibility ratio, in [0, 1].
	Index float64 `json:"index"`

	// PixelSet is "object" or "boundary".
	PixelSet string `json:"pixel_set"`

	// PixelCount is N, the size of the tested pixel set.
	PixelCount int `json:"pixel_count"`

	// PairCount is N·(N-1)/2, the number of line tests performed.
	PairCount int `json:"pair_count"`

	// VisiblePairs is how many of those pairs see each other.
	VisiblePairs int `json:"visible_pairs"`

	// Pixels lists the tested pixels in the caller's mask coordinates,
	// row-major.
	Pixels []Point `json:"pixels"`

	// Ratios holds, per entry of Pixels, the fraction of the other pixels
	// it sees.
	Ratios []float64 `json:"ratios"`
}

// BeerIndex returns the object-pixel convexity index of m: the mean, over
// all foreground pixels, of the fraction of other foreground pixels each can
// see along a straight line through the shape.
func BeerIndex(ctx context.Context, m *Mask, opts ...Option) (float64, error) {
	res, err := analyze(ctx, "beer index", m, ObjectPixels, buildOptions(opts))
	if err != nil {
		return 0, err
	}
	return res.Index, nil
}

// BeerBoundaryIndex returns the boundary-pixel convexity index of m. The
// boundary is the set of foreground pixels removed by eroding m with se;
// pass Conn8() for 8-connectivity or Conn4() for 4-connectivity.
func BeerBoundaryIndex(ctx context.Context, m *Mask, se *StructuringElement, opts ...Option) (float64, error) {
	if se == nil {
		return 0, classify("beer boundary index", fmt.Errorf("%w: nil element", mask.ErrInvalidElement))
	}
	o := buildOptions(opts)
	o.Element = se
	res, err := analyze(ctx, "beer boundary index", m, BoundaryPixels, o)
	if err != nil {
		return 0, err
	}
	return res.Index, nil
}

// Analyze computes the index for the chosen pixel set and returns the
// intermediate counts. In BoundaryPixels mode the structuring element comes
// from WithStructuringElement (default Conn8).
func Analyze(ctx context.Context, m *Mask, set PixelSet, opts ...Option) (*Result, error) {
	return analyze(ctx, "analyze", m, set, buildOptions(opts))
}

func analyze(ctx context.Context, op string, m *Mask, set PixelSet, o Options) (*Result, error) {
	start := time.Now()

	prep, err := mask.Prepare(m, set, o.Element)
	if err != nil {
		return nil, classify(op, err)
	}
	n := len(prep.Points)
	o.debugf("%s: %s set of %d pixels, %d pairs, %d workers", op, set, n, n*(n-1)/2, o.Workers)

	vis, err := visibility.Build(ctx, prep.Padded, prep.Points, o.Workers)
	if err != nil {
		return nil, classify(op, err)
	}
	ratios, err := vis.Ratios()
	if err != nil {
		return nil, classify(op, err)
	}
	index, err := visibility.Aggregate(vis)
	if err != nil {
		return nil, classify(op, err)
	}

	visible := 0
	for _, s := range vis.RowSums() {
		visible += int(s)
	}
	pixels := make([]Point, n)
	for i, p := range prep.Points {
		pixels[i] = Point{Row: p.Row - 1, Col: p.Col - 1}
	}

	o.debugf("%s: index %.6f in %s", op, index, time.Since(start))
	return &Result{
		Index:        index,
		PixelSet:     set.String(),
		PixelCount:   n,
		PairCount:    n * (n - 1) / 2,
		VisiblePairs: visible / 2,
		Pixels:       pixels,
		Ratios:       ratios,
	}, nil
}
