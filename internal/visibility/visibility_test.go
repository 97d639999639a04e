package visibility

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/shape-convexity/internal/mask"
)

// prepared pads grid and returns the padded mask with its object pixels.
func prepared(t testing.TB, grid [][]int) (*mask.Mask, []mask.Point) {
	t.Helper()
	m, err := mask.FromGrid(grid)
	require.NoError(t, err)
	p := m.Pad(1)
	return p, p.Points()
}

var (
	solid3 = [][]int{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	}
	ring3 = [][]int{
		{1, 1, 1},
		{1, 0, 1},
		{1, 1, 1},
	}
	lShape = [][]int{
		{1, 0, 0},
		{1, 0, 0},
		{1, 1, 1},
	}
)

func TestVisible(t *testing.T) {
	ring, _ := prepared(t, ring3)

	tests := []struct {
		name   string
		p0, p1 mask.Point
		want   bool
	}{
		{"same pixel", mask.Point{Row: 1, Col: 1}, mask.Point{Row: 1, Col: 1}, true},
		{"along top edge", mask.Point{Row: 1, Col: 1}, mask.Point{Row: 1, Col: 3}, true},
		{"across the hole", mask.Point{Row: 1, Col: 2}, mask.Point{Row: 3, Col: 2}, false},
		{"diagonal through hole", mask.Point{Row: 1, Col: 1}, mask.Point{Row: 3, Col: 3}, false},
		{"knight move clips hole", mask.Point{Row: 1, Col: 1}, mask.Point{Row: 3, Col: 2}, false},
		{"adjacent corner", mask.Point{Row: 1, Col: 3}, mask.Point{Row: 2, Col: 3}, true},
		{"endpoint on background", mask.Point{Row: 1, Col: 1}, mask.Point{Row: 2, Col: 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Visible(ring, tt.p0, tt.p1))
			assert.Equal(t, tt.want, Visible(ring, tt.p1, tt.p0), "visibility must not depend on direction")
		})
	}
}

func TestBuild_Solid(t *testing.T) {
	m, pts := prepared(t, solid3)

	vis, err := Build(context.Background(), m, pts, 2)
	require.NoError(t, err)
	require.Equal(t, 9, vis.Size())

	for i := 0; i < 9; i++ {
		assert.Zero(t, vis.At(i, i), "diagonal must stay zero")
		for j := 0; j < 9; j++ {
			if i != j {
				assert.True(t, vis.Visible(i, j))
			}
		}
	}

	index, err := Aggregate(vis)
	require.NoError(t, err)
	assert.Equal(t, 1.0, index)
}

func TestBuild_Ring(t *testing.T) {
	m, pts := prepared(t, ring3)

	vis, err := Build(context.Background(), m, pts, 4)
	require.NoError(t, err)

	var visible float64
	for _, s := range vis.RowSums() {
		visible += s
	}
	assert.Equal(t, 40.0, visible, "20 of 28 pairs, counted from both ends")

	index, err := Aggregate(vis)
	require.NoError(t, err)
	assert.InDelta(t, 5.0/7.0, index, 1e-12)
}

func TestBuild_LShape(t *testing.T) {
	m, pts := prepared(t, lShape)

	vis, err := Build(context.Background(), m, pts, 1)
	require.NoError(t, err)

	ratios, err := vis.Ratios()
	require.NoError(t, err)
	require.Len(t, ratios, 5)
	for _, r := range ratios {
		assert.GreaterOrEqual(t, r, 0.0)
		assert.LessOrEqual(t, r, 1.0)
	}
	// The corner pixel sees every other pixel.
	assert.Equal(t, 1.0, ratios[2])

	index, err := Aggregate(vis)
	require.NoError(t, err)
	assert.InDelta(t, 0.8, index, 1e-12)
}

func TestBuild_Symmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 10; trial++ {
		grid := make([][]int, 9)
		for r := range grid {
			grid[r] = make([]int, 9)
			for c := range grid[r] {
				if rng.Float64() < 0.7 {
					grid[r][c] = 1
				}
			}
		}
		m, pts := prepared(t, grid)
		if len(pts) < 2 {
			continue
		}

		vis, err := Build(context.Background(), m, pts, 3)
		require.NoError(t, err)

		n := vis.Size()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				require.Equal(t, vis.At(i, j), vis.At(j, i))
				if i < j {
					require.Equal(t, Visible(m, pts[i], pts[j]), vis.Visible(i, j))
				}
			}
		}

		index, err := Aggregate(vis)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, index, 0.0)
		assert.LessOrEqual(t, index, 1.0)
	}
}

func TestBuild_WorkerCountDoesNotChangeResult(t *testing.T) {
	m, pts := prepared(t, ring3)

	want, err := Build(context.Background(), m, pts, 1)
	require.NoError(t, err)

	for _, workers := range []int{0, 2, 7, 64} {
		got, err := Build(context.Background(), m, pts, workers)
		require.NoError(t, err)
		assert.Equal(t, want.RowSums(), got.RowSums(), "workers=%d", workers)
	}
}

func TestBuild_TooFewPixels(t *testing.T) {
	m, _ := prepared(t, solid3)

	_, err := Build(context.Background(), m, []mask.Point{{Row: 1, Col: 1}}, 1)
	assert.ErrorIs(t, err, ErrTooFewPixels)

	_, err = Build(context.Background(), m, nil, 1)
	assert.ErrorIs(t, err, ErrTooFewPixels)
}

func TestBuild_Canceled(t *testing.T) {
	m, pts := prepared(t, solid3)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Build(ctx, m, pts, 2)
	assert.ErrorIs(t, err, context.Canceled)
}
