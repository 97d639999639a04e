package visibility

import (
	"context"
	"testing"
)

// disk returns a (2r+1)×(2r+1) grid holding a filled digital disk.
func disk(r int) [][]int {
	grid := make([][]int, 2*r+1)
	for y := range grid {
		grid[y] = make([]int, 2*r+1)
		for x := range grid[y] {
			if (y-r)*(y-r)+(x-r)*(x-r) <= r*r {
				grid[y][x] = 1
			}
		}
	}
	return grid
}

// BenchmarkBuild measures the pairwise matrix build on a radius-12 disk
// (~450 pixels, ~100k line tests).
func BenchmarkBuild(b *testing.B) {
	m, pts := prepared(b, disk(12))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Build(context.Background(), m, pts, 0); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBuild_SingleWorker is the sequential baseline for BenchmarkBuild.
func BenchmarkBuild_SingleWorker(b *testing.B) {
	m, pts := prepared(b, disk(12))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Build(context.Background(), m, pts, 1); err != nil {
			b.Fatal(err)
		}
	}
}
