// Package raster draws discrete straight lines between grid cells.
package raster

import "github.com/ironsheep/shape-convexity/internal/mask"

// Line returns the cells on the segment from p0 to p1, both endpoints
// included, using integer Bresenham stepping.
//
// The walk always runs from the lexicographically smaller endpoint (by row,
// then col), so Line(p1, p0) is exactly Line(p0, p1) reversed. Consecutive
// cells are 8-adjacent, the dominant axis advances by one every step and no
// cell repeats; the result has max(|Δrow|, |Δcol|)+1 entries.
func Line(p0, p1 mask.Point) []mask.Point {
	out := make([]mask.Point, 0, Len(p0, p1))
	swapped := less(p1, p0)
	if swapped {
		p0, p1 = p1, p0
	}
	walk(p0, p1, func(p mask.Point) bool {
		out = append(out, p)
		return true
	})
	if swapped {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

// Walk calls fn for each cell on the segment between p0 and p1 and stops
// early when fn returns false. It reports whether every call returned true.
//
// The cells visited are the same set Line returns. Visiting order is always
// from the smaller endpoint, whichever argument it was passed as.
func Walk(p0, p1 mask.Point, fn func(mask.Point) bool) bool {
	if less(p1, p0) {
		p0, p1 = p1, p0
	}
	return walk(p0, p1, fn)
}

// Len returns the number of cells on the segment between p0 and p1.
func Len(p0, p1 mask.Point) int {
	return max(abs(p1.Row-p0.Row), abs(p1.Col-p0.Col)) + 1
}

func walk(p0, p1 mask.Point, fn func(mask.Point) bool) bool {
	// major/minor are the running coordinates along the dominant and the
	// other axis; steep means the dominant axis is rows.
	major, minor := p0.Col, p0.Row
	dMajor, dMinor := abs(p1.Col-p0.Col), abs(p1.Row-p0.Row)
	sMajor, sMinor := sign(p1.Col-p0.Col), sign(p1.Row-p0.Row)
	steep := dMinor > dMajor
	if steep {
		major, minor = minor, major
		dMajor, dMinor = dMinor, dMajor
		sMajor, sMinor = sMinor, sMajor
	}

	d := 2*dMinor - dMajor
	for i := 0; i < dMajor; i++ {
		p := mask.Point{Row: minor, Col: major}
		if steep {
			p = mask.Point{Row: major, Col: minor}
		}
		if !fn(p) {
			return false
		}
		if d >= 0 {
			minor += sMinor
			d -= 2 * dMajor
		}
		major += sMajor
		d += 2 * dMinor
	}
	return fn(p1)
}

func less(a, b mask.Point) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// sign returns 1 for v > 0 and -1 otherwise; a zero delta never steps.
func sign(v int) int {
	if v > 0 {
		return 1
	}
	return -1
}
