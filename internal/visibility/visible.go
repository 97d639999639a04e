package visibility

import (
	"github.com/ironsheep/shape-convexity/internal/mask"
	"github.com/ironsheep/shape-convexity/internal/raster"
)

// Visible reports whether every cell on the rasterized segment p0–p1,
// endpoints included, is foreground in m.
func Visible(m *mask.Mask, p0, p1 mask.Point) bool {
	return raster.Walk(p0, p1, func(p mask.Point) bool {
		return m.At(p.Row, p.Col)
	})
}
