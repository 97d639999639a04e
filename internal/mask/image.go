package mask

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// FromImage binarizes an already-decoded image by luminance.
//
// Parameters:
//   - img: Source image (color or grayscale).
//   - region: Area to convert, in img coordinates. An empty rectangle selects
//     the whole image. The region must lie inside img.Bounds().
//   - level: Luminance threshold (0-255). Pixels at or above level become
//     foreground.
//
// Row 0 of the returned mask is the top row of region.
func FromImage(img image.Image, region image.Rectangle, level uint8) (*Mask, error) {
	src, err := cropTo(img, region)
	if err != nil {
		return nil, err
	}

	bw := segment.Threshold(imaging.Grayscale(src), level)
	b := bw.Bounds()
	m, err := New(b.Dy(), b.Dx())
	if err != nil {
		return nil, err
	}
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			m.data[y*m.cols+x] = bw.GrayAt(x+b.Min.X, y+b.Min.Y).Y != 0
		}
	}
	return m, nil
}

// FromColor marks as foreground every opaque-enough pixel whose colour is
// within tolerance of key, measured with CIEDE2000.
//
// key is a "#RRGGBB" hex string. Fully transparent pixels are always
// background. A tolerance around 0.05 matches anti-aliased fills of a flat
// diagram colour; 0 requires an exact match.
func FromColor(img image.Image, key string, tolerance float64) (*Mask, error) {
	want, err := colorful.Hex(key)
	if err != nil {
		return nil, fmt.Errorf("invalid key color %q: %w", key, err)
	}
	if tolerance < 0 {
		return nil, fmt.Errorf("tolerance must be >= 0, got %g", tolerance)
	}

	b := img.Bounds()
	m, err := New(b.Dy(), b.Dx())
	if err != nil {
		return nil, err
	}
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			got, ok := colorful.MakeColor(img.At(x+b.Min.X, y+b.Min.Y))
			if !ok {
				continue
			}
			m.data[y*m.cols+x] = got.DistanceCIEDE2000(want) <= tolerance
		}
	}
	return m, nil
}

// cropTo returns the region of img to convert.
func cropTo(img image.Image, region image.Rectangle) (image.Image, error) {
	bounds := img.Bounds()
	if region.Empty() {
		if bounds.Empty() {
			return nil, ErrEmptyMask
		}
		return img, nil
	}
	if !region.In(bounds) {
		return nil, fmt.Errorf("%w: region (%d,%d)-(%d,%d), image (%d,%d)-(%d,%d)",
			ErrRegionOutOfBounds,
			region.Min.X, region.Min.Y, region.Max.X, region.Max.Y,
			bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	return imaging.Crop(img, region), nil
}
