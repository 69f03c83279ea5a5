package glyph

import "github.com/velbri/monotext/bitmap"

// The immutable image and metrics of a single character, rasterized
// at a specific pixel size. Glyphs are built once per character by
// [New] and shared through a per font cache afterwards; no one must
// mutate the bitmap or the fields after construction.
type Glyph struct {
	// The unpacked monochrome image of the glyph.
	Bitmap *bitmap.Bitmap

	// Vertical distance from the baseline to the bitmap's
	// top-most scanline.
	TopBearing int

	// How many pixels the glyph extends above the baseline.
	// Always non-negative.
	Ascent int

	// How many pixels the glyph extends below the baseline.
	// Always non-negative.
	Descent int

	// Horizontal pixel step from this glyph's origin to the next
	// glyph's origin, before kerning.
	AdvanceWidth int
}

// Builds a Glyph from the raw product of an outline rasterizer.
//
// The packed bits are unpacked into a monochrome bitmap, the vertical
// metrics are derived from the top bearing and the bitmap height, and
// the 26.6 fixed point advance is floored to whole pixels.
func New(raster Raster) (*Glyph, error) {
	pixels, err := bitmap.UnpackMono(raster.Bits, raster.Width, raster.Height, raster.Pitch)
	if err != nil { return nil, err }
	img, err := bitmap.FromPix(pixels, raster.Width, raster.Height)
	if err != nil { return nil, err }

	descent := raster.Height - raster.TopBearing
	if descent < 0 { descent = 0 }
	ascent := maxInt(raster.TopBearing, raster.Height) - descent
	if ascent < 0 { ascent = 0 }

	return &Glyph{
		Bitmap: img,
		TopBearing: raster.TopBearing,
		Ascent: ascent,
		Descent: descent,
		AdvanceWidth: raster.Advance.ToIntFloor(),
	}, nil
}

func maxInt(a, b int) int {
	if a >= b { return a }
	return b
}
