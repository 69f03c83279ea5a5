package opentype

import "errors"
import "image"
import "image/draw"

import xfont "golang.org/x/image/font"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"
import "golang.org/x/image/vector"

import "github.com/velbri/monotext/fract"
import "github.com/velbri/monotext/glyph"

var _ glyph.Source = (*Source)(nil)

// Returned by [Source.Rasterize] and [Source.Kern] when the font
// face has no glyph for the requested character.
var ErrMissingGlyph = errors.New("font face doesn't contain a glyph for the character")

const hintingNone = xfont.HintingNone

// Source rasterizes the glyph outlines of an [sfnt.Font] at a fixed
// pixel size and exposes them through the [glyph.Source] boundary:
// packed monochrome bitmaps, whole scanline metrics and 26.6 advances
// and kerning.
//
// Outlines are rasterized with [vector.Rasterizer] into an 8-bit
// coverage mask first, then thresholded at half coverage to 1-bit.
// Glyphs are always loaded at integer positions, so rasterization is
// deterministic per instance, as the boundary requires.
//
// A Source is not safe for concurrent use: the underlying
// [sfnt.Buffer] and the rasterizer are reused between calls.
// [monotext.Font] serializes its calls into the source on its own.
type Source struct {
	sfntFont *sfnt.Font
	buffer sfnt.Buffer
	rasterizer vector.Rasterizer
	size fixed.Int26_6
}

// Creates a [Source] for the given font at the given pixel size.
// Nil fonts and non-positive sizes panic.
func NewSource(sfntFont *sfnt.Font, sizePx int) *Source {
	if sfntFont == nil { panic("nil sfnt.Font") }
	if sizePx <= 0 { panic("sizePx must be positive") }
	return &Source{
		sfntFont: sfntFont,
		size: fixed.I(sizePx),
	}
}

// Returns the pixel size the source was created with.
func (self *Source) SizePx() int { return self.size.Floor() }

func (self *Source) glyphIndex(char rune) (sfnt.GlyphIndex, error) {
	index, err := self.sfntFont.GlyphIndex(&self.buffer, char)
	if err != nil { return 0, err }
	if index == 0 { return 0, ErrMissingGlyph }
	return index, nil
}

// Implements [glyph.Source]. Characters missing from the font face
// fail with [ErrMissingGlyph]; no substitute glyph is produced.
func (self *Source) Rasterize(char rune) (glyph.Raster, error) {
	index, err := self.glyphIndex(char)
	if err != nil { return glyph.Raster{}, err }
	segments, err := self.sfntFont.LoadGlyph(&self.buffer, index, self.size, nil)
	if err != nil { return glyph.Raster{}, err }
	advance, err := self.sfntFont.GlyphAdvance(&self.buffer, index, self.size, hintingNone)
	if err != nil { return glyph.Raster{}, err }

	raster := glyph.Raster{ Advance: fract.Unit(advance) }
	mask, minY := self.rasterizeOutline(segments)
	if mask != nil {
		raster.Width = mask.Rect.Dx()
		raster.Height = mask.Rect.Dy()
		raster.TopBearing = -minY
		raster.Pitch = monoPitch(raster.Width)
		raster.Bits = packMono(mask, raster.Pitch)
	}
	return raster, nil
}

// Implements [glyph.Source]. Pairs without kerning information
// report a zero offset, not an error.
func (self *Source) Kern(prev, char rune) (fract.Unit, error) {
	prevIndex, err := self.glyphIndex(prev)
	if err != nil { return 0, err }
	currIndex, err := self.glyphIndex(char)
	if err != nil { return 0, err }

	kern, err := self.sfntFont.Kern(&self.buffer, prevIndex, currIndex, self.size, hintingNone)
	if err == sfnt.ErrNotFound { return 0, nil }
	if err != nil { return 0, err }
	return fract.Unit(kern), nil
}

// Rasterizes the outline into an 8-bit coverage mask whose bounds
// tightly wrap the glyph. Returns nil for outlines with no active
// lines or curves (e.g. space glyphs), along with the outline's top
// scanline relative to the baseline (y grows downwards, so ascenders
// sit at negative values).
func (self *Source) rasterizeOutline(segments sfnt.Segments) (*image.Alpha, int) {
	drawable := false
	for _, segment := range segments {
		if segment.Op == sfnt.SegmentOpMoveTo { continue }
		drawable = true
		break
	}
	if !drawable { return nil, 0 }

	bounds := segments.Bounds()
	minX := bounds.Min.X.Floor()
	minY := bounds.Min.Y.Floor()
	width := bounds.Max.X.Ceil() - minX
	height := bounds.Max.Y.Ceil() - minY

	// trace the outline shifted to the positive quadrant, as the
	// vector rasterizer expects
	self.rasterizer.Reset(width, height)
	self.rasterizer.DrawOp = draw.Src
	dx := -fixed.I(minX)
	dy := -fixed.I(minY)
	for _, segment := range segments {
		switch segment.Op {
		case sfnt.SegmentOpMoveTo:
			self.rasterizer.MoveTo(segCoords(segment.Args[0], dx, dy))
		case sfnt.SegmentOpLineTo:
			self.rasterizer.LineTo(segCoords(segment.Args[0], dx, dy))
		case sfnt.SegmentOpQuadTo:
			cx, cy := segCoords(segment.Args[0], dx, dy)
			tx, ty := segCoords(segment.Args[1], dx, dy)
			self.rasterizer.QuadTo(cx, cy, tx, ty)
		case sfnt.SegmentOpCubeTo:
			cax, cay := segCoords(segment.Args[0], dx, dy)
			cbx, cby := segCoords(segment.Args[1], dx, dy)
			tx , ty  := segCoords(segment.Args[2], dx, dy)
			self.rasterizer.CubeTo(cax, cay, cbx, cby, tx, ty)
		default:
			panic("unexpected segment.Op case")
		}
	}

	mask := image.NewAlpha(self.rasterizer.Bounds())
	self.rasterizer.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask, minY
}

func segCoords(point fixed.Point26_6, dx, dy fixed.Int26_6) (float32, float32) {
	return float32(point.X + dx)/64.0, float32(point.Y + dy)/64.0
}
