package monotext

import "fmt"
import "sync"
import "unicode/utf8"

import "github.com/velbri/monotext/bitmap"
import "github.com/velbri/monotext/cache"
import "github.com/velbri/monotext/glyph"

// Font binds an outline rasterization source to a per instance glyph
// cache and exposes the text measuring and rendering operations on
// top of them. It is the central type of the package.
//
// A Font owns its cache: create a new Font when you switch face or
// pixel size, so stale glyphs can't leak between configurations.
// Fonts can serve concurrent render calls; the cache is synchronized
// and access to the source is serialized internally.
type Font struct {
	source glyph.Source
	glyphCache *cache.GlyphCache
	sourceMutex sync.Mutex
}

// Creates a [Font] on top of the given glyph source. Nil sources
// will panic.
func NewFont(source glyph.Source) *Font {
	if source == nil { panic("nil glyph source") }
	return &Font{
		source: source,
		glyphCache: cache.New(),
	}
}

// Returns the glyph for the given character, rasterizing it through
// the source on the first request and answering from the cache
// afterwards. Repeated calls for the same character return the same
// *[glyph.Glyph] value.
//
// Failures are reported wrapping [ErrRasterization].
func (self *Font) GlyphForRune(char rune) (*glyph.Glyph, error) {
	if cachedGlyph, found := self.glyphCache.GetGlyph(char); found {
		return cachedGlyph, nil
	}

	// sources are stateful (reusable segment and outline buffers),
	// so calls into them are serialized
	self.sourceMutex.Lock()
	raster, err := self.source.Rasterize(char)
	self.sourceMutex.Unlock()
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrRasterization, char, err)
	}
	newGlyph, err := glyph.New(raster)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrRasterization, char, err)
	}
	return self.glyphCache.PassGlyph(char, newGlyph), nil
}

// Returns the horizontal kerning offset, in whole pixels, to apply
// when drawing char right after prev. Negative offsets move glyphs
// closer together, possibly overlapping their bounding boxes.
//
// The offset for prev == [glyph.NoChar] (first character of a text)
// is always zero. Other pairs are answered by the source on the
// first request and cached afterwards; the source's 26.6 value is
// floored to whole pixels.
func (self *Font) KerningOffset(prev, char rune) (int, error) {
	if prev == glyph.NoChar { return 0, nil }
	if offset, found := self.glyphCache.GetKern(prev, char); found {
		return offset, nil
	}

	self.sourceMutex.Lock()
	kern, err := self.source.Kern(prev, char)
	self.sourceMutex.Unlock()
	if err != nil {
		return 0, fmt.Errorf("kerning lookup for %q, %q: %w", prev, char, err)
	}
	return self.glyphCache.PassKern(prev, char, kern.ToIntFloor()), nil
}

// Returns the width, height and baseline of the bitmap that rendering
// the given text would produce. The glyphs slice must hold one glyph
// per character of text, in order (see [Font.GlyphForRune]); anything
// else fails with [ErrLengthMismatch].
//
// The width accumulates, per character, the larger of the kerned
// advance and the kerned bitmap width: with tight kerning the bitmap
// of a glyph can be wider than its advance (italics are a common
// case), and taking only the advance would clip pixels, while taking
// only the bitmap width would misplace narrow glyphs. The height is
// the maximum ascent plus the maximum descent, and the baseline is
// the maximum descent, measured from the bottom of the bitmap.
//
// An empty text yields (0, 0, 0).
func (self *Font) Dimensions(text string, glyphs []*glyph.Glyph) (int, int, int, error) {
	if utf8.RuneCountInString(text) != len(glyphs) {
		return 0, 0, 0, fmt.Errorf("%w (%d runes, %d glyphs)",
			ErrLengthMismatch, utf8.RuneCountInString(text), len(glyphs))
	}

	width, maxAscent, maxDescent := 0, 0, 0
	prev := glyph.NoChar
	index := 0
	for _, char := range text {
		currGlyph := glyphs[index]
		index += 1

		kern, err := self.KerningOffset(prev, char)
		if err != nil { return 0, 0, 0, err }

		maxAscent = maxInt(maxAscent, currGlyph.Ascent)
		maxDescent = maxInt(maxDescent, currGlyph.Descent)
		width += maxInt(currGlyph.AdvanceWidth + kern, currGlyph.Bitmap.Width() + kern)
		prev = char
	}
	return width, maxAscent + maxDescent, maxDescent, nil
}

// Renders the given text into a monochrome bitmap at its natural
// height, as computed by [Font.Dimensions]. See
// [Font.RenderTextHeight] for the fixed height variant and the
// errors that can be returned.
func (self *Font) RenderText(text string) (*bitmap.Bitmap, error) {
	return self.renderText(text, -1)
}

// Renders the given text into a monochrome bitmap of exactly the
// given height. The width is still derived from the text.
//
// The target height must be large enough to contain every glyph's
// placement; if it isn't, rendering fails with [ErrOutOfBounds]
// rather than clipping, as a silently cropped bitmap would corrupt
// downstream fixed height assumptions. Negative heights fail with
// [ErrInvalidDimension], and characters that can't be rasterized
// surface [ErrRasterization]. A render either returns a complete
// bitmap or fails; there are no partial results.
func (self *Font) RenderTextHeight(text string, height int) (*bitmap.Bitmap, error) {
	if height < 0 { return nil, ErrInvalidDimension }
	return self.renderText(text, height)
}

// targetHeight < 0 means natural height.
func (self *Font) renderText(text string, targetHeight int) (*bitmap.Bitmap, error) {
	glyphs := make([]*glyph.Glyph, 0, utf8.RuneCountInString(text))
	for _, char := range text {
		currGlyph, err := self.GlyphForRune(char)
		if err != nil { return nil, err }
		glyphs = append(glyphs, currGlyph)
	}

	width, height, baseline, err := self.Dimensions(text, glyphs)
	if err != nil { return nil, err }
	if targetHeight >= 0 { height = targetHeight }

	canvas, err := bitmap.New(width, height)
	if err != nil { return nil, err }

	x := 0
	prev := glyph.NoChar
	index := 0
	for _, char := range text {
		currGlyph := glyphs[index]
		index += 1

		kern, err := self.KerningOffset(prev, char)
		if err != nil { return nil, err }
		x += kern

		// vertical placement aligns every glyph to the shared baseline
		y := height - currGlyph.Ascent - baseline
		err = canvas.Blit(currGlyph.Bitmap, x, y)
		if err != nil {
			return nil, fmt.Errorf("placing %q at (%d, %d): %w", char, x, y, err)
		}
		x += currGlyph.AdvanceWidth
		prev = char
	}
	return canvas, nil
}

func maxInt(a, b int) int {
	if a >= b { return a }
	return b
}
