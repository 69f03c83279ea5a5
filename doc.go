// monotext renders text strings into monochrome pixel bitmaps using
// a font's glyph outlines. It exists for consumers that need text as
// fixed height 1-bit images rather than as characters, like visual
// text dataset builders, and so it deliberately avoids everything a
// screen oriented text renderer would have: there's no anti-aliasing,
// no color, no sub-pixel positioning and no complex script shaping.
// Pixels are on or off, and advances are whole pixels.
//
// The pipeline is small: a [glyph.Source] turns characters into
// packed monochrome bitmaps plus metrics (the opentype subpackage
// provides the production source on top of golang.org/x/image's sfnt
// and vector packages), a [Font] caches those glyphs and lays them
// out with kerning against a shared baseline, and renders compose
// the glyph bitmaps into a single [bitmap.Bitmap] with OR blits.
//
// Basic usage:
//
//	sfntFont, _, err := font.ParseFromPath("some/face.ttf")
//	if err != nil { /* ... */ }
//	textFont := monotext.NewFont(opentype.NewSource(sfntFont, 12))
//	canvas, err := textFont.RenderTextHeight("hello", 12)
//	if err != nil { /* ... */ }
//	fmt.Print(canvas.String())
package monotext
