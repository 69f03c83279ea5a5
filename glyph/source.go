package glyph

import "github.com/velbri/monotext/fract"

// Passed as the previous rune where there is none, which is to say,
// for the first character of a text. Kerning against NoChar is
// always zero.
const NoChar rune = -1

// The raw product of rasterizing a single character, as handed over
// by a [Source]. The pixel data comes in the packed monochrome format
// described by [bitmap.UnpackMono]: 1 bit per pixel, row-major, rows
// of Pitch bytes, most significant bit first.
//
// Glyphs with no visible pixels (e.g. a space) are expressed as a
// zero-size raster with a non-zero advance.
type Raster struct {
	Bits []byte
	Width int
	Height int
	Pitch int
	TopBearing int
	Advance fract.Unit // 26.6 fixed point, 64ths of a pixel
}

// Source is the boundary with the outline rasterization collaborator:
// anything that can turn a character into a packed monochrome bitmap
// plus metrics, and answer kerning queries for ordered character
// pairs, at a fixed font face and pixel size.
//
// Both methods must be deterministic for the lifetime of the source
// instance: two calls with identical inputs must produce identical
// outputs, or caching the results upstream would change renders.
//
// Sources are not required to support concurrent calls; callers
// serialize access.
type Source interface {
	// Rasterizes the given character in monochrome mode. Characters
	// missing from the font face must produce an error, never a
	// substitute glyph.
	Rasterize(char rune) (Raster, error)

	// Returns the kerning offset between the given ordered pair of
	// characters, in 26.6 fixed point. Implementations never see
	// NoChar; that case is resolved by the caller.
	Kern(prev, char rune) (fract.Unit, error)
}
