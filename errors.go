package monotext

import "errors"

import "github.com/velbri/monotext/bitmap"

// Returned (wrapped) by [Font.Dimensions] when the glyph sequence
// doesn't have one glyph per character of the text. This is an
// internal consistency precondition that can't trip when glyphs are
// obtained through [Font.GlyphForRune]; it is surfaced instead of
// silently truncating so integration bugs are caught early.
var ErrLengthMismatch = errors.New("glyph sequence length doesn't match text length")

// Returned (wrapped) when the outline rasterization collaborator
// can't produce a bitmap for a character, most commonly because the
// glyph is missing from the font face. No fallback glyph is ever
// substituted; a substitute would silently corrupt the fixed height
// bitmaps downstream consumers train on.
var ErrRasterization = errors.New("can't rasterize character")

// Aliases of the bitmap subpackage errors, re-exported so callers
// can match render failures without importing bitmap themselves.
var ErrInvalidDimension = bitmap.ErrInvalidDimension
var ErrOutOfBounds = bitmap.ErrOutOfBounds
