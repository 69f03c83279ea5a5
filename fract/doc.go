// Font rasterizers report horizontal metrics like glyph advances and
// kerning offsets in a 26.6 fixed point format, where pixel values
// are multiples of 64. The fract subpackage defines the [Unit] type
// representing one of those values, along with the conversion methods
// needed to bring them down to the whole pixels that monochrome
// rendering operates on.
//
// Other font related Golang packages tend to depend on
// [golang.org/x/image/math/fixed] instead; Unit shares its internal
// representation, so converting between the two is a direct cast.
package fract
