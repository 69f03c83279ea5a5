// The opentype subpackage provides the production [glyph.Source]:
// it loads glyph outlines from .ttf/.otf fonts through
// [golang.org/x/image/font/sfnt], rasterizes them with
// [golang.org/x/image/vector] and reduces the result to the packed
// monochrome format the engine consumes.
package opentype
