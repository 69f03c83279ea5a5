// The cache subpackage provides the per font memoization of glyph
// bitmaps and kerning offsets. Rasterizing a glyph outline is far
// more expensive than a map lookup, and dataset generation renders
// the same small alphabet over and over, so fonts keep every glyph
// they ever rasterize.
package cache
