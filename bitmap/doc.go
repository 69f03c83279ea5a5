// The bitmap subpackage provides the monochrome pixel buffer that
// glyphs are unpacked into and text is composited onto, along with
// the bit-unpacking routine for the packed 1bpp format that outline
// rasterizers produce in monochrome mode.
package bitmap
