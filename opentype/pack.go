package opentype

import "image"

// Coverage values at or above this are considered "on" when reducing
// an 8-bit mask to 1-bit. Half coverage matches what monochrome
// outline rasterizers do.
const monoThreshold = 128

// Row length in bytes for a packed monochrome bitmap of the given
// pixel width. Rows are padded up to 4-byte boundaries, which is the
// usual alignment of monochrome rasterizer output; consumers unpack
// through the pitch, so the padding is harmless.
func monoPitch(width int) int {
	return ((width + 7)/8 + 3) &^ 3
}

// Packs an 8-bit coverage mask into the 1-bit-per-pixel row-major
// format described by bitmap.UnpackMono: rows of pitch bytes, most
// significant bit of each byte left-most, 1 for covered pixels.
func packMono(mask *image.Alpha, pitch int) []byte {
	width := mask.Rect.Dx()
	height := mask.Rect.Dy()
	bits := make([]byte, pitch*height)
	for y := 0; y < height; y++ {
		maskRow := y*mask.Stride
		bitsRow := y*pitch
		for x := 0; x < width; x++ {
			if mask.Pix[maskRow + x] >= monoThreshold {
				bits[bitsRow + x/8] |= 0x80 >> (x % 8)
			}
		}
	}
	return bits
}
