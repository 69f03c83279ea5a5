package bitmap

import "errors"

// Unpacks a packed 1-bit-per-pixel monochrome bitmap, as produced by
// outline rasterizers in their monochrome render modes, into a flat
// boolean buffer of exactly width*height elements.
//
// The packed format is row-major: each row occupies pitch bytes, and
// within each byte the most significant bit is the left-most pixel.
// The pitch may exceed ceil(width/8) due to alignment padding; any
// padding bits are ignored, as unpacking stops after width pixels
// per row.
func UnpackMono(bits []byte, width, height, pitch int) ([]bool, error) {
	if width < 0 || height < 0 || pitch < 0 { return nil, ErrInvalidDimension }
	if pitch*8 < width {
		return nil, errors.New("packed bitmap pitch too small for its width")
	}
	if len(bits) < pitch*height {
		return nil, errors.New("packed bitmap data shorter than pitch*height")
	}

	pixels := make([]bool, width*height)
	for y := 0; y < height; y++ {
		row := y*pitch
		rowStart := y*width
		for byteIndex := 0; byteIndex*8 < width; byteIndex++ {
			byteValue := bits[row + byteIndex]

			// the last byte of a row may only contribute a
			// fraction of its bits
			bitCount := width - byteIndex*8
			if bitCount > 8 { bitCount = 8 }

			pixelIndex := rowStart + byteIndex*8
			for bitIndex := 0; bitIndex < bitCount; bitIndex++ {
				if byteValue & (0x80 >> bitIndex) != 0 {
					pixels[pixelIndex + bitIndex] = true
				}
			}
		}
	}
	return pixels, nil
}
