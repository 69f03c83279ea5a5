package bitmap

import "errors"
import "strings"

// Returned by [New] and [FromPix] when a negative width or
// height is requested.
var ErrInvalidDimension = errors.New("bitmap dimensions can't be negative")

// Returned by [Bitmap.Blit] when any destination pixel would fall
// outside the receiver bitmap. Blits are never clipped: staying in
// bounds is the caller's responsibility, and silently dropping
// pixels would corrupt the fixed dimensions that downstream
// consumers rely on.
var ErrOutOfBounds = errors.New("operation falls outside bitmap bounds")

// A monochrome pixel buffer. Each pixel is either on (true) or
// off (false); there's no anti-aliasing or gray levels anywhere.
//
// Bitmaps are mutable through [Bitmap.Blit] and [Bitmap.Set], but
// they are meant to be owned by a single operation at a time; the
// type provides no synchronization of its own.
type Bitmap struct {
	width int
	height int
	pixels []bool
}

// Creates a zero-filled bitmap of the given dimensions. Zero is a
// valid dimension (rendering an empty string produces a zero-width
// bitmap); negative values return [ErrInvalidDimension].
func New(width, height int) (*Bitmap, error) {
	if width < 0 || height < 0 { return nil, ErrInvalidDimension }
	return &Bitmap{
		width: width,
		height: height,
		pixels: make([]bool, width*height),
	}, nil
}

// Creates a bitmap that takes ownership of the given row-major pixel
// buffer, which must have exactly width*height elements.
func FromPix(pixels []bool, width, height int) (*Bitmap, error) {
	if width < 0 || height < 0 { return nil, ErrInvalidDimension }
	if len(pixels) != width*height {
		return nil, errors.New("pixel buffer length doesn't match bitmap dimensions")
	}
	return &Bitmap{ width: width, height: height, pixels: pixels }, nil
}

// Returns the bitmap width, in pixels.
func (self *Bitmap) Width() int { return self.width }

// Returns the bitmap height, in pixels.
func (self *Bitmap) Height() int { return self.height }

// Returns the underlying row-major pixel buffer. The slice is not a
// copy; writing to it writes to the bitmap.
func (self *Bitmap) Pix() []bool { return self.pixels }

// Returns the pixel at the given coordinates. Out of range
// coordinates panic.
func (self *Bitmap) Get(x, y int) bool {
	if x < 0 || x >= self.width { panic("x outside bitmap bounds") }
	if y < 0 || y >= self.height { panic("y outside bitmap bounds") }
	return self.pixels[y*self.width + x]
}

// Turns on the pixel at the given coordinates. Out of range
// coordinates panic.
func (self *Bitmap) Set(x, y int) {
	if x < 0 || x >= self.width { panic("x outside bitmap bounds") }
	if y < 0 || y >= self.height { panic("y outside bitmap bounds") }
	self.pixels[y*self.width + x] = true
}

// Composites src onto the receiver with the top-left corner of src at
// (x, y). Pixels are combined with a logical OR, never overwritten:
// kerning can make adjacent glyph bounding boxes overlap (as in "AV"),
// and both glyphs' on pixels must survive in the overlap region. As a
// consequence, blitting is idempotent.
//
// The entire src must fit within the receiver, or [ErrOutOfBounds] is
// returned without touching any pixel. src itself is never modified.
func (self *Bitmap) Blit(src *Bitmap, x, y int) error {
	if x < 0 || y < 0 || x + src.width > self.width || y + src.height > self.height {
		return ErrOutOfBounds
	}

	srcPixel := 0
	dstPixel := y*self.width + x
	rowOffset := self.width - src.width
	for sy := 0; sy < src.height; sy++ {
		for sx := 0; sx < src.width; sx++ {
			if src.pixels[srcPixel + sx] {
				self.pixels[dstPixel + sx] = true
			}
		}
		srcPixel += src.width
		dstPixel += rowOffset + src.width
	}
	return nil
}

// Returns the number of pixels that are on.
func (self *Bitmap) OnCount() int {
	count := 0
	for _, on := range self.pixels {
		if on { count += 1 }
	}
	return count
}

// Returns an ascii art representation of the bitmap, with one line
// per row, '#' for on pixels and '.' for off pixels. Mostly useful
// for debugging and previewing renders on a terminal.
func (self *Bitmap) String() string {
	var strBuilder strings.Builder
	strBuilder.Grow((self.width + 1)*self.height)
	index := 0
	for y := 0; y < self.height; y++ {
		for x := 0; x < self.width; x++ {
			if self.pixels[index] {
				strBuilder.WriteByte('#')
			} else {
				strBuilder.WriteByte('.')
			}
			index += 1
		}
		strBuilder.WriteByte('\n')
	}
	return strBuilder.String()
}
