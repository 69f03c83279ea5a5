package opentype

import "errors"
import "testing"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/font/gofont/goregular"

import "github.com/google/go-cmp/cmp"

func parseTestFont(t *testing.T) *sfnt.Font {
	t.Helper()
	sfntFont, err := sfnt.Parse(goregular.TTF)
	if err != nil { t.Fatalf("can't parse test font: %s", err) }
	return sfntFont
}

func TestRasterizeMetrics(t *testing.T) {
	source := NewSource(parseTestFont(t), 16)
	raster, err := source.Rasterize('A')
	if err != nil { t.Fatalf("unexpected error: %s", err) }

	if raster.Width <= 0 || raster.Height <= 0 {
		t.Fatalf("expected a non-empty bitmap, got %dx%d", raster.Width, raster.Height)
	}
	if raster.TopBearing <= 0 {
		t.Fatalf("'A' sits above the baseline, got top bearing %d", raster.TopBearing)
	}
	if raster.Advance <= 0 {
		t.Fatalf("expected a positive advance, got %d", raster.Advance)
	}
	if raster.Pitch*8 < raster.Width {
		t.Fatalf("pitch %d too small for width %d", raster.Pitch, raster.Width)
	}
	if len(raster.Bits) != raster.Pitch*raster.Height {
		t.Fatalf("expected %d packed bytes, got %d", raster.Pitch*raster.Height, len(raster.Bits))
	}

	// a 16px uppercase glyph must have set at least a few pixels
	onBits := 0
	for _, packedByte := range raster.Bits {
		for bit := 0; bit < 8; bit++ {
			if packedByte & (0x80 >> bit) != 0 { onBits += 1 }
		}
	}
	if onBits < 8 { t.Fatalf("suspiciously few on pixels: %d", onBits) }
}

func TestRasterizeDeterminism(t *testing.T) {
	source := NewSource(parseTestFont(t), 16)
	first, err := source.Rasterize('g')
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	second, err := source.Rasterize('g')
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("rasterization isn't deterministic (-first +second):\n%s", diff)
	}
}

func TestRasterizeDescender(t *testing.T) {
	source := NewSource(parseTestFont(t), 16)
	raster, err := source.Rasterize('g')
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if raster.Height <= raster.TopBearing {
		t.Fatalf("'g' must extend below the baseline (height %d, top bearing %d)",
			raster.Height, raster.TopBearing)
	}
}

func TestRasterizeSpace(t *testing.T) {
	source := NewSource(parseTestFont(t), 16)
	raster, err := source.Rasterize(' ')
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if raster.Width != 0 || raster.Height != 0 {
		t.Fatalf("expected an empty bitmap for the space, got %dx%d", raster.Width, raster.Height)
	}
	if raster.Advance <= 0 {
		t.Fatalf("expected a positive advance for the space, got %d", raster.Advance)
	}
}

func TestRasterizeMissingGlyph(t *testing.T) {
	source := NewSource(parseTestFont(t), 16)
	_, err := source.Rasterize('\uE317') // private use area
	if !errors.Is(err, ErrMissingGlyph) {
		t.Fatalf("expected ErrMissingGlyph, got %v", err)
	}
}

func TestKernDeterminism(t *testing.T) {
	source := NewSource(parseTestFont(t), 16)
	first, err := source.Kern('A', 'V')
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	second, err := source.Kern('A', 'V')
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if first != second {
		t.Fatalf("kerning isn't deterministic: %d vs %d", first, second)
	}
}
