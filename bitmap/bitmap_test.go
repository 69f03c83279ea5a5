package bitmap

import "errors"
import "testing"

import "github.com/google/go-cmp/cmp"

func mustNew(t *testing.T, width, height int) *Bitmap {
	t.Helper()
	bmp, err := New(width, height)
	if err != nil { t.Fatalf("New(%d, %d): %s", width, height, err) }
	return bmp
}

func fromArt(t *testing.T, rows ...string) *Bitmap {
	t.Helper()
	if len(rows) == 0 { return mustNew(t, 0, 0) }
	bmp := mustNew(t, len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != bmp.Width() { t.Fatal("broken test: ragged art rows") }
		for x := 0; x < len(row); x++ {
			if row[x] == '#' { bmp.Set(x, y) }
		}
	}
	return bmp
}

func TestNew(t *testing.T) {
	tests := []struct {
		width  int
		height int
		err    error
	}{
		{0, 0, nil}, {0, 12, nil}, {3, 0, nil}, {5, 7, nil},
		{-1, 4, ErrInvalidDimension}, {4, -1, ErrInvalidDimension},
		{-3, -3, ErrInvalidDimension},
	}

	for i, test := range tests {
		bmp, err := New(test.width, test.height)
		if !errors.Is(err, test.err) {
			t.Fatalf("test #%d: expected error %v, got %v", i, test.err, err)
		}
		if err != nil { continue }
		if bmp.Width() != test.width || bmp.Height() != test.height {
			t.Fatalf("test #%d: wrong dimensions %dx%d", i, bmp.Width(), bmp.Height())
		}
		if len(bmp.Pix()) != test.width*test.height {
			t.Fatalf("test #%d: wrong buffer length %d", i, len(bmp.Pix()))
		}
		if bmp.OnCount() != 0 {
			t.Fatalf("test #%d: fresh bitmap has %d pixels on", i, bmp.OnCount())
		}
	}
}

func TestFromPix(t *testing.T) {
	_, err := FromPix(make([]bool, 6), 2, 3)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	_, err = FromPix(make([]bool, 5), 2, 3)
	if err == nil { t.Fatal("expected length mismatch error") }
	_, err = FromPix(nil, -1, 0)
	if !errors.Is(err, ErrInvalidDimension) { t.Fatalf("expected ErrInvalidDimension, got %v", err) }
}

func TestBlitOr(t *testing.T) {
	dst := fromArt(t,
		"#....",
		".....",
		"....#",
	)
	src := fromArt(t,
		"##",
		".#",
	)

	err := dst.Blit(src, 1, 1)
	if err != nil { t.Fatalf("unexpected error: %s", err) }

	expected := fromArt(t,
		"#....",
		".##..",
		"..#.#",
	)
	if diff := cmp.Diff(expected.String(), dst.String()); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestBlitPreservesOverlap(t *testing.T) {
	dst := mustNew(t, 4, 2)
	left := fromArt(t, "###", "#..")
	right := fromArt(t, ".##", "..#")

	if err := dst.Blit(left, 0, 0); err != nil { t.Fatalf("unexpected error: %s", err) }
	if err := dst.Blit(right, 1, 0); err != nil { t.Fatalf("unexpected error: %s", err) }

	// the OR semantics must preserve the left glyph's pixels
	// in the overlapping columns
	expected := fromArt(t,
		"####",
		"#..#",
	)
	if diff := cmp.Diff(expected.String(), dst.String()); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestBlitIdempotence(t *testing.T) {
	src := fromArt(t, "#.#", ".#.")

	once := mustNew(t, 5, 4)
	if err := once.Blit(src, 1, 1); err != nil { t.Fatalf("unexpected error: %s", err) }
	twice := mustNew(t, 5, 4)
	if err := twice.Blit(src, 1, 1); err != nil { t.Fatalf("unexpected error: %s", err) }
	if err := twice.Blit(src, 1, 1); err != nil { t.Fatalf("unexpected error: %s", err) }

	if diff := cmp.Diff(once.String(), twice.String()); diff != "" {
		t.Fatalf("double blit changed the result (-once +twice):\n%s", diff)
	}
}

func TestBlitOutOfBounds(t *testing.T) {
	tests := []struct {
		x, y int
		ok   bool
	}{
		{0, 0, true}, {3, 2, true}, {4, 2, false}, {3, 3, false},
		{-1, 0, false}, {0, -1, false}, {9, 9, false},
	}

	src := mustNew(t, 2, 2)
	src.Set(0, 0)
	for i, test := range tests {
		dst := mustNew(t, 5, 4)
		err := dst.Blit(src, test.x, test.y)
		if test.ok && err != nil {
			t.Fatalf("test #%d: unexpected error %s", i, err)
		}
		if !test.ok {
			if !errors.Is(err, ErrOutOfBounds) {
				t.Fatalf("test #%d: expected ErrOutOfBounds, got %v", i, err)
			}
			if dst.OnCount() != 0 {
				t.Fatalf("test #%d: failed blit modified the destination", i)
			}
		}
	}
}

func TestBlitZeroSize(t *testing.T) {
	dst := mustNew(t, 3, 2)
	src := mustNew(t, 0, 0)
	if err := dst.Blit(src, 3, 2); err != nil {
		t.Fatalf("empty blit at the far corner must succeed, got %s", err)
	}
	if err := dst.Blit(src, 4, 0); err == nil {
		t.Fatal("expected ErrOutOfBounds")
	}
}

func TestGetSetBounds(t *testing.T) {
	tests := []struct {
		x, y int
		ok   bool
	}{
		{0, 0, true}, {2, 1, true}, {3, 1, false}, {0, 2, false},
		{-1, 0, false}, {0, -1, false},
	}

	for i, test := range tests {
		bmp := mustNew(t, 3, 2)
		panicked := func() (panicked bool) {
			defer func() { panicked = recover() != nil }()
			bmp.Set(test.x, test.y)
			_ = bmp.Get(test.x, test.y)
			return
		}()
		if panicked == test.ok {
			t.Fatalf("test #%d: (%d, %d) panicked == %t", i, test.x, test.y, panicked)
		}
		if test.ok && !bmp.Get(test.x, test.y) {
			t.Fatalf("test #%d: pixel not set", i)
		}
	}
}

func TestString(t *testing.T) {
	bmp := mustNew(t, 3, 2)
	bmp.Set(0, 0)
	bmp.Set(2, 1)
	expected := "#..\n..#\n"
	if diff := cmp.Diff(expected, bmp.String()); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}

	if mustNew(t, 0, 0).String() != "" {
		t.Fatal("empty bitmap must stringify to an empty string")
	}
}
