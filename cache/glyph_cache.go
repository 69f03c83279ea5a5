package cache

import "sync"

import "github.com/velbri/monotext/glyph"

// GlyphCache memoizes the glyph bitmaps and the kerning offsets of a
// single font instance so repeated renders don't keep going back to
// the outline rasterizer. It is concurrent-safe (though not optimized
// for heavily concurrent scenarios).
//
// The cache is unbounded and has no eviction: the character alphabet
// a font instance is asked about is small (a few hundred distinct
// glyphs at most), so entries simply live as long as the instance.
// A font re-created with a different size starts from a fresh cache.
type GlyphCache struct {
	glyphs map[rune]*glyph.Glyph
	kerns map[[2]rune]int
	mutex sync.RWMutex
}

// Creates a new, empty glyph cache.
func New() *GlyphCache {
	return &GlyphCache{
		glyphs: make(map[rune]*glyph.Glyph, 64),
		kerns: make(map[[2]rune]int, 64),
	}
}

// Gets the glyph cached for the given character, if any.
func (self *GlyphCache) GetGlyph(char rune) (*glyph.Glyph, bool) {
	self.mutex.RLock()
	cachedGlyph, found := self.glyphs[char]
	self.mutex.RUnlock()
	return cachedGlyph, found
}

// Stores the given glyph for the given character and returns the
// stored value. If an entry already exists, the existing glyph is
// kept and returned instead: rasterization is deterministic, so a
// second glyph for the same character is superfluous, and keeping
// the first one means every caller shares a single value.
func (self *GlyphCache) PassGlyph(char rune, newGlyph *glyph.Glyph) *glyph.Glyph {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	if cachedGlyph, found := self.glyphs[char]; found { return cachedGlyph }
	self.glyphs[char] = newGlyph
	return newGlyph
}

// Gets the kerning offset cached for the given ordered character
// pair, if any.
func (self *GlyphCache) GetKern(prev, char rune) (int, bool) {
	self.mutex.RLock()
	offset, found := self.kerns[[2]rune{prev, char}]
	self.mutex.RUnlock()
	return offset, found
}

// Stores the kerning offset for the given ordered character pair and
// returns the stored value, keeping any pre-existing entry like
// [GlyphCache.PassGlyph] does.
func (self *GlyphCache) PassKern(prev, char rune, offset int) int {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	key := [2]rune{prev, char}
	if cachedOffset, found := self.kerns[key]; found { return cachedOffset }
	self.kerns[key] = offset
	return offset
}

// Returns the number of cached glyphs. Mostly useful for tests
// and memory usage estimations.
func (self *GlyphCache) NumGlyphs() int {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	return len(self.glyphs)
}

// Returns the number of cached kerning pairs.
func (self *GlyphCache) NumKernPairs() int {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	return len(self.kerns)
}
