package fract

// Fixed point type used to represent the fractional pixel values that
// font rasterizers report for advances and kerning.
//
// 26 bits represent the integer part of the value, while the remaining
// 6 bits represent the decimal part. For an intuitive understanding, in
// the same way that var ms Millis = 1000 would be storing the equivalent
// to 1 second, with Unit you are storing 64ths. So, var pixels Unit = 64
// would mean 1 pixel, and 96 would be 1.5 pixels.
//
// The internal representation is compatible with [fixed.Int26_6].
//
// [fixed.Int26_6]: golang.org/x/image/math/fixed.Int26_6
type Unit int32

// Converts the given int to its Unit representation.
// Values outside the [MinInt, MaxInt] range will overflow.
func FromInt(value int) Unit {
	return Unit(value << 6)
}

// Returns whether the Unit is a whole number or if it
// has a fractional part.
func (self Unit) IsWhole() bool {
	return self & 0x3F == 0
}

// Returns only the fractional part of the Unit.
func (self Unit) Fract() Unit {
	return self % 64
}

// Multiplies two Units, rounding the result half up.
func (self Unit) Mul(multiplier Unit) Unit {
	mx64 := int64(self)*int64(multiplier)
	return Unit((mx64 + 32) >> 6)
}

// Converts the Unit to a float64.
func (self Unit) ToFloat64() float64 {
	return float64(self)/64.0
}

// Converts the Unit to an int, discarding the fractional part.
//
// This is a floor conversion, also for negative values. Glyph
// advances and kerning offsets given in 64ths of a pixel are
// brought down to whole pixels with it; the fractional pixel
// data is discarded, not rounded.
func (self Unit) ToIntFloor() int {
	return int(self) >> 6
}

// Converts the Unit to an int, rounding up.
func (self Unit) ToIntCeil() int {
	return (int(self) + 63) >> 6
}

// Converts the Unit to an int, rounding half up.
func (self Unit) ToIntHalfUp() int {
	return (int(self) + 32) >> 6
}

// Returns the Unit with its fractional part discarded.
func (self Unit) Floor() Unit {
	return self & ^0x3F
}

// Returns the Unit rounded up to a whole value.
func (self Unit) Ceil() Unit {
	return (self + 0x3F).Floor()
}
