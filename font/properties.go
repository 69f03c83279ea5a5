package font

import "errors"

import "golang.org/x/image/font/sfnt"

// Returned by [Name] and [Property] when the requested naming table
// entry is missing from the font.
var ErrNotFound = errors.New("font property not found or empty")

// Returns the requested naming table property for the given font.
// If the property is missing, [ErrNotFound] will be returned.
func Property(sfntFont *sfnt.Font, property sfnt.NameID) (string, error) {
	var buffer sfnt.Buffer
	value, err := sfntFont.Name(&buffer, property)
	if err == sfnt.ErrNotFound { return "", ErrNotFound }
	return value, err
}

// Returns the name of the given font: the full name if the font
// declares one, the family name otherwise.
func Name(sfntFont *sfnt.Font) (string, error) {
	name, err := Property(sfntFont, sfnt.NameIDFull)
	if err == ErrNotFound {
		return Property(sfntFont, sfnt.NameIDFamily)
	}
	return name, err
}

// Returns the family name of the given font, e.g. "Go Regular"
// reports "Go". If the information is missing, [ErrNotFound] will
// be returned.
func Family(sfntFont *sfnt.Font) (string, error) {
	return Property(sfntFont, sfnt.NameIDFamily)
}
