package font

import "errors"
import "io/fs"

import "golang.org/x/image/font/sfnt"

// An error that can be returned by [Library.AddFont] and the Library
// parsing methods when a font is not added due to its name already
// being present in the [Library].
var ErrAlreadyPresent = errors.New("font already present in the library")

// A collection of fonts accessible by name.
//
// The goal of a library is to make it easy to parse fonts in bulk
// and keep them all in a single place. Dataset generation jobs that
// render the same corpus with multiple faces load them all up front
// through a Library and pick faces by name afterwards.
type Library struct {
	fonts map[string]*sfnt.Font
}

// Creates a new, empty font [Library].
func NewLibrary() *Library {
	return &Library{
		fonts: make(map[string]*sfnt.Font),
	}
}

// Returns the current number of fonts in the library.
func (self *Library) Size() int { return len(self.fonts) }

// Finds out whether a font with the given name exists in the library.
func (self *Library) HasFont(name string) bool {
	_, found := self.fonts[name]
	return found
}

// Returns the font with the given name, or nil if not found.
func (self *Library) GetFont(name string) *sfnt.Font {
	font, found := self.fonts[name]
	if found { return font }
	return nil
}

// Adds the given font into the library and returns its name and any
// possible error. Nil fonts will panic.
func (self *Library) AddFont(font *sfnt.Font) (string, error) {
	name, err := Name(font)
	if err != nil { return "", err }
	return name, self.addNewFont(font, name)
}

// Removes the font with the given name from the library. Returns
// false if the font couldn't be removed due to not being found.
func (self *Library) RemoveFont(name string) bool {
	_, found := self.fonts[name]
	if !found { return false }
	delete(self.fonts, name)
	return true
}

// Returns the name of the added font and any possible error.
// If error == nil, the font name will be non-empty.
func (self *Library) ParseFromPath(path string) (string, error) {
	font, name, err := ParseFromPath(path)
	if err != nil { return name, err }
	return name, self.addNewFont(font, name)
}

// The equivalent of [Library.ParseFromPath] for raw font bytes.
// The bytes must not be modified while the font is in use.
func (self *Library) ParseFromBytes(fontBytes []byte) (string, error) {
	font, name, err := ParseFromBytes(fontBytes)
	if err != nil { return name, err }
	return name, self.addNewFont(font, name)
}

// Walks the given filesystem parsing any .ttf or .otf files found
// and adding them to the library. Returns the number of fonts added
// and the first error encountered, if any.
func (self *Library) ParseAllFromFS(filesys fs.FS, root string) (int, error) {
	added := 0
	err := fs.WalkDir(filesys, root,
		func(path string, entry fs.DirEntry, err error) error {
			if err != nil { return err }
			if entry.IsDir() { return nil }
			if !hasValidFontExtension(path) { return nil }
			font, name, err := ParseFromFS(filesys, path)
			if err != nil { return err }
			err = self.addNewFont(font, name)
			if err != nil { return err }
			added += 1
			return nil
		})
	return added, err
}

// Calls the given function for each font in the library, in no
// particular order. If the function returns a non-nil error, the
// iteration stops and the error is returned.
func (self *Library) EachFont(fontFunc func(string, *sfnt.Font) error) error {
	for name, font := range self.fonts {
		err := fontFunc(name, font)
		if err != nil { return err }
	}
	return nil
}

func (self *Library) addNewFont(font *sfnt.Font, name string) error {
	if self.HasFont(name) { return ErrAlreadyPresent }
	self.fonts[name] = font
	return nil
}
