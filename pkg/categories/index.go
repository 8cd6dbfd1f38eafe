// Package categories indexes category definition files and answers
// "which systems are in this category" queries against them.
//
// A category file is a line-oriented INI-style file:
//
//	[FOLDER_SETTINGS]
//	RootFolderIcon mame
//
//	[Maze]
//	pacman
//	mspacman
//
// Build scans a directory once and records, for every category header, the
// byte offset just past the header line. Query reopens the file, seeks to
// that offset and reads system names until the next header. The index is
// never refreshed; a file edited after Build is detected at query time and
// the query returns nothing.
//
// Index is not safe for concurrent use.
package categories

import (
	"github.com/spf13/afero"
	"golang.org/x/text/language"

	"github.com/agentstation/marquee/pkg/constants"
	"github.com/agentstation/marquee/pkg/drivers"
)

// Category is a named section of a category file.
type Category struct {
	Name   string `json:"name" yaml:"name"`
	Offset int64  `json:"offset" yaml:"offset"` // Byte position just past the header line
}

// File is the index of one category file.
type File struct {
	Name       string     `json:"file" yaml:"file"`
	Categories []Category `json:"categories" yaml:"categories"`
}

// Find returns the position of the named category within the file.
func (f File) Find(category string) (int, bool) {
	for i, c := range f.Categories {
		if c.Name == category {
			return i, true
		}
	}
	return -1, false
}

// Index is the global category index: one File per category file that
// yielded at least one category, ordered by collation of file name.
type Index struct {
	fs        afero.Fs
	registry  drivers.Registry
	collator  *Collator
	extension string
	files     []File
}

// Option configures Build.
type Option func(*Index)

// WithLocale sets the collation locale used to order files and categories.
func WithLocale(tag language.Tag) Option {
	return func(x *Index) {
		x.collator = NewCollator(tag)
	}
}

// WithExtension sets the category file extension (default ".ini").
func WithExtension(ext string) Option {
	return func(x *Index) {
		if ext != "" {
			x.extension = ext
		}
	}
}

func indexDefaults() *Index {
	return &Index{
		collator:  NewCollator(language.Make(constants.DefaultLocale)),
		extension: constants.CategoryExtension,
	}
}

// Len returns the number of indexed files.
func (x *Index) Len() int {
	return len(x.files)
}

// Files returns the indexed files in collation order.
func (x *Index) Files() []File {
	return x.files
}

// File returns the i'th indexed file.
func (x *Index) File(i int) (File, bool) {
	if i < 0 || i >= len(x.files) {
		return File{}, false
	}
	return x.files[i], true
}

// FindFile returns the position of the named file.
func (x *Index) FindFile(name string) (int, bool) {
	for i, f := range x.files {
		if f.Name == name {
			return i, true
		}
	}
	return -1, false
}

// Lookup resolves a file and category by name.
func (x *Index) Lookup(file, category string) (File, Category, bool) {
	fi, ok := x.FindFile(file)
	if !ok {
		return File{}, Category{}, false
	}
	f := x.files[fi]
	ci, ok := f.Find(category)
	if !ok {
		return File{}, Category{}, false
	}
	return f, f.Categories[ci], true
}
