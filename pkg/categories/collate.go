package categories

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collator orders names by locale collation rather than byte order.
// A Collator is not safe for concurrent use.
type Collator struct {
	c *collate.Collator
}

// NewCollator returns a collator for the given locale.
func NewCollator(tag language.Tag) *Collator {
	return &Collator{c: collate.New(tag)}
}

// Compare returns -1, 0 or 1 as a sorts before, with or after b.
func (c *Collator) Compare(a, b string) int {
	return c.c.CompareString(a, b)
}

// sortCategories stable-sorts categories by name so equal names keep
// their discovery order.
func (c *Collator) sortCategories(list []Category) {
	slices.SortStableFunc(list, func(a, b Category) int {
		return c.Compare(a.Name, b.Name)
	})
}

// sortFiles stable-sorts files by name.
func (c *Collator) sortFiles(list []File) {
	slices.SortStableFunc(list, func(a, b File) int {
		return c.Compare(a.Name, b.Name)
	})
}
