package favorites

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

type cacheState int

const (
	// cacheInvalid means the next read rebuilds from the set.
	cacheInvalid cacheState = iota
	// cacheClean means entries are sorted and complete.
	cacheClean
	// cacheAppended means entries are complete but new ones sit unsorted at the end.
	cacheAppended
)

func (s cacheState) String() string {
	switch s {
	case cacheClean:
		return "clean"
	case cacheAppended:
		return "appended"
	default:
		return "invalid"
	}
}

// displayCache is the set sorted for presentation: by long name, then
// driver display name, ignoring case, then list name.
type displayCache struct {
	state   cacheState
	entries []*Entry
	fold    cases.Caser
}

func newDisplayCache() displayCache {
	return displayCache{fold: cases.Fold()}
}

// added records an entry inserted into the set. Appending only pays off
// when the cache already holds everything else.
func (c *displayCache) added(e *Entry) {
	if c.state == cacheInvalid {
		return
	}
	c.entries = append(c.entries, e)
	c.state = cacheAppended
}

// removed discards the cache.
func (c *displayCache) removed() {
	c.entries = nil
	c.state = cacheInvalid
}

// view returns the sorted entries, rebuilding or re-sorting as needed.
func (c *displayCache) view(set *Set) []*Entry {
	if c.state != cacheInvalid && len(c.entries) != set.Len() {
		c.removed()
	}
	switch c.state {
	case cacheInvalid:
		c.entries = set.Entries()
		c.sort()
	case cacheAppended:
		c.sort()
	}
	c.state = cacheClean
	return c.entries
}

func (c *displayCache) sort() {
	slices.SortStableFunc(c.entries, c.compare)
}

func (c *displayCache) compare(a, b *Entry) int {
	if r := strings.Compare(c.fold.String(a.LongName), c.fold.String(b.LongName)); r != 0 {
		return r
	}
	if r := strings.Compare(c.fold.String(a.DriverDisplayName()), c.fold.String(b.DriverDisplayName())); r != 0 {
		return r
	}
	return strings.Compare(a.ListName, b.ListName)
}
