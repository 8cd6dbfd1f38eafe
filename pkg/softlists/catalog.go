package softlists

import (
	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"

	"github.com/agentstation/marquee/pkg/errors"
)

// Catalog is an in-memory software-list registry.
type Catalog struct {
	lists map[string]*List
}

var _ Registry = (*Catalog)(nil)

// NewCatalog creates a catalog holding the given lists.
func NewCatalog(lists ...List) *Catalog {
	c := &Catalog{lists: make(map[string]*List, len(lists))}
	for _, l := range lists {
		list := l
		c.lists[l.Name] = &list
	}
	return c
}

// Entries implements Registry.
func (c *Catalog) Entries(list string) ([]Software, bool) {
	l, ok := c.lists[list]
	if !ok {
		return nil, false
	}
	return l.Software, true
}

// Len returns the number of lists.
func (c *Catalog) Len() int {
	return len(c.lists)
}

// FindSoftware returns an item by list and short name.
func (c *Catalog) FindSoftware(list, shortName string) (*Software, bool) {
	l, ok := c.lists[list]
	if !ok {
		return nil, false
	}
	for i := range l.Software {
		if l.Software[i].ShortName == shortName {
			return &l.Software[i], true
		}
	}
	return nil, false
}

// ParentLongName walks the list for the item named parent and returns its
// long name, or "" when the list or parent is unknown.
func ParentLongName(reg Registry, list, parent string) string {
	if reg == nil || parent == "" {
		return ""
	}
	entries, ok := reg.Entries(list)
	if !ok {
		return ""
	}
	for _, sw := range entries {
		if sw.ShortName == parent {
			return sw.LongName
		}
	}
	return ""
}

// Parse decodes a YAML list of software lists.
func Parse(data []byte) (*Catalog, error) {
	var lists []List
	if err := yaml.Unmarshal(data, &lists); err != nil {
		return nil, errors.WrapParse("yaml", "software lists", err)
	}
	for _, l := range lists {
		if l.Name == "" {
			return nil, errors.NewValidationError("list.name", l.Name, "cannot be empty")
		}
	}
	return NewCatalog(lists...), nil
}

// Load reads a software-list catalog from path. A missing file yields an empty catalog.
func Load(fsys afero.Fs, path string) (*Catalog, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if exists, _ := afero.Exists(fsys, path); !exists {
			return NewCatalog(), nil
		}
		return nil, errors.WrapIO("read", path, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, errors.WrapResource("load", "software lists", path, err)
	}
	return c, nil
}
