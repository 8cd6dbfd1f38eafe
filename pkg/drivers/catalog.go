package drivers

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"

	"github.com/agentstation/marquee/pkg/errors"
)

// Catalog is an in-memory driver registry.
type Catalog struct {
	drivers map[string]*Driver
	order   []string
}

var _ Registry = (*Catalog)(nil)

// NewCatalog creates a catalog holding the given drivers.
// Later duplicates replace earlier ones.
func NewCatalog(drivers ...Driver) *Catalog {
	c := &Catalog{drivers: make(map[string]*Driver, len(drivers))}
	for _, d := range drivers {
		_ = c.Add(d)
	}
	return c
}

// Add inserts or replaces a driver.
func (c *Catalog) Add(d Driver) error {
	if d.Name == "" {
		return errors.NewValidationError("driver.name", d.Name, "cannot be empty")
	}
	if existing, ok := c.drivers[d.Name]; ok {
		*existing = d
		return nil
	}
	driver := d
	c.drivers[d.Name] = &driver
	c.order = append(c.order, d.Name)
	return nil
}

// Find implements Registry.
func (c *Catalog) Find(name string) (*Driver, bool) {
	d, ok := c.drivers[name]
	return d, ok
}

// Len returns the number of drivers.
func (c *Catalog) Len() int {
	return len(c.drivers)
}

// List returns the drivers in insertion order.
func (c *Catalog) List() []*Driver {
	list := make([]*Driver, 0, len(c.order))
	for _, name := range c.order {
		list = append(list, c.drivers[name])
	}
	return list
}

// Parse decodes a YAML list of drivers.
func Parse(data []byte) (*Catalog, error) {
	var list []Driver
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, errors.WrapParse("yaml", "drivers", err)
	}

	c := NewCatalog()
	for i, d := range list {
		if err := c.Add(d); err != nil {
			return nil, errors.NewParseError("yaml", "drivers", 0, fmt.Sprintf("entry %d: %v", i, err), err)
		}
	}
	return c, nil
}

// Load reads a driver catalog from path. A missing file yields an empty catalog.
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
		return nil, errors.WrapResource("load", "driver registry", path, err)
	}
	return c, nil
}
