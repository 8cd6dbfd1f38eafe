package drivers

import "sort"

// Set is a deduplicating set of driver references.
type Set map[*Driver]struct{}

// NewSet returns a set holding the given drivers.
func NewSet(drivers ...*Driver) Set {
	s := make(Set, len(drivers))
	for _, d := range drivers {
		s.Add(d)
	}
	return s
}

// Add inserts d, ignoring nil.
func (s Set) Add(d *Driver) {
	if d != nil {
		s[d] = struct{}{}
	}
}

// Has reports whether d is in the set.
func (s Set) Has(d *Driver) bool {
	_, ok := s[d]
	return ok
}

// Len returns the number of drivers in the set.
func (s Set) Len() int {
	return len(s)
}

// Names returns the short names of the drivers, sorted.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for d := range s {
		names = append(names, d.Name)
	}
	sort.Strings(names)
	return names
}

// Sorted returns the drivers ordered by short name.
func (s Set) Sorted() []*Driver {
	list := make([]*Driver, 0, len(s))
	for d := range s {
		list = append(list, d)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})
	return list
}
