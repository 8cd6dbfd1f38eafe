package favorites

import (
	"strings"

	"github.com/agentstation/marquee/pkg/drivers"
)

// Key identifies a favorite. Start-empty keys carry only a driver name, so
// a driver alone finds the system favorite and never a software one.
type Key struct {
	StartEmpty bool
	List       string
	Short      string
	Driver     string
}

// Keyer is anything the favorites set can be searched by.
type Keyer interface {
	FavoriteKey() Key
}

// FavoriteKey implements Keyer.
func (k Key) FavoriteKey() Key {
	return k
}

// FavoriteKey implements Keyer.
func (e *Entry) FavoriteKey() Key {
	if e.StartEmpty {
		return Key{StartEmpty: true, Driver: e.DriverName}
	}
	return Key{List: e.ListName, Short: e.ShortName, Driver: e.DriverName}
}

// SystemKey is the key of d's system favorite.
func SystemKey(d *drivers.Driver) Key {
	k := Key{StartEmpty: true}
	if d != nil {
		k.Driver = d.Name
	}
	return k
}

// SoftwareKey is the key of item short in list running on d.
func SoftwareKey(d *drivers.Driver, list, short string) Key {
	k := Key{List: list, Short: short}
	if d != nil {
		k.Driver = d.Name
	}
	return k
}

// CompareKeys orders software favorites by list, item and driver, followed
// by system favorites ordered by driver.
func CompareKeys(a, b Key) int {
	if a.StartEmpty != b.StartEmpty {
		if a.StartEmpty {
			return 1
		}
		return -1
	}
	if !a.StartEmpty {
		if c := strings.Compare(a.List, b.List); c != 0 {
			return c
		}
		if c := strings.Compare(a.Short, b.Short); c != 0 {
			return c
		}
	}
	return strings.Compare(a.Driver, b.Driver)
}

// keyComparator adapts CompareKeys to the tree's comparator signature.
func keyComparator(a, b interface{}) int {
	return CompareKeys(a.(Key), b.(Key))
}
