package favorites

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/marquee/pkg/drivers"
)

func TestDisplayCacheStates(t *testing.T) {
	set := NewSet()
	c := newDisplayCache()
	assert.Equal(t, cacheInvalid, c.state)

	zeta := &Entry{LongName: "Zeta", ListName: "l", ShortName: "z", DriverName: "d"}
	set.Insert(zeta)
	c.added(zeta)
	assert.Equal(t, cacheInvalid, c.state, "adds to an unbuilt cache are ignored")

	assert.Len(t, c.view(set), 1)
	assert.Equal(t, cacheClean, c.state)

	alpha := &Entry{LongName: "alpha", ListName: "l", ShortName: "a", DriverName: "d"}
	set.Insert(alpha)
	c.added(alpha)
	assert.Equal(t, cacheAppended, c.state)
	assert.Equal(t, []*Entry{alpha, zeta}, c.view(set))
	assert.Equal(t, cacheClean, c.state)

	set.Delete(zeta)
	c.removed()
	assert.Equal(t, cacheInvalid, c.state)
	assert.Equal(t, []*Entry{alpha}, c.view(set))
}

func TestDisplayCacheRebuildsOnSizeMismatch(t *testing.T) {
	set := NewSet()
	c := newDisplayCache()
	c.view(set)

	// Inserted behind the cache's back.
	set.Insert(&Entry{LongName: "x", DriverName: "d", ListName: "l"})
	assert.Len(t, c.view(set), 1)
}

func TestDisplayCacheOrder(t *testing.T) {
	galaxian := &drivers.Driver{Name: "galaxian", FullName: "galaxian"}
	alpha := &drivers.Driver{Name: "zzz", FullName: "Alpha Machine"}

	set := NewSet()
	entries := []*Entry{
		{LongName: "Same", ListName: "b", ShortName: "1", DriverName: "galaxian", Driver: galaxian},
		{LongName: "same", ListName: "a", ShortName: "2", DriverName: "galaxian", Driver: galaxian},
		{LongName: "SAME", ListName: "c", ShortName: "3", DriverName: "zzz", Driver: alpha},
		{LongName: "Other", ListName: "z", ShortName: "4", DriverName: "galaxian", Driver: galaxian},
	}
	for _, e := range entries {
		set.Insert(e)
	}

	c := newDisplayCache()
	var got []string
	for _, e := range c.view(set) {
		got = append(got, e.ShortName)
	}
	// Long name ignoring case, then driver display name ignoring case, then list.
	assert.Equal(t, []string{"4", "3", "2", "1"}, got)
	assert.Equal(t, "clean", c.state.String())
}
