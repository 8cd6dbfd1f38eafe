package favorites

import (
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/agentstation/marquee/pkg/constants"
	"github.com/agentstation/marquee/pkg/drivers"
	"github.com/agentstation/marquee/pkg/logging"
	"github.com/agentstation/marquee/pkg/softlists"
)

// Store is the persisted favorites collection.
type Store struct {
	fs        afero.Fs
	path      string
	drivers   drivers.Registry
	softlists softlists.Registry
	set       *Set
	display   displayCache
}

// Option configures a Store.
type Option func(*Store)

// WithSoftwareLists sets the registry used to resolve parent long names of
// running software.
func WithSoftwareLists(reg softlists.Registry) Option {
	return func(s *Store) {
		s.softlists = reg
	}
}

// WithFilename overrides the favorites file name inside the UI directory.
func WithFilename(name string) Option {
	return func(s *Store) {
		if name != "" {
			s.path = name
		}
	}
}

// Open loads the favorites file in dir. A missing or unreadable file gives
// an empty store; problems with the file are logged, never returned.
func Open(fsys afero.Fs, dir string, reg drivers.Registry, opts ...Option) (*Store, error) {
	s := &Store{
		fs:      fsys,
		path:    constants.FavoritesFilename,
		drivers: reg,
		set:     NewSet(),
		display: newDisplayCache(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.path = filepath.Join(dir, s.path)
	if s.drivers == nil {
		s.drivers = drivers.NewCatalog()
	}

	s.load()
	return s, nil
}

// Path returns the favorites file path.
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of favorites.
func (s *Store) Len() int {
	return s.set.Len()
}

// Contains reports whether a favorite matches k exactly.
func (s *Store) Contains(k Keyer) bool {
	_, ok := s.set.Find(k)
	return ok
}

// Find returns the favorite matching k exactly.
func (s *Store) Find(k Keyer) (Entry, bool) {
	e, ok := s.set.Find(k)
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// Entries returns the favorites in key order.
func (s *Store) Entries() []Entry {
	return values(s.set.Entries())
}

// EntriesForDisplay returns the favorites sorted for presentation.
func (s *Store) EntriesForDisplay() []Entry {
	return values(s.display.view(s.set))
}

func values(list []*Entry) []Entry {
	out := make([]Entry, len(list))
	for i, e := range list {
		out[i] = *e
	}
	return out
}

// AddSystem adds the system favorite for d.
func (s *Store) AddSystem(d *drivers.Driver) bool {
	if d == nil {
		return false
	}
	e := NewSystemEntry(d)
	return s.add(&e)
}

// AddSoftware adds e.
func (s *Store) AddSoftware(e Entry) bool {
	if e.Driver == nil {
		d, ok := s.drivers.Find(e.DriverName)
		if !ok {
			logging.Warn().Str("driver", e.DriverName).Msg("Not adding favorite for unknown driver")
			return false
		}
		e.Driver = d
	}
	e.DriverName = e.Driver.Name
	if e.InfoText == "" {
		e.InfoText = infoText(&e)
	}
	return s.add(&e)
}

// AddRunning adds a favorite for each software item mounted in sess, or
// the system favorite when nothing is mounted. It returns how many were new.
func (s *Store) AddRunning(sess Session) int {
	added := 0
	eachRunning(sess, func(d *drivers.Driver, img *MountedImage) bool {
		if img == nil {
			if s.AddSystem(d) {
				added++
			}
			return false
		}

		var part softlists.Part
		if img.Part != nil {
			part = *img.Part
		}
		e := NewSoftwareEntry(*img.Software, part, d, img.ListName, img.Instance, img.TypeName)
		e.Available = true
		e.ParentLongName = softlists.ParentLongName(s.softlists, e.ListName, e.ParentName)
		if s.add(&e) {
			added++
		}
		return false
	})
	return added
}

func (s *Store) add(e *Entry) bool {
	if !s.set.Insert(e) {
		return false
	}
	s.display.added(e)
	logging.Debug().
		Str("driver", e.DriverName).
		Str("list", e.ListName).
		Str("software", e.ShortName).
		Msg("Added favorite")
	s.persist()
	return true
}

// IsFavoriteSystem reports whether d's system favorite exists.
func (s *Store) IsFavoriteSystem(d *drivers.Driver) bool {
	return s.Contains(SystemKey(d))
}

// IsFavoriteSoftware reports whether e's list item is a favorite on any driver.
func (s *Store) IsFavoriteSoftware(e Entry) bool {
	matches := func(f *Entry) bool {
		return f.ListName == e.ListName && f.ShortName == e.ShortName
	}
	if f, ok := s.set.Ceiling(&e); ok && matches(f) {
		return true
	}
	f, ok := s.set.Floor(&e)
	return ok && matches(f)
}

// IsFavoriteSystemSoftware reports whether e itself is a favorite.
func (s *Store) IsFavoriteSystemSoftware(e Entry) bool {
	return s.Contains(&e)
}

// IsFavoriteRunning reports whether anything running in sess is a favorite.
func (s *Store) IsFavoriteRunning(sess Session) bool {
	found := false
	eachRunning(sess, func(d *drivers.Driver, img *MountedImage) bool {
		found = s.Contains(runningKey(d, img))
		return found
	})
	return found
}

// RemoveSystem removes d's system favorite.
func (s *Store) RemoveSystem(d *drivers.Driver) bool {
	return s.remove(SystemKey(d))
}

// RemoveSoftware removes the favorite matching e.
func (s *Store) RemoveSoftware(e Entry) bool {
	return s.remove(&e)
}

// RemoveRunning removes the first favorite found among what sess is running.
func (s *Store) RemoveRunning(sess Session) bool {
	removed := false
	eachRunning(sess, func(d *drivers.Driver, img *MountedImage) bool {
		removed = s.remove(runningKey(d, img))
		return removed
	})
	return removed
}

func (s *Store) remove(k Keyer) bool {
	if !s.set.Delete(k) {
		return false
	}
	s.display.removed()
	key := k.FavoriteKey()
	logging.Debug().
		Str("driver", key.Driver).
		Str("list", key.List).
		Str("software", key.Short).
		Msg("Removed favorite")
	s.persist()
	return true
}

// persist saves after a mutation. Failures are logged and the in-memory
// set stays authoritative.
func (s *Store) persist() {
	if err := s.Save(); err != nil {
		logging.Error().Err(err).Str("path", s.path).Msg("Failed to save favorites")
	}
}
