// Package marquee ties together the category index and the favorites store
// of an emulator front-end.
//
// A Frontend is built once at startup: it loads the driver and software-list
// registries, indexes every category file and opens the favorites file.
//
//	fe, err := marquee.New(
//		marquee.WithCategoryPath("folders"),
//		marquee.WithUIPath("ui"),
//	)
//	if err != nil {
//		return err
//	}
//	defer fe.Close()
//
//	systems, err := fe.Categories().QueryCategory("genre.ini", "Maze")
//
// A Frontend is not safe for concurrent use.
package marquee

import (
	"fmt"
	"path/filepath"

	"github.com/agentstation/marquee/pkg/categories"
	"github.com/agentstation/marquee/pkg/constants"
	"github.com/agentstation/marquee/pkg/drivers"
	"github.com/agentstation/marquee/pkg/favorites"
	"github.com/agentstation/marquee/pkg/logging"
	"github.com/agentstation/marquee/pkg/softlists"
)

// Frontend owns the category index and favorites store.
type Frontend struct {
	config     *config
	drivers    drivers.Registry
	softlists  softlists.Registry
	categories *categories.Index
	favorites  *favorites.Store
}

// New creates a Frontend with the given options.
func New(opts ...Option) (*Frontend, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("applying options: %w", err)
		}
	}

	fe := &Frontend{config: cfg}
	if err := fe.loadRegistries(); err != nil {
		return nil, err
	}

	fe.categories = categories.Build(cfg.fs, cfg.categoryPath, fe.drivers,
		categories.WithLocale(cfg.locale),
		categories.WithExtension(cfg.categoryExtension),
	)

	store, err := favorites.Open(cfg.fs, cfg.uiPath, fe.drivers,
		favorites.WithSoftwareLists(fe.softlists),
	)
	if err != nil {
		return nil, fmt.Errorf("opening favorites: %w", err)
	}
	fe.favorites = store

	logging.Debug().
		Int("category_files", fe.categories.Len()).
		Int("favorites", store.Len()).
		Msg("Front-end ready")
	return fe, nil
}

func (fe *Frontend) loadRegistries() error {
	cfg := fe.config

	fe.drivers = cfg.drivers
	if fe.drivers == nil {
		path := cfg.driversFile
		if path == "" {
			path = filepath.Join(cfg.uiPath, constants.DriversFilename)
		}
		catalog, err := drivers.Load(cfg.fs, path)
		if err != nil {
			return fmt.Errorf("loading drivers: %w", err)
		}
		fe.drivers = catalog
	}

	fe.softlists = cfg.softlists
	if fe.softlists == nil {
		path := cfg.softlistsFile
		if path == "" {
			path = filepath.Join(cfg.uiPath, constants.SoftwareListsFilename)
		}
		catalog, err := softlists.Load(cfg.fs, path)
		if err != nil {
			return fmt.Errorf("loading software lists: %w", err)
		}
		fe.softlists = catalog
	}
	return nil
}

// Categories returns the category index.
func (fe *Frontend) Categories() *categories.Index {
	return fe.categories
}

// Favorites returns the favorites store.
func (fe *Frontend) Favorites() *favorites.Store {
	return fe.favorites
}

// Drivers returns the driver registry.
func (fe *Frontend) Drivers() drivers.Registry {
	return fe.drivers
}

// SoftwareLists returns the software-list registry.
func (fe *Frontend) SoftwareLists() softlists.Registry {
	return fe.softlists
}

// Close releases the Frontend. Favorites are saved on every change, so
// there is nothing left to flush.
func (fe *Frontend) Close() error {
	return nil
}
