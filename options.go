package marquee

import (
	"github.com/spf13/afero"
	"golang.org/x/text/language"

	"github.com/agentstation/marquee/pkg/constants"
	"github.com/agentstation/marquee/pkg/drivers"
	"github.com/agentstation/marquee/pkg/errors"
	"github.com/agentstation/marquee/pkg/softlists"
)

// config holds the Frontend configuration.
type config struct {
	fs                afero.Fs
	categoryPath      string
	uiPath            string
	categoryExtension string
	locale            language.Tag
	driversFile       string
	softlistsFile     string
	drivers           drivers.Registry
	softlists         softlists.Registry
}

func defaultConfig() *config {
	return &config{
		fs:                afero.NewOsFs(),
		categoryPath:      constants.DefaultCategoryPath,
		uiPath:            constants.DefaultUIPath,
		categoryExtension: constants.CategoryExtension,
		locale:            language.Make(constants.DefaultLocale),
	}
}

// Option is a function that configures a Frontend.
type Option func(*config) error

// WithFs sets the filesystem every file is read from and written to.
func WithFs(fsys afero.Fs) Option {
	return func(c *config) error {
		if fsys == nil {
			return errors.NewValidationError("fs", nil, "cannot be nil")
		}
		c.fs = fsys
		return nil
	}
}

// WithCategoryPath sets the directory scanned for category files.
func WithCategoryPath(path string) Option {
	return func(c *config) error {
		c.categoryPath = path
		return nil
	}
}

// WithUIPath sets the directory holding favorites.ini.
func WithUIPath(path string) Option {
	return func(c *config) error {
		c.uiPath = path
		return nil
	}
}

// WithCategoryExtension sets the category file extension.
func WithCategoryExtension(ext string) Option {
	return func(c *config) error {
		if ext != "" {
			c.categoryExtension = ext
		}
		return nil
	}
}

// WithLocale sets the collation locale by BCP 47 tag, e.g. "en" or "de-CH".
func WithLocale(locale string) Option {
	return func(c *config) error {
		if locale == "" {
			return nil
		}
		tag, err := language.Parse(locale)
		if err != nil {
			return errors.NewValidationError("locale", locale, err.Error())
		}
		c.locale = tag
		return nil
	}
}

// WithDrivers sets the driver registry, bypassing the drivers file.
func WithDrivers(reg drivers.Registry) Option {
	return func(c *config) error {
		c.drivers = reg
		return nil
	}
}

// WithDriversFile sets the YAML file the driver registry is loaded from.
func WithDriversFile(path string) Option {
	return func(c *config) error {
		c.driversFile = path
		return nil
	}
}

// WithSoftwareLists sets the software-list registry, bypassing the software lists file.
func WithSoftwareLists(reg softlists.Registry) Option {
	return func(c *config) error {
		c.softlists = reg
		return nil
	}
}

// WithSoftwareListsFile sets the YAML file the software-list registry is loaded from.
func WithSoftwareListsFile(path string) Option {
	return func(c *config) error {
		c.softlistsFile = path
		return nil
	}
}
