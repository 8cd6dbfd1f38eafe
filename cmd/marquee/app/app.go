// Package app provides the application context and dependency management
// for the marquee CLI: configuration, logging and the lazily built
// front-end that commands share.
package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/agentstation/marquee"
	"github.com/agentstation/marquee/cmd/application"
	"github.com/agentstation/marquee/internal/cmd/output"
	"github.com/agentstation/marquee/internal/config"
	"github.com/agentstation/marquee/pkg/errors"
)

// App represents the marquee application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *config.Config
	logger *zerolog.Logger
	fs     afero.Fs

	// Front-end instance (lazy-initialized, singleton)
	mu       sync.Mutex
	frontend *marquee.Frontend
}

var _ application.Application = (*App)(nil)

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		fs:      afero.NewOsFs(),
	}

	// Apply options first so a custom filesystem or config is honoured.
	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.config == nil {
		cfg, err := config.LoadFs(app.fs, "")
		if err != nil {
			return nil, errors.WrapResource("load", "config", "", err)
		}
		app.config = cfg
	}

	if app.logger == nil {
		logger := NewLogger(app.config)
		app.logger = &logger
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *config.Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format, detecting one from
// the terminal when none was given.
func (a *App) OutputFormat() string {
	return string(output.DetectFormat(a.config.Format))
}

// Frontend returns the front-end, building it on first use.
func (a *App) Frontend() (*marquee.Frontend, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.frontend != nil {
		return a.frontend, nil
	}

	fe, err := marquee.New(a.frontendOptions()...)
	if err != nil {
		return nil, errors.WrapResource("create", "front-end", "", err)
	}
	a.frontend = fe
	return fe, nil
}

// Shutdown releases the front-end if one was built.
func (a *App) Shutdown(_ context.Context) error {
	a.mu.Lock()
	fe := a.frontend
	a.mu.Unlock()

	if fe == nil {
		return nil
	}
	return fe.Close()
}

// frontendOptions constructs front-end options from the app configuration.
func (a *App) frontendOptions() []marquee.Option {
	c := a.config
	opts := []marquee.Option{
		marquee.WithFs(a.fs),
		marquee.WithCategoryPath(c.CategoryPath),
		marquee.WithUIPath(c.UIPath),
		marquee.WithCategoryExtension(c.CategoryExtension),
		marquee.WithLocale(c.Locale),
	}
	if c.DriversFile != "" {
		opts = append(opts, marquee.WithDriversFile(c.DriversFile))
	}
	if c.SoftlistsFile != "" {
		opts = append(opts, marquee.WithSoftwareListsFile(c.SoftlistsFile))
	}
	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(cfg *config.Config) Option {
	return func(a *App) error {
		a.config = cfg
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithFs sets the filesystem used for configuration and front-end files.
func WithFs(fsys afero.Fs) Option {
	return func(a *App) error {
		a.fs = fsys
		return nil
	}
}
