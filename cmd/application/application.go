// Package application defines what marquee commands need from the CLI
// application.
//
// Commands accept this interface rather than the concrete App so they can
// be tested against a mock:
//
//	mock := &application.Mock{
//	    FrontendFunc: func() (*marquee.Frontend, error) {
//	        return marquee.New(marquee.WithFs(afero.NewMemMapFs()))
//	    },
//	}
//	cmd := favorites.NewCommand(mock)
package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/marquee"
)

// Application provides the dependencies commands need.
type Application interface {
	// Frontend returns the front-end, building it on first use.
	Frontend() (*marquee.Frontend, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml, markdown).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
