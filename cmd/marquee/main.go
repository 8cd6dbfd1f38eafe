// Package main provides the entry point for the marquee CLI tool.
package main

import (
	"context"
	"os"

	"github.com/agentstation/marquee/cmd/marquee/app"
	"github.com/agentstation/marquee/pkg/logging"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	// LOG_* variables govern logging until the configuration is loaded.
	logging.ConfigureFromEnv()

	application, err := app.New(version, commit, date, builtBy)
	if err != nil {
		app.ExitOnError(err)
	}

	ctx, cancel := app.ContextWithSignals(context.Background())
	defer cancel()

	if err := application.Execute(ctx, os.Args[1:]); err != nil {
		if shutdownErr := application.Shutdown(ctx); shutdownErr != nil {
			application.Logger().Error().Err(shutdownErr).Msg("Shutdown error during error handling")
		}
		app.ExitOnError(err)
	}
	if err := application.Shutdown(ctx); err != nil {
		app.ExitOnError(err)
	}
}
