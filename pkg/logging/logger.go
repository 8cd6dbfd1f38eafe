// Package logging provides structured logging for the marquee system using zerolog.
// Category indexing, category queries and favorites persistence never fail
// loudly; they report diagnostics through this package and degrade to empty
// results instead.
//
// Example usage:
//
//	log := logging.Default()
//	log.Info().Str("file", "genre.ini").Int("categories", 42).Msg("Indexed category file")
//
//	ctx := logging.WithCategoryFile(context.Background(), "genre.ini")
//	logging.FromContext(ctx).Warn().Msg("Category offset is stale")
package logging

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	// defaultLogger is the global logger instance.
	defaultLogger zerolog.Logger

	// Nop logger for discarding output.
	Nop = zerolog.Nop()
)

func init() {
	defaultLogger = createDefaultLogger()
}

// createDefaultLogger creates a logger with default settings: console
// output on a terminal, JSON otherwise.
func createDefaultLogger() zerolog.Logger {
	level := levelFromEnv()
	zerolog.SetGlobalLevel(level)

	var logger zerolog.Logger
	if stderrIsTerminal() && os.Getenv("LOG_FORMAT") != "json" {
		logger = NewConsole()
	} else {
		logger = New(os.Stderr)
	}
	logger = logger.Level(level)

	if level <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}
	return logger
}

// Default returns the default global logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault sets the default global logger.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
	log.Logger = logger
}

// New creates a new JSON logger writing to w.
func New(w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return zerolog.New(w).
		Level(zerolog.GlobalLevel()).
		With().
		Timestamp().
		Logger()
}

// NewConsole creates a new console logger for human-readable output.
func NewConsole() zerolog.Logger {
	return New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    os.Getenv("NO_COLOR") != "",
	})
}

// With creates a child logger context with additional fields.
func With() zerolog.Context {
	return defaultLogger.With()
}

// Debug starts a new debug level log event.
func Debug() *zerolog.Event {
	return defaultLogger.Debug()
}

// Info starts a new info level log event.
func Info() *zerolog.Event {
	return defaultLogger.Info()
}

// Warn starts a new warning level log event.
func Warn() *zerolog.Event {
	return defaultLogger.Warn()
}

// Error starts a new error level log event.
func Error() *zerolog.Event {
	return defaultLogger.Error()
}

// Err creates a new error log event with the given error.
func Err(err error) *zerolog.Event {
	return defaultLogger.Err(err)
}

func stderrIsTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// levelFromEnv returns the log level from LOG_LEVEL, honoring DEBUG as a shortcut.
func levelFromEnv() zerolog.Level {
	levelStr := os.Getenv("LOG_LEVEL")
	if levelStr == "" {
		if os.Getenv("DEBUG") != "" {
			return zerolog.DebugLevel
		}
		return zerolog.InfoLevel
	}

	level, err := zerolog.ParseLevel(levelStr)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
