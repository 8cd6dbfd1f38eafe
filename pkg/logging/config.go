package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/marquee/pkg/constants"
)

// Config holds logger configuration options
type Config struct {
	// Level is the minimum log level to output
	Level string
	// Format is the output format (json, console, auto)
	Format string
	// Output is where to write logs (stderr, stdout, discard, or a file path)
	Output string
	// TimeFormat for console timestamps (kitchen, rfc3339, or a Go layout)
	TimeFormat string
	// NoColor disables color output in console mode
	NoColor bool
	// AddCaller includes file:line in log output
	AddCaller bool
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Level:      "info",
		Format:     "auto",
		Output:     "stderr",
		TimeFormat: "kitchen",
		NoColor:    os.Getenv("NO_COLOR") != "",
	}
}

// NewLoggerFromConfig creates a new logger from configuration
func NewLoggerFromConfig(cfg *Config) zerolog.Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	level := ParseLevel(cfg.Level)
	zerolog.SetGlobalLevel(level)

	logger := zerolog.New(writerFor(cfg)).
		Level(level).
		With().
		Timestamp().
		Logger()

	if cfg.AddCaller || level <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}
	return logger
}

// Configure updates the default logger with the given configuration
func Configure(cfg *Config) {
	SetDefault(NewLoggerFromConfig(cfg))
}

// ConfigureFromEnv configures the logger from LOG_* environment variables
func ConfigureFromEnv() {
	Configure(&Config{
		Level:      getEnvOrDefault("LOG_LEVEL", "info"),
		Format:     getEnvOrDefault("LOG_FORMAT", "auto"),
		Output:     getEnvOrDefault("LOG_OUTPUT", "stderr"),
		TimeFormat: getEnvOrDefault("LOG_TIME_FORMAT", "kitchen"),
		NoColor:    os.Getenv("NO_COLOR") != "",
		AddCaller:  os.Getenv("LOG_CALLER") == "true",
	})
}

// writerFor creates the output writer described by cfg.
func writerFor(cfg *Config) io.Writer {
	var output io.Writer
	switch strings.ToLower(cfg.Output) {
	case "", "stderr":
		output = os.Stderr
	case "stdout":
		output = os.Stdout
	case "discard", "none":
		output = io.Discard
	default:
		file, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, constants.FilePermissions)
		if err != nil {
			output = os.Stderr
		} else {
			output = file
		}
	}

	format := strings.ToLower(cfg.Format)
	if format == "auto" || format == "" {
		format = "json"
		if output == os.Stderr && stderrIsTerminal() {
			format = "console"
		}
	}

	if format == "console" || format == "pretty" {
		return zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: parseTimeFormat(cfg.TimeFormat),
			NoColor:    cfg.NoColor,
		}
	}
	return output
}

// ParseLevel parses a log level string, falling back to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "warning":
		return zerolog.WarnLevel
	case "disabled", "none", "off":
		return zerolog.Disabled
	}
	if l, err := zerolog.ParseLevel(strings.ToLower(level)); err == nil && level != "" {
		return l
	}
	return zerolog.InfoLevel
}

func parseTimeFormat(format string) string {
	switch strings.ToLower(format) {
	case "kitchen", "":
		return time.Kitchen
	case "rfc3339":
		return time.RFC3339
	case "rfc3339nano":
		return time.RFC3339Nano
	case "unix", "epoch":
		return ""
	}
	if strings.Contains(format, "2006") || strings.Contains(format, "15:04") {
		return format
	}
	return time.Kitchen
}

// addField adds a field to the context based on its type
func addField(ctx zerolog.Context, key string, value any) zerolog.Context {
	switch v := value.(type) {
	case string:
		return ctx.Str(key, v)
	case int:
		return ctx.Int(key, v)
	case int64:
		return ctx.Int64(key, v)
	case bool:
		return ctx.Bool(key, v)
	case error:
		if key == "error" || key == "err" {
			return ctx.Err(v)
		}
		return ctx.Str(key, v.Error())
	default:
		return ctx.Interface(key, v)
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
