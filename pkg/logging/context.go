package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey int

const loggerKey contextKey = iota

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	if logger == nil {
		logger = Default()
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger from context, or returns the default logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(loggerKey).(*zerolog.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}

// WithField adds a single field to the logger in the context.
func WithField(ctx context.Context, key string, value any) context.Context {
	logger := FromContext(ctx)
	newLogger := addField(logger.With(), key, value).Logger()
	return WithLogger(ctx, &newLogger)
}

// WithFields adds structured fields to the logger in the context.
func WithFields(ctx context.Context, fields map[string]any) context.Context {
	logCtx := FromContext(ctx).With()
	for key, value := range fields {
		logCtx = addField(logCtx, key, value)
	}
	newLogger := logCtx.Logger()
	return WithLogger(ctx, &newLogger)
}

// WithCategoryFile adds the category file name to the context logger.
func WithCategoryFile(ctx context.Context, file string) context.Context {
	return WithField(ctx, "category_file", file)
}

// WithDriver adds the driver short name to the context logger.
func WithDriver(ctx context.Context, driver string) context.Context {
	return WithField(ctx, "driver", driver)
}

// WithOperation adds operation context to the logger.
func WithOperation(ctx context.Context, operation string) context.Context {
	return WithField(ctx, "operation", operation)
}
