// Package application provides test doubles for command tests.
package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/marquee"
)

// Mock implements the command Application interface. Each method calls the
// matching function field, or returns a default when it is nil.
type Mock struct {
	FrontendFunc     func() (*marquee.Frontend, error)
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
	BuiltByFunc      func() string
}

// Frontend returns a front-end using the mock function or nil.
func (m *Mock) Frontend() (*marquee.Frontend, error) {
	if m.FrontendFunc != nil {
		return m.FrontendFunc()
	}
	return nil, nil
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns output format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builder using the mock function or "unknown".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "unknown"
}
