// Package errors provides custom error types for the marquee system.
// These errors let callers tell I/O failures, data errors and stale
// category indices apart without string matching.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is, As and Join are re-exported so callers only need one errors import.
var (
	Is   = errors.Is
	As   = errors.As
	Join = errors.Join
)

// Common sentinel errors for the marquee system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates that a resource already exists
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrStaleIndex indicates that a category file changed after it was indexed
	ErrStaleIndex = errors.New("stale category index")

	// ErrNotSeekable indicates that a file handle cannot be positioned
	ErrNotSeekable = errors.New("file not seekable")
)

// NotFoundError represents an error when a resource is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// ParseError represents an error when parsing a category, favorites or registry file
type ParseError struct {
	Format  string // "ini", "favorites", "yaml"
	File    string
	Line    int
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" && e.Line > 0 {
		return fmt.Sprintf("parse error in %s at %s:%d: %s", e.Format, e.File, e.Line, e.Message)
	}
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewParseError creates a new ParseError
func NewParseError(format, file string, line int, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Line:    line,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "open", "seek", "delete", "create"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// StaleIndexError reports that seeking to an indexed category offset did
// not land where the index said it would.
type StaleIndexError struct {
	File     string
	Offset   int64
	Position int64
}

// Error implements the error interface
func (e *StaleIndexError) Error() string {
	return fmt.Sprintf("category index for %s is stale: seek to offset %d landed at %d", e.File, e.Offset, e.Position)
}

// Is implements errors.Is support
func (e *StaleIndexError) Is(target error) bool {
	return target == ErrStaleIndex
}

// NewStaleIndexError creates a new StaleIndexError
func NewStaleIndexError(file string, offset, position int64) *StaleIndexError {
	return &StaleIndexError{File: file, Offset: offset, Position: position}
}

// ResourceError represents an error during resource operations
type ResourceError struct {
	Operation string // "load", "save", "build", "query"
	Resource  string // "favorites", "category index", "driver registry"
	ID        string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ResourceError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("failed to %s %s %s: %s", e.Operation, e.Resource, e.ID, e.Message)
	}
	return fmt.Sprintf("failed to %s %s: %s", e.Operation, e.Resource, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ResourceError) Unwrap() error {
	return e.Err
}

// NewResourceError creates a new ResourceError
func NewResourceError(operation, resource, id string, err error) *ResourceError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ResourceError{
		Operation: operation,
		Resource:  resource,
		ID:        id,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsStaleIndex checks if an error reports a stale category index
func IsStaleIndex(err error) bool {
	return errors.Is(err, ErrStaleIndex)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapResource wraps an error as a ResourceError
func WrapResource(operation, resource, id string, err error) error {
	if err == nil {
		return nil
	}
	return NewResourceError(operation, resource, id, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, 0, err.Error(), err)
}
