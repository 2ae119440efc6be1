package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrValidationFailed indicates a configuration value is out of
	// range or inconsistent with another value.
	ErrValidationFailed = errors.New("config validation failed")

	// ErrBadColor indicates a theme color is not a parseable hex
	// triplet.
	ErrBadColor = errors.New("bad theme color")
)

// ParseError describes a failure to parse a configuration or theme
// file. Line and Column are zero when the underlying decoder does not
// report a position.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying decode error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError describes a single invalid configuration value.
// errors.Is(err, ErrValidationFailed) matches it.
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config: %s: %s", e.Field, e.Reason)
}

// Unwrap makes the error match ErrValidationFailed.
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
