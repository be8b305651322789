package config

import "fmt"

// Error is a configuration loading error with the source it came from.
type Error struct {
	Source    string // file name or "environment"
	Operation string // "load", "parse"
	Err       error
}

// Error returns a formatted error message with context information
func (e *Error) Error() string {
	return fmt.Sprintf("config error in %s during %s: %v", e.Source, e.Operation, e.Err)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates an Error
func NewError(source, operation string, err error) *Error {
	return &Error{Source: source, Operation: operation, Err: err}
}
