// Package errors provides sentinel errors and structured error details for
// vitetags.
package errors

import (
	"errors"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrParse indicates the hot file or the manifest could not be read or
	// decoded.
	ErrParse = errors.New("parse error")

	// ErrNotFound indicates an entrypoint or output file is missing from the
	// manifest.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState indicates an operation that is meaningless in the current
	// mode, such as reading the manifest while the dev server is running.
	ErrInvalidState = errors.New("invalid state")

	// ErrValidation indicates a configuration schema violation.
	ErrValidation = errors.New("validation error")
)

// DetailError captures structured error information.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file path involved (optional).
	Location string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the sentinel classifying this error (required).
	Cause error

	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString(e.Type)
	b.WriteString(": ")
	b.WriteString(e.Message)

	if e.Location != "" {
		b.WriteString(" (")
		b.WriteString(e.Location)
		b.WriteString(")")
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}

	return b.String()
}

// Details renders the multi-line form used by the CLI.
func (e *DetailError) Details() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	for k, v := range e.Context {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")
	if e.Err != nil {
		b.WriteString("  ")
		b.WriteString(e.Err.Error())
		b.WriteString("\n")
	}

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the sentinel and the underlying error.
func (e *DetailError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Cause}
	}
	return []error{e.Cause, e.Err}
}

// NewParseError creates a parse error for the file at location.
func NewParseError(message, location string, err error) error {
	return &DetailError{
		Type:     "parse failed",
		Message:  message,
		Location: location,
		Cause:    ErrParse,
		Err:      err,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// NewInvalidStateError creates an invalid state error with details.
func NewInvalidStateError(message, hint string) error {
	return &DetailError{
		Type:    "invalid state",
		Message: message,
		Hint:    hint,
		Cause:   ErrInvalidState,
	}
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, hint string, err error) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrValidation,
		Err:      err,
	}
}
