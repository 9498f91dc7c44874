package errors

import (
	stdErrors "errors"
	"fmt"
)

// ErrMeasurementDeferred reports that a measurement needs a layout width that
// is not known yet. Callers skip the computation and retry on the next layout pass.
var ErrMeasurementDeferred = stdErrors.New("measurement deferred until layout width is known")

// ParseError represents a configuration decoding failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IconError reports an icon source that could not be decoded by the host.
type IconError struct {
	Slot string
	Path string
	Err  error
}

// NewIconError constructs an IconError for the given icon slot.
func NewIconError(slot, path string, err error) error {
	return &IconError{Slot: slot, Path: path, Err: err}
}

func (e *IconError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path != "" {
		return fmt.Sprintf("icon error [%s] %s: %v", e.Slot, e.Path, e.Err)
	}
	return fmt.Sprintf("icon error [%s]: %v", e.Slot, e.Err)
}

// Unwrap exposes the underlying error.
func (e *IconError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
