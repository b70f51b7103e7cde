package config

import (
	"errors"
	"fmt"
)

// ValidationError reports an invalid configuration field.
type ValidationError struct {
	Field   string // Dotted field name, e.g. "title.color"
	Value   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Message)
}

func newValidationError(field, value, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// IsValidationError checks if err is, or wraps, a *ValidationError
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}
