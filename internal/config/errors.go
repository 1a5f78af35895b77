package config

import (
	"errors"
	"fmt"
)

// Sentinel errors for configuration loading and validation.
var (
	// ErrInvalidYAML indicates invalid YAML syntax in the config file.
	ErrInvalidYAML = errors.New("config: invalid YAML syntax")

	// ErrInvalidConfig indicates the configuration failed validation.
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// ValidationError reports one invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
	Value   any
	Wrapped error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validation error: field %q: %s (got: %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("validation error: field %q: %s", e.Field, e.Message)
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error { return e.Wrapped }

// Is supports errors.Is(err, ErrInvalidConfig).
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidConfig
}
