package tsmock

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the two fatal failure classes.
var (
	// ErrConfig indicates unusable generator options.
	ErrConfig = errors.New("tsmock: invalid configuration")
	// ErrSchema indicates a schema the resolver cannot make sense of.
	ErrSchema = errors.New("tsmock: inconsistent schema")
)

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   interface{}
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	var b strings.Builder
	b.WriteString("tsmock: config error")
	if e.Option != "" {
		fmt.Fprintf(&b, " for %q", e.Option)
	}
	if e.Value != nil {
		fmt.Fprintf(&b, " (value: %v)", e.Value)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error { return e.Cause }

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool { return target == ErrConfig }

// SchemaError represents a type the resolver could not resolve.
type SchemaError struct {
	Type    string
	Field   string
	Message string
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	var b strings.Builder
	b.WriteString("tsmock: schema error")
	if e.Type != "" {
		b.WriteString(" on type ")
		b.WriteString(e.Type)
	}
	if e.Field != "" {
		b.WriteString(" field ")
		b.WriteString(e.Field)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for SchemaError.
func (e *SchemaError) Is(target error) bool { return target == ErrSchema }
