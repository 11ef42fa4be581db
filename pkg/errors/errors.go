package errors

import (
	"fmt"
)

// ParseError represents a theme document parsing failure with optional line metadata.
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

// ValidationError captures document-level validation issues that are not
// tied to a canonical color token (version, name, export settings).
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

// InvalidThemeError reports a canonical block that is missing a token, carries
// an unknown token or holds a value that is not a hex color. It is fatal: no
// adapter may run on a theme that produced it.
type InvalidThemeError struct {
	Mode    string
	Token   string
	Value   string
	Message string
	Err     error
}

// NewInvalidThemeError constructs an InvalidThemeError.
func NewInvalidThemeError(mode, token, value, message string, err error) error {
	return &InvalidThemeError{Mode: mode, Token: token, Value: value, Message: message, Err: err}
}

func (e *InvalidThemeError) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Mode != "" && e.Token != "":
		return fmt.Sprintf("invalid canonical theme: %s.%s: %s", e.Mode, e.Token, e.Message)
	case e.Mode != "":
		return fmt.Sprintf("invalid canonical theme: %s: %s", e.Mode, e.Message)
	default:
		return fmt.Sprintf("invalid canonical theme: %s", e.Message)
	}
}

// Unwrap exposes the underlying error.
func (e *InvalidThemeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ColorError is returned by color math when a value cannot be parsed as hex.
type ColorError struct {
	Value string
	Err   error
}

// NewColorError constructs a ColorError for the offending value.
func NewColorError(value string, err error) error {
	return &ColorError{Value: value, Err: err}
}

func (e *ColorError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("unparsable color %q: %v", e.Value, e.Err)
	}
	return fmt.Sprintf("unparsable color %q", e.Value)
}

// Unwrap exposes the underlying error.
func (e *ColorError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// OverrideError describes a malformed override fragment. Normalization
// recovers from it by ignoring the fragment; it is surfaced for logging only.
type OverrideError struct {
	Provider string
	Path     string
	Message  string
}

// NewOverrideError constructs an OverrideError.
func NewOverrideError(provider, path, message string) error {
	return &OverrideError{Provider: provider, Path: path, Message: message}
}

func (e *OverrideError) Error() string {
	if e == nil {
		return ""
	}
	location := e.Path
	if e.Provider != "" {
		if location != "" {
			location = e.Provider + "." + location
		} else {
			location = e.Provider
		}
	}
	if location != "" {
		return fmt.Sprintf("malformed override [%s]: %s", location, e.Message)
	}
	return fmt.Sprintf("malformed override: %s", e.Message)
}

// ProviderError indicates issues within provider registration or conversion.
type ProviderError struct {
	Provider string
	Message  string
	Err      error
}

// NewProviderError constructs a ProviderError for the given provider id.
func NewProviderError(provider string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ProviderError{Provider: provider, Message: message, Err: err}
}

func (e *ProviderError) Error() string {
	if e == nil {
		return ""
	}
	if e.Provider != "" {
		return fmt.Sprintf("provider error [%s]: %s", e.Provider, e.Message)
	}
	return fmt.Sprintf("provider error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ProviderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
