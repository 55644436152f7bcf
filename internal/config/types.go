// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// RuntimeNative runs commands in the host system shell.
	RuntimeNative RuntimeMode = "native"
	// RuntimeVirtual runs commands in the embedded mvdan/sh interpreter.
	RuntimeVirtual RuntimeMode = "virtual"
)

var (
	// ErrInvalidRuntimeMode is the sentinel error wrapped by InvalidRuntimeModeError.
	ErrInvalidRuntimeMode = errors.New("invalid runtime mode")
	// ErrInvalidShell is the sentinel error wrapped by InvalidShellError.
	ErrInvalidShell = errors.New("invalid shell")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// RuntimeMode selects the runtime that executes resolved commands.
	RuntimeMode string

	// InvalidRuntimeModeError is returned when a RuntimeMode value is not recognized.
	// It wraps ErrInvalidRuntimeMode for errors.Is() compatibility.
	InvalidRuntimeModeError struct {
		Value RuntimeMode
	}

	// InvalidShellError is returned when the shell override is whitespace-only.
	// It wraps ErrInvalidShell for errors.Is() compatibility.
	InvalidShellError struct {
		Value string
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application settings.
	Config struct {
		// Runtime selects the native or virtual runtime.
		Runtime RuntimeMode `json:"runtime" mapstructure:"runtime"`
		// Verbose enables debug logging.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
		// Shell overrides the native runtime's platform shell (e.g. "bash").
		Shell string `json:"shell" mapstructure:"shell"`
	}
)

// DefaultConfig returns the settings used when nothing else is configured.
func DefaultConfig() *Config {
	return &Config{Runtime: RuntimeNative}
}

// String returns the string representation of the RuntimeMode.
func (m RuntimeMode) String() string { return string(m) }

// IsValid returns whether the RuntimeMode is one of the defined modes.
func (m RuntimeMode) IsValid() (bool, []error) {
	switch m {
	case RuntimeNative, RuntimeVirtual:
		return true, nil
	default:
		return false, []error{&InvalidRuntimeModeError{Value: m}}
	}
}

// Error implements the error interface for InvalidRuntimeModeError.
func (e *InvalidRuntimeModeError) Error() string {
	return fmt.Sprintf("invalid runtime mode %q (valid: %s, %s)", e.Value, RuntimeNative, RuntimeVirtual)
}

// Unwrap returns ErrInvalidRuntimeMode for errors.Is() compatibility.
func (e *InvalidRuntimeModeError) Unwrap() error { return ErrInvalidRuntimeMode }

// Error implements the error interface for InvalidShellError.
func (e *InvalidShellError) Error() string {
	return fmt.Sprintf("invalid shell %q: must not be whitespace-only", e.Value)
}

// Unwrap returns ErrInvalidShell for errors.Is() compatibility.
func (e *InvalidShellError) Unwrap() error { return ErrInvalidShell }

// IsValid returns whether the Config has valid fields.
// An empty Shell is valid and means "use the platform default".
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.Runtime.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if c.Shell != "" && strings.TrimSpace(c.Shell) == "" {
		errs = append(errs, &InvalidShellError{Value: c.Shell})
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Validate returns the InvalidConfigError reported by IsValid, or nil.
func (c Config) Validate() error {
	if valid, errs := c.IsValid(); !valid {
		return errs[0]
	}
	return nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, 0, len(e.FieldErrors))
	for _, err := range e.FieldErrors {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidConfig and the field errors.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}
