// SPDX-License-Identifier: MPL-2.0

package commandtree

import (
	"errors"
	"fmt"
)

const (
	// MinAddressTokens is the smallest accepted command address (bare name).
	MinAddressTokens = 1
	// MaxAddressTokens is the largest accepted command address (domain, category, name).
	MaxAddressTokens = 3
)

var (
	// ErrDuplicateCommand is the sentinel error wrapped by DuplicateCommandError.
	ErrDuplicateCommand = errors.New("duplicate command found")
	// ErrCommandNotFound is the sentinel error wrapped by CommandNotFoundError.
	ErrCommandNotFound = errors.New("command not found")
	// ErrInvalidCommandStructure is the sentinel error wrapped by InvalidCommandStructureError.
	ErrInvalidCommandStructure = errors.New("invalid command structure")
)

type (
	// DuplicateCommandError is returned by Merge when a command name is already
	// defined in the same domain. The category is deliberately not part of the
	// identity. It wraps ErrDuplicateCommand for errors.Is() compatibility.
	DuplicateCommandError struct {
		Domain  string
		Command string
	}

	// CommandNotFoundError is returned when an address does not resolve to exactly
	// one command. Label is the address as the user typed it: "name",
	// "domain.name" or "domain.category.name". Ambiguous bare names are reported
	// with this same error.
	// It wraps ErrCommandNotFound for errors.Is() compatibility.
	CommandNotFoundError struct {
		Label string
	}

	// InvalidCommandStructureError is returned when the address has fewer than
	// MinAddressTokens or more than MaxAddressTokens tokens.
	// It wraps ErrInvalidCommandStructure for errors.Is() compatibility.
	InvalidCommandStructureError struct {
		Tokens int
	}
)

// Error implements the error interface.
func (e *DuplicateCommandError) Error() string {
	return fmt.Sprintf("%s: %s.%s", ErrDuplicateCommand, e.Domain, e.Command)
}

// Unwrap returns ErrDuplicateCommand so callers can use errors.Is for classification.
func (e *DuplicateCommandError) Unwrap() error { return ErrDuplicateCommand }

// Error implements the error interface.
func (e *CommandNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrCommandNotFound, e.Label)
}

// Unwrap returns ErrCommandNotFound so callers can use errors.Is for classification.
func (e *CommandNotFoundError) Unwrap() error { return ErrCommandNotFound }

// Error implements the error interface.
func (e *InvalidCommandStructureError) Error() string {
	return fmt.Sprintf("%s: expected %d to %d arguments, got %d",
		ErrInvalidCommandStructure, MinAddressTokens, MaxAddressTokens, e.Tokens)
}

// Unwrap returns ErrInvalidCommandStructure so callers can use errors.Is for classification.
func (e *InvalidCommandStructureError) Unwrap() error { return ErrInvalidCommandStructure }
