// SPDX-License-Identifier: MPL-2.0

package humorfile

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrFileNotFound is the sentinel error wrapped by FileNotFoundError.
	ErrFileNotFound = errors.New("file not found")
	// ErrParse is the sentinel error wrapped by ParseError.
	ErrParse = errors.New("parsing error")
	// ErrImportCycle is the sentinel error wrapped by ImportCycleError.
	ErrImportCycle = errors.New("import cycle")
)

type (
	// FileNotFoundError is returned when a humorfile (or one of its imports)
	// cannot be read. Path is the path that was tried, after import resolution.
	// It wraps ErrFileNotFound for errors.Is() compatibility.
	FileNotFoundError struct {
		Path string
		// Err is the underlying read error, if any. It is kept for display only.
		Err error
	}

	// ParseError is returned when a humorfile cannot be decoded.
	// It wraps ErrParse for errors.Is() compatibility.
	ParseError struct {
		Path string
		Err  error
	}

	// ImportCycleError is returned when a humorfile imports itself, directly or
	// through other humorfiles. Chain lists the documents from the outermost
	// import down to the repeated one.
	// It wraps ErrImportCycle for errors.Is() compatibility.
	ImportCycleError struct {
		Chain []string
	}
)

// Error implements the error interface.
func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrFileNotFound, e.Path)
}

// Unwrap returns ErrFileNotFound so callers can use errors.Is for classification.
func (e *FileNotFoundError) Unwrap() error { return ErrFileNotFound }

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s in %s: %v", ErrParse, e.Path, e.Err)
}

// Unwrap returns ErrParse so callers can use errors.Is for classification.
func (e *ParseError) Unwrap() error { return ErrParse }

// Cause returns the decoder error.
func (e *ParseError) Cause() error { return e.Err }

// Error implements the error interface.
func (e *ImportCycleError) Error() string {
	return fmt.Sprintf("%s: %s", ErrImportCycle, strings.Join(e.Chain, " -> "))
}

// Unwrap returns ErrImportCycle so callers can use errors.Is for classification.
func (e *ImportCycleError) Unwrap() error { return ErrImportCycle }
