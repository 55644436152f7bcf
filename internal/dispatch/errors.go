// SPDX-License-Identifier: MPL-2.0

package dispatch

import (
	"errors"
	"fmt"

	"github.com/humors/humor/internal/runtime"
)

// ErrCommandExecutionFailed is the sentinel error wrapped by CommandExecutionFailedError.
var ErrCommandExecutionFailed = errors.New("command execution failed")

// CommandExecutionFailedError is returned when a resolved command exits with
// a non-zero status or cannot be started. It wraps ErrCommandExecutionFailed
// for errors.Is() compatibility; the runtime error, if any, is reachable
// through Cause.
type CommandExecutionFailedError struct {
	Command  string
	ExitCode runtime.ExitCode
	Stderr   string
	Err      error
}

// Error implements the error interface.
func (e *CommandExecutionFailedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("command execution failed: %v", e.Err)
	}
	return fmt.Sprintf("command execution failed: exit status %d", e.ExitCode)
}

// Unwrap returns ErrCommandExecutionFailed and the underlying runtime error.
func (e *CommandExecutionFailedError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrCommandExecutionFailed}
	}
	return []error{ErrCommandExecutionFailed, e.Err}
}
