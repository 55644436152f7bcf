// SPDX-License-Identifier: MPL-2.0

// Package dispatch resolves a command address against a merged command tree
// and hands the resulting shell string to a runtime.
//
// The address is the list of positional tokens from the command line. One,
// two or three tokens select a bare, domain-scoped or fully qualified lookup
// respectively. A command that exits with a non-zero status is reported as a
// CommandExecutionFailedError carrying the exit code and captured stderr.
package dispatch
