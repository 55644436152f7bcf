// SPDX-License-Identifier: MPL-2.0

// Package runtime executes resolved humor commands.
//
// Two runtimes implement the Runtime interface:
//   - native: hands the command string to the host shell ("sh -c" on POSIX,
//     "cmd /C" on Windows, or a configured shell)
//   - virtual: interprets the command with the embedded mvdan/sh interpreter,
//     giving POSIX shell semantics on every platform
//
// Both capture stdout and stderr and report the exit status in a Result.
// A non-zero exit is not an error at this level; Result.Error is reserved
// for failures to run the command at all.
package runtime
