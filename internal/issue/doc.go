// SPDX-License-Identifier: MPL-2.0

// Package issue turns humor errors into user-facing messages.
//
// ActionableError carries the failed operation, the resource involved and
// hints for fixing it. Issue holds a Markdown guide per failure kind that the
// CLI renders with glamour when verbose output is requested.
package issue
