// SPDX-License-Identifier: MPL-2.0

// Package cmd implements the humor command line.
//
//	humor [flags] <command>...
//
// The positional tokens address one command in the merged humorfile tree
// (bare name, domain and name, or domain, category and name). The resolved
// shell string is printed and executed, and its standard output is echoed.
package cmd
