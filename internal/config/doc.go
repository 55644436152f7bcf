// SPDX-License-Identifier: MPL-2.0

// Package config loads humor's application settings using Viper.
//
// Settings come from three layers, later ones winning: built-in defaults, an
// optional file at ~/.humors/settings.yaml (or settings.toml), and HUMOR_*
// environment variables. Command-line flags are applied on top by the CLI.
// The command tree itself is not configured here; see package humorfile.
package config
