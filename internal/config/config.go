// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/humors/humor/internal/issue"
)

const (
	// AppName is the application name.
	AppName = "humor"
	// EnvPrefix prefixes the environment variables read by Load.
	EnvPrefix = "HUMOR"
	// SettingsDirName is the directory under the home directory holding
	// settings and the base humorfile.
	SettingsDirName = ".humors"
	// SettingsFileName is the settings file name without extension.
	SettingsFileName = "settings"
)

// settingsExts lists the settings file extensions in lookup order.
var settingsExts = []string{"yaml", "yml", "toml"}

// SettingsDir returns ~/.humors, or the same directory under homeDir when set.
func SettingsDir(homeDir string) (string, error) {
	if homeDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		homeDir = home
	}
	return filepath.Join(homeDir, SettingsDirName), nil
}

// loadWithOptions builds the settings and returns the file they were read
// from, if any.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load settings canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("runtime", defaults.Runtime)
	v.SetDefault("verbose", defaults.Verbose)
	v.SetDefault("shell", defaults.Shell)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	for _, key := range []string{"runtime", "verbose", "shell"} {
		if err := v.BindEnv(key); err != nil {
			return nil, "", fmt.Errorf("failed to bind %s_%s: %w", EnvPrefix, key, err)
		}
	}

	resolvedPath := opts.SettingsFilePath
	if resolvedPath != "" {
		if !fileExists(resolvedPath) {
			return nil, "", issue.NewErrorContext().
				WithOperation("load settings").
				WithResource(resolvedPath).
				WithSuggestion("Verify the settings file path is correct").
				WithIssue(issue.ConfigLoadFailedId).
				Wrap(fmt.Errorf("settings file not found: %s", resolvedPath)).
				BuildError()
		}
	} else {
		resolvedPath = findSettingsFile(opts.HomeDir)
	}

	if resolvedPath != "" {
		v.SetConfigFile(resolvedPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, "", issue.NewErrorContext().
				WithOperation("load settings").
				WithResource(resolvedPath).
				WithSuggestion("Check the file syntax (YAML or TOML, chosen by extension)").
				WithSuggestion("Supported keys are runtime, verbose and shell").
				WithIssue(issue.ConfigLoadFailedId).
				Wrap(err).
				BuildError()
		}
	}

	if opts.Runtime != "" {
		v.Set("runtime", string(opts.Runtime))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse settings: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate settings").
			WithResource(resolvedPath).
			WithSuggestion("Set runtime to \"native\" or \"virtual\"").
			WithIssue(issue.InvalidRuntimeTypeId).
			Wrap(err).
			BuildError()
	}

	return &cfg, resolvedPath, nil
}

// findSettingsFile returns the first settings file present under the
// settings directory, or "" when there is none or home cannot be found.
func findSettingsFile(homeDir string) string {
	dir, err := SettingsDir(homeDir)
	if err != nil {
		return ""
	}
	for _, ext := range settingsExts {
		path := filepath.Join(dir, SettingsFileName+"."+ext)
		if fileExists(path) {
			return path
		}
	}
	return ""
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
