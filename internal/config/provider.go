// SPDX-License-Identifier: MPL-2.0

package config

import "context"

// LoadOptions defines explicit settings loading inputs.
type LoadOptions struct {
	// SettingsFilePath forces loading from a specific file when set.
	SettingsFilePath string
	// HomeDir overrides the home directory used to find ~/.humors.
	HomeDir string
	// Runtime replaces the runtime from the file and environment when set.
	// It is validated with the rest of the settings.
	Runtime RuntimeMode
}

// Provider loads settings from explicit options.
type Provider interface {
	Load(ctx context.Context, opts LoadOptions) (*Config, error)
}

type fileProvider struct{}

// NewProvider creates a settings provider.
func NewProvider() Provider {
	return &fileProvider{}
}

// Load reads settings from defaults, the settings file and the environment.
func (p *fileProvider) Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	cfg, _, err := loadWithOptions(ctx, opts)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
