// ABOUTME: Repository layer contracts for loading host-supplied settings
// ABOUTME: Settings come from the environment or a file, never a database

package repository

import (
	"context"

	"miniflux-connector/models"
)

// Settings bundles the credentials and filter options the host would
// otherwise inject as ambient configuration variables
type Settings struct {
	Credentials models.Credentials `yaml:"credentials"`
	Options     models.Options     `yaml:"options"`
}

// SettingsRepository loads the connector settings from a backing source
type SettingsRepository interface {
	// Load reads the current settings. Incomplete settings are not an
	// error: verification needs to see partial input.
	Load(ctx context.Context) (*Settings, error)
	// Exists reports whether the source has any settings at all
	Exists(ctx context.Context) bool
	// SourceDescription names the backing source for logging
	SourceDescription() string
}
