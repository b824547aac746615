// ABOUTME: Loads connector settings from a YAML file on disk
// ABOUTME: Used by standalone runners that keep settings outside the environment

package repository

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// FileSettingsRepository reads settings from a YAML file
type FileSettingsRepository struct {
	path   string
	logger *slog.Logger
}

// NewFileSettingsRepository creates a file-backed settings repository
func NewFileSettingsRepository(path string, logger *slog.Logger) *FileSettingsRepository {
	if logger == nil {
		logger = slog.Default()
	}

	return &FileSettingsRepository{
		path:   path,
		logger: logger,
	}
}

// Load reads and decodes the settings file
func (r *FileSettingsRepository) Load(ctx context.Context) (*Settings, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", r.path, err)
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", r.path, err)
	}

	r.logger.Debug("Loaded settings from file",
		"path", r.path,
		"has_base_url", settings.Credentials.BaseURL != "",
		"auth_scheme", string(settings.Credentials.Scheme()))

	return &settings, nil
}

// Exists reports whether the settings file is present
func (r *FileSettingsRepository) Exists(ctx context.Context) bool {
	_, err := os.Stat(r.path)
	return err == nil
}

// SourceDescription names the backing source for logging
func (r *FileSettingsRepository) SourceDescription() string {
	return "settings file " + r.path
}
