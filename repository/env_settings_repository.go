// ABOUTME: Loads connector settings from MINIFLUX_* environment variables
// ABOUTME: Mirrors how the host surfaces user-entered settings to the plugin

package repository

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"miniflux-connector/models"
)

// EnvSettingsRepository reads settings from environment variables
type EnvSettingsRepository struct {
	logger *slog.Logger
}

// NewEnvSettingsRepository creates an environment-backed settings repository
func NewEnvSettingsRepository(logger *slog.Logger) *EnvSettingsRepository {
	if logger == nil {
		logger = slog.Default()
	}

	return &EnvSettingsRepository{logger: logger}
}

// Load reads settings from the environment. Missing fields stay empty so
// the verification flow can observe partially entered settings.
func (r *EnvSettingsRepository) Load(ctx context.Context) (*Settings, error) {
	settings := &Settings{
		Credentials: models.Credentials{
			BaseURL:  os.Getenv("MINIFLUX_URL"),
			APIToken: os.Getenv("MINIFLUX_API_TOKEN"),
			Username: os.Getenv("MINIFLUX_USERNAME"),
			Password: os.Getenv("MINIFLUX_PASSWORD"),
		},
		Options: models.Options{
			CategoryIDs: os.Getenv("MINIFLUX_CATEGORY_IDS"),
			ActionMode:  models.ActionMode(strings.ToLower(os.Getenv("MINIFLUX_ACTION_MODE"))),
		},
	}

	if raw := os.Getenv("MINIFLUX_LIMIT"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			settings.Options.Limit = limit
		} else {
			r.logger.Warn("Ignoring invalid MINIFLUX_LIMIT", "value", raw)
		}
	}

	if raw := os.Getenv("MINIFLUX_RECENT_DAYS"); raw != "" {
		if days, err := strconv.Atoi(raw); err == nil && days > 0 {
			settings.Options.RecentDays = days
		} else {
			r.logger.Warn("Ignoring invalid MINIFLUX_RECENT_DAYS", "value", raw)
		}
	}

	r.logger.Debug("Loaded settings from environment",
		"has_base_url", settings.Credentials.BaseURL != "",
		"auth_scheme", string(settings.Credentials.Scheme()),
		"limit", settings.Options.EffectiveLimit(),
		"action_mode", string(settings.Options.EffectiveActionMode()))

	return settings, nil
}

// Exists reports whether any connection setting is present
func (r *EnvSettingsRepository) Exists(ctx context.Context) bool {
	return os.Getenv("MINIFLUX_URL") != "" ||
		os.Getenv("MINIFLUX_API_TOKEN") != "" ||
		os.Getenv("MINIFLUX_USERNAME") != ""
}

// SourceDescription names the backing source for logging
func (r *EnvSettingsRepository) SourceDescription() string {
	return "environment variables (MINIFLUX_URL, MINIFLUX_API_TOKEN, MINIFLUX_USERNAME, MINIFLUX_PASSWORD)"
}
