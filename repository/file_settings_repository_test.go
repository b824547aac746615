package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"miniflux-connector/models"
)

func writeSettingsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFileSettingsRepository_Load(t *testing.T) {
	path := writeSettingsFile(t, `
credentials:
  base_url: https://reader.example.com
  username: admin
  password: test123
options:
  limit: 25
  recent_days: 14
  category_ids: "3,7"
  action_mode: classic
`)

	repo := NewFileSettingsRepository(path, nil)
	settings, err := repo.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Settings{
		Credentials: models.Credentials{
			BaseURL:  "https://reader.example.com",
			Username: "admin",
			Password: "test123",
		},
		Options: models.Options{
			Limit:       25,
			RecentDays:  14,
			CategoryIDs: "3,7",
			ActionMode:  models.ActionModeClassic,
		},
	}, *settings)
	assert.Equal(t, models.AuthSchemeBasic, settings.Credentials.Scheme())
}

func TestFileSettingsRepository_LoadPartialFile(t *testing.T) {
	// A file with only the URL mirrors a user mid-way through setup
	path := writeSettingsFile(t, `
credentials:
  base_url: https://reader.example.com
`)

	repo := NewFileSettingsRepository(path, nil)
	settings, err := repo.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"api_token or username"}, settings.Credentials.MissingFields())
}

func TestFileSettingsRepository_LoadMissingFile(t *testing.T) {
	repo := NewFileSettingsRepository(filepath.Join(t.TempDir(), "absent.yaml"), nil)

	_, err := repo.Load(context.Background())
	assert.Error(t, err)
	assert.False(t, repo.Exists(context.Background()))
}

func TestFileSettingsRepository_LoadMalformedFile(t *testing.T) {
	path := writeSettingsFile(t, "credentials: [not a mapping")

	repo := NewFileSettingsRepository(path, nil)
	_, err := repo.Load(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse settings file")
}

func TestFileSettingsRepository_Exists(t *testing.T) {
	path := writeSettingsFile(t, "credentials: {}")

	repo := NewFileSettingsRepository(path, nil)
	assert.True(t, repo.Exists(context.Background()))
}
