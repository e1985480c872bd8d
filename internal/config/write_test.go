package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDefault(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "trendarr", "config.toml")

	err := WriteDefault(path, false)
	require.NoError(t, err, "WriteDefault failed")

	content, err := os.ReadFile(path)
	require.NoError(t, err, "failed to read written file")

	// Check for key sections
	assert.Contains(t, string(content), "[sonarr]")
	assert.Contains(t, string(content), "[trakt]")
	assert.Contains(t, string(content), "${SONARR_API_KEY:?")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestWriteDefault_CreatesDir(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "nested", "deep", "config.toml")

	err := WriteDefault(path, false)
	require.NoError(t, err, "WriteDefault failed")

	_, err = os.Stat(path)
	assert.False(t, os.IsNotExist(err), "file was not created")
}

func TestWriteDefault_Exists(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("# mine\n"), 0644))

	err := WriteDefault(path, false)
	require.ErrorIs(t, err, ErrExists)

	content, _ := os.ReadFile(path)
	assert.Equal(t, "# mine\n", string(content), "existing file must be kept")

	require.NoError(t, WriteDefault(path, true))
	content, _ = os.ReadFile(path)
	assert.Contains(t, string(content), "[sonarr]")
}

func TestWriteDefault_RoundTrip(t *testing.T) {
	t.Setenv("SONARR_API_KEY", "sonarr-key")
	t.Setenv("TRAKT_CLIENT_ID", "trakt-id")
	t.Setenv("SONARR_HOST", "")

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, WriteDefault(path, false))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "localhost:8989", cfg.Sonarr.Host)
	assert.Equal(t, "sonarr-key", cfg.Sonarr.APIKey)
	assert.Equal(t, "trakt-id", cfg.Trakt.ClientID)
	assert.Empty(t, cfg.Trakt.ClientSecret)
	assert.Equal(t, 100, cfg.Trakt.FetchNum)
	assert.Equal(t, "HD-1080p", cfg.Sync.QualityProfile)
	assert.True(t, cfg.Sync.WarnLookalikes)
	assert.Empty(t, cfg.RequireSonarr())
	assert.Empty(t, cfg.RequireTrakt())
}
