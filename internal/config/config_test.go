package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Nil(t, cfg.Shell.Lang)
	assert.Nil(t, cfg.Auth.Provider)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	require.Error(t, err)
}

func TestLoadConfigDecodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[shell]
lang = "fr"
timer-minutes = 50

[auth]
provider = "local"

[sync]
enabled = true
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Shell.Lang)
	assert.Equal(t, "fr", *cfg.Shell.Lang)
	require.NotNil(t, cfg.Shell.TimerMinutes)
	assert.Equal(t, 50, *cfg.Shell.TimerMinutes)
	require.NotNil(t, cfg.Auth.Provider)
	assert.Equal(t, "local", *cfg.Auth.Provider)
	require.NotNil(t, cfg.Sync.Enabled)
	assert.True(t, *cfg.Sync.Enabled)
}

func TestLoadConfigRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[shell\nlang ="), 0o644))
	_, err := LoadConfig(path)
	require.Error(t, err)
}

func unsetForTest(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadSecretsFromDotenv(t *testing.T) {
	unsetForTest(t, "FIREBASE_API_KEY", "FIREBASE_PROJECT_ID", "FIREBASE_IDENTITY_URL", "AETHERIS_REDIS_URL")
	t.Setenv("FIREBASE_PROJECT_ID", "from-env")

	path := filepath.Join(t.TempDir(), ".env")
	body := "FIREBASE_API_KEY=abc123\nFIREBASE_PROJECT_ID=from-file\nAETHERIS_REDIS_URL=redis://localhost:6379/0\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	s, err := LoadSecrets(path, filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "abc123", s.FirebaseAPIKey)
	assert.Equal(t, "from-env", s.FirebaseProjectID)
	assert.Equal(t, "redis://localhost:6379/0", s.RedisURL)
	assert.Equal(t, "https://identitytoolkit.googleapis.com/v1", s.IdentityBaseURL)
	assert.True(t, s.FirebaseConfigured())
}

func TestFirebaseConfiguredPlaceholder(t *testing.T) {
	assert.False(t, Secrets{}.FirebaseConfigured())
	assert.False(t, Secrets{FirebaseAPIKey: "YOUR_API_KEY_HERE"}.FirebaseConfigured())
	assert.True(t, Secrets{FirebaseAPIKey: "k"}.FirebaseConfigured())
}

func TestDefaultPathsHonorXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_DATA_HOME", "/data")
	t.Setenv("XDG_STATE_HOME", "/state")
	assert.Equal(t, filepath.Join("/cfg", "aetheris", "config.toml"), DefaultConfigPath())
	assert.Equal(t, filepath.Join("/data", "aetheris", "aetheris.db"), DefaultDBPath())
	assert.Equal(t, filepath.Join("/state", "aetheris", "aetheris.log"), DefaultLogPath())
}
