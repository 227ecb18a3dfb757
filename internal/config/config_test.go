package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadFrom_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("api_url: https://events.example.com/api\nlog_level: debug\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "https://events.example.com/api", cfg.APIURL)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadFrom_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_url: https://file.example.com/api\n"), 0o644))

	t.Setenv("GATHER_API_URL", "https://env.example.com/api")
	t.Setenv("GATHER_GOOGLE_CLIENT_ID", "client-123")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com/api", cfg.APIURL)
	assert.Equal(t, "client-123", cfg.GoogleClientID)
}

func TestLoadFrom_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_url: [broken\n"), 0o644))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}
