package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(path, []byte(content), 0o644)
	require.NoError(t, err)
	return path
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeConfig(t, `{
		"base_url": "https://staging.aktus.ai",
		"provider": "Acme",
		"quiet": true
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://staging.aktus.ai", cfg.BaseURL)
	assert.Equal(t, "Acme", cfg.Provider)
	assert.True(t, cfg.Quiet)
	assert.False(t, cfg.Compact)
}

func TestLoad_MissingFileIsEmptyConfig(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoad_EmptyPathIsEmptyConfig(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{ invalid json }`)

	cfg, err := Load(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_SchemaViolation(t *testing.T) {
	path := writeConfig(t, `{"base_url": 12345}`)

	cfg, err := Load(path)
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "base_url")
}

func TestLoad_UnknownFieldRejected(t *testing.T) {
	path := writeConfig(t, `{"base_ur1": "https://typo.example"}`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestResolveBaseURL_Precedence(t *testing.T) {
	cfg := &Config{BaseURL: "https://from-config"}

	// flag wins over everything
	assert.Equal(t, "https://from-flag",
		ResolveBaseURL("https://from-flag", "https://from-session", cfg))

	// env wins over session and config
	t.Setenv(EnvBaseURL, "https://from-env")
	assert.Equal(t, "https://from-env", ResolveBaseURL("", "https://from-session", cfg))

	// session wins over config
	t.Setenv(EnvBaseURL, "")
	assert.Equal(t, "https://from-session", ResolveBaseURL("", "https://from-session", cfg))

	// config is last before the built-in default
	assert.Equal(t, "https://from-config", ResolveBaseURL("", "", cfg))

	// nothing set: empty string, the API client substitutes the default
	assert.Equal(t, "", ResolveBaseURL("", "", &Config{}))
}
