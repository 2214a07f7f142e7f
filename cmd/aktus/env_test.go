package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aktus/pipeline-cli/internal/api"
	"github.com/aktus/pipeline-cli/internal/config"
	"github.com/aktus/pipeline-cli/internal/session"
)

// isolate points HOME at a fresh temp dir and resets the global flags so
// each test sees a clean environment.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(config.EnvBaseURL, "")

	flagBaseURL = ""
	flagCompact = false
	flagQuiet = false
	t.Cleanup(func() {
		flagBaseURL = ""
		flagCompact = false
		flagQuiet = false
	})
	return home
}

func TestNewCommandEnv_Defaults(t *testing.T) {
	isolate(t)

	env, err := newCommandEnv()
	require.NoError(t, err)
	assert.Equal(t, api.DefaultBaseURL, env.client.BaseURL())
	assert.Empty(t, env.client.Token())
	assert.False(t, env.printer.Quiet())
}

func TestNewCommandEnv_UsesStoredSession(t *testing.T) {
	home := isolate(t)

	store := session.NewStore(filepath.Join(home, session.DefaultFileName))
	require.NoError(t, store.Save(&session.Session{Token: "tok", BaseURL: "https://issued.example"}))

	env, err := newCommandEnv()
	require.NoError(t, err)
	assert.Equal(t, "https://issued.example", env.client.BaseURL())
	assert.Equal(t, "tok", env.client.Token())
}

func TestNewCommandEnv_FlagOverridesSession(t *testing.T) {
	home := isolate(t)

	store := session.NewStore(filepath.Join(home, session.DefaultFileName))
	require.NoError(t, store.Save(&session.Session{Token: "tok", BaseURL: "https://issued.example"}))
	flagBaseURL = "https://flag.example"

	env, err := newCommandEnv()
	require.NoError(t, err)
	assert.Equal(t, "https://flag.example", env.client.BaseURL())
	assert.Equal(t, "tok", env.client.Token(), "overriding the URL keeps the token")
}

func TestNewCommandEnv_ConfigFileModes(t *testing.T) {
	home := isolate(t)

	require.NoError(t, os.MkdirAll(filepath.Join(home, ".aktus"), 0o755))
	err := os.WriteFile(filepath.Join(home, ".aktus", "config.json"),
		[]byte(`{"quiet": true, "base_url": "https://cfg.example"}`), 0o644)
	require.NoError(t, err)

	env, err := newCommandEnv()
	require.NoError(t, err)
	assert.True(t, env.printer.Quiet())
	assert.Equal(t, "https://cfg.example", env.client.BaseURL())
}

func TestNewCommandEnv_RejectsBrokenConfigFile(t *testing.T) {
	home := isolate(t)

	require.NoError(t, os.MkdirAll(filepath.Join(home, ".aktus"), 0o755))
	err := os.WriteFile(filepath.Join(home, ".aktus", "config.json"),
		[]byte(`{"base_url": 42}`), 0o644)
	require.NoError(t, err)

	_, err = newCommandEnv()
	assert.Error(t, err)
}
