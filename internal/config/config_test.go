package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigCreatesDefault(t *testing.T) {
	t.Setenv("SAKHA_HOME", t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DefaultServerURL, cfg.ServerURL)
	assert.Equal(t, DefaultModes, cfg.Modes)
	assert.Empty(t, cfg.PersistedLanguage(), "no language until the user picks one")
}

func TestSetLanguagePersistsAcrossLoads(t *testing.T) {
	t.Setenv("SAKHA_HOME", t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NoError(t, cfg.SetLanguage("ta"))

	reloaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "ta", reloaded.PersistedLanguage())
}

func TestSetLanguageDoesNotPersistSessionOverrides(t *testing.T) {
	t.Setenv("SAKHA_HOME", t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	// A flag override mutates only the in-memory config
	cfg.ServerURL = "http://session-override:9999"
	require.NoError(t, cfg.SetLanguage("hi"))

	reloaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "hi", reloaded.PersistedLanguage())
	assert.Equal(t, DefaultServerURL, reloaded.ServerURL)
	assert.Equal(t, "http://session-override:9999", cfg.ServerURL, "the override survives for the session")
}

func TestConfigFileLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("SAKHA_HOME", home)

	_, err := LoadConfig()
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(home, ".sakha", "config.json"))
	assert.NoError(t, err)
}

func TestLogPathSitsNextToConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("SAKHA_HOME", home)

	logPath, err := LogPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".sakha", "sakha.log"), logPath)
}

func TestLoadConfigPreservesExistingValues(t *testing.T) {
	home := t.TempDir()
	t.Setenv("SAKHA_HOME", home)

	require.NoError(t, os.MkdirAll(filepath.Join(home, ".sakha"), 0755))
	data := []byte(`{"server_url": "http://sakha.example:8080", "sakha-language": "pa"}`)
	require.NoError(t, os.WriteFile(filepath.Join(home, ".sakha", "config.json"), data, 0600))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://sakha.example:8080", cfg.ServerURL)
	assert.Equal(t, "pa", cfg.PersistedLanguage())
	assert.Equal(t, DefaultModes, cfg.Modes, "missing modes fall back to the default set")
}
