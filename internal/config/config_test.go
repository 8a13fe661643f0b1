package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.False(t, Exists())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.WindowDays = 7
	cfg.Storage.Backend = BackendSQLite
	cfg.Appearance.Theme = "tokyo-night"
	cfg.Categories.Suggestions = []string{"Body", "Mind"}
	require.NoError(t, Save(cfg))
	assert.True(t, Exists())

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, got)

	info, err := os.Stat(Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "habitrack"), 0o755))
	require.NoError(t, os.WriteFile(Path(), []byte("[general]\nwindow_days = 14\n"), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 14, cfg.General.WindowDays)
	assert.Equal(t, BackendJSON, cfg.Storage.Backend)
	assert.Equal(t, "flexoki-dark", cfg.Appearance.Theme)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "habitrack"), 0o755))
	require.NoError(t, os.WriteFile(Path(), []byte("[general\n"), 0o600))

	_, err := Load()
	assert.ErrorContains(t, err, "parsing config")
}

func TestDataPath(t *testing.T) {
	t.Setenv(DataFileEnv, "")

	cfg := DefaultConfig()
	assert.Equal(t, DefaultDataFile, DataPath(cfg))

	cfg.Storage.Backend = BackendSQLite
	assert.Equal(t, DefaultSQLiteFile, DataPath(cfg))

	cfg.Storage.Path = "/tmp/custom.db"
	assert.Equal(t, "/tmp/custom.db", DataPath(cfg))

	t.Setenv(DataFileEnv, "/tmp/env.json")
	assert.Equal(t, "/tmp/env.json", DataPath(cfg))
}

func TestCategories(t *testing.T) {
	fallback := []string{"A", "B"}
	cfg := DefaultConfig()
	assert.Equal(t, fallback, Categories(cfg, fallback))

	cfg.Categories.Suggestions = []string{"X"}
	assert.Equal(t, []string{"X"}, Categories(cfg, fallback))
}
