package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	svc := NewConfigService()

	cfg := DefaultConfig()
	cfg.ServerURL = "http://library.example:8000"
	cfg.Username = "admin"
	cfg.Search.DebounceMillis = 500

	require.NoError(t, svc.SaveToPath(cfg, path))

	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, "http://library.example:8000", loaded.ServerURL)
	require.Equal(t, "admin", loaded.Username)
	require.Equal(t, 500, loaded.Search.DebounceMillis)
	require.True(t, loaded.UISettings.ConfirmDeletes)
}

func TestLoadFromPathMissingFile(t *testing.T) {
	svc := NewConfigService()
	_, err := svc.LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestLoadAppliesDefaultsToSparseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	sparse := []byte("version = 1\nserver_url = \"http://localhost:9000\"\n")
	require.NoError(t, os.WriteFile(path, sparse, 0o644))

	svc := NewConfigService()
	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, "http://localhost:9000", loaded.ServerURL)
	require.Equal(t, 1000, loaded.Search.DebounceMillis)
	require.Equal(t, 3, loaded.Search.MinQueryLength)
	require.Equal(t, 10, loaded.Search.HistoryLimit)
	require.Equal(t, 15, loaded.Search.TimeoutSeconds)
}

func TestSaveCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "config.toml")
	svc := NewConfigService()
	require.NoError(t, svc.SaveToPath(DefaultConfig(), path))

	_, err := os.Stat(path)
	require.NoError(t, err)
}
