package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 5000, cfg.Depot.DebounceMS)
	assert.Equal(t, "v3_depot", cfg.Depot.LocalKey)
	assert.Equal(t, "depot", cfg.Depot.Table)
	assert.Equal(t, "file", cfg.KV.Driver)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "file", cfg.Catalog.Source)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DEPOT_DEBOUNCE_MS", "250")
	t.Setenv("KV_DRIVER", "redis")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 250, cfg.Depot.DebounceMS)
	assert.Equal(t, "redis", cfg.KV.Driver)
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ".env"), []byte("CATALOG_PATH=/data/items.json\n"), 0o644)
	require.NoError(t, err)
	t.Cleanup(func() { os.Unsetenv("CATALOG_PATH") })

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "/data/items.json", cfg.Catalog.Path)
}
