package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "", cfg.SeedPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 12, cfg.TableHeight)
	assert.Equal(t, "data/visible.xlsx", cfg.ExportPath)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed_path: items.xlsx\nlog_level: debug\ntable_height: 20\n"), 0o644))
	t.Setenv("CATALOG_LOG_LEVEL", "warn")
	t.Setenv("CATALOG_DB_PATH", "/tmp/catalog.db")

	cfg, err := load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "items.xlsx", cfg.SeedPath)
	assert.Equal(t, "warn", cfg.LogLevel, "environment beats file")
	assert.Equal(t, "/tmp/catalog.db", cfg.DBPath)
	assert.Equal(t, 20, cfg.TableHeight)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{LogLevel: "chatty", TableHeight: 0}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_level")
	assert.Contains(t, err.Error(), "table_height")
}
