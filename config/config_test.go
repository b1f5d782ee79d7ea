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
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadLayersOverDefaults(t *testing.T) {
	path := writeConfig(t, "dialect = \"html\"\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "html", cfg.Dialect)
	assert.Equal(t, 18.0, cfg.Header.BaseSize)
	assert.Equal(t, 4.0, cfg.Header.LevelStep)
}

func TestLoadFull(t *testing.T) {
	path := writeConfig(t, `
dialect = "markdown"

[header]
base_size = 24
level_step = 2
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 24.0, cfg.Header.BaseSize)
	assert.Equal(t, 2.0, cfg.Header.LevelStep)
}

func TestLoadRejectsUnknownDialect(t *testing.T) {
	path := writeConfig(t, "dialect = \"latex\"\n")
	_, err := Load(path)
	assert.ErrorContains(t, err, "unknown dialect")
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := writeConfig(t, "dialect = [broken\n")
	_, err := Load(path)
	assert.Error(t, err)
}
