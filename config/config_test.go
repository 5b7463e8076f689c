package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "islands.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_DefaultsWhenUnset(t *testing.T) {
	t.Setenv(EnvPath, "")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_PartialFile(t *testing.T) {
	path := writeConfig(t, `
export:
  compression: zstd
  zstd_level: 9
noise:
  threshold: 0.6
log:
  level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "zstd", cfg.Export.Compression)
	assert.Equal(t, 9, cfg.Export.ZstdLevel)
	assert.Equal(t, "islandtool", cfg.Export.Generator)
	assert.True(t, cfg.Export.Normals)
	assert.InDelta(t, 0.6, cfg.Noise.Threshold, 1e-9)
	assert.Equal(t, int32(3), cfg.Noise.Octaves)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_FromEnv(t *testing.T) {
	path := writeConfig(t, "export:\n  generator: test-gen\n")
	t.Setenv(EnvPath, path)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "test-gen", cfg.Export.Generator)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(writeConfig(t, "export:\n  compression: lz4\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "noise:\n  threshold: 2\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "export: [\n"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")
	_, err := Load(path)
	require.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), path)
}
