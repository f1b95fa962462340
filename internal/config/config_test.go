package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "en", cfg.General.Language)
	assert.Equal(t, "auto", cfg.Display.ByteUnit)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "evos.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
general:
  language: zh
display:
  byte_unit: mb
log:
  level: debug
  file: /tmp/evos.log
`), 0644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "zh", cfg.General.Language)
	assert.Equal(t, "mb", cfg.Display.ByteUnit)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/evos.log", cfg.Log.File)
}

func TestLoad_ExplicitPathMustExist(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Error(t, err)
}

func TestLoad_RejectsUnknownByteUnit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "evos.yaml")
	require.NoError(t, os.WriteFile(path, []byte("display:\n  byte_unit: parsec\n"), 0644))

	_, err := Load(path)

	assert.ErrorContains(t, err, "byte unit")
}

func TestLoad_RejectsUnknownLanguage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "evos.yaml")
	require.NoError(t, os.WriteFile(path, []byte("general:\n  language: fr\n"), 0644))

	_, err := Load(path)

	assert.ErrorContains(t, err, "language")
}
