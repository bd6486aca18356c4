package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, float32(0.5), cfg.Pipeline.Threshold)
	assert.Equal(t, 5, cfg.Pipeline.MinWords)
	assert.Equal(t, 30*time.Second, cfg.Pipeline.StageTimeout)
	assert.Equal(t, 64, cfg.Ingest.BatchSize)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level: debug
pipeline:
  threshold: 0.3
weather:
  api_key: abc
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, float32(0.3), cfg.Pipeline.Threshold)
	assert.Equal(t, "abc", cfg.Weather.APIKey)
	// Untouched sections keep their defaults.
	assert.Equal(t, 5, cfg.Pipeline.MinWords)
	assert.Equal(t, "./agriassist-db", cfg.DB.Path)
}

func TestLoad_InvalidValuesRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
pipeline:
  threshold: 3.0
`), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`{not yaml`), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
