package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 3000, cfg.HTTP.Port)
	assert.Equal(t, "file", cfg.Storage)
	assert.Equal(t, "db.json", cfg.File.DBPath)
	assert.Equal(t, "uploads", cfg.File.UploadDir)
	assert.Equal(t, "public", cfg.PublicDir)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
backend:
  host: 127.0.0.1
  port: 9300
  storage: redis
  log_level: debug
  redis:
    addr: 10.0.0.5:6379
    db: 2
    key: registry:db
    blob_prefix: "registry:blob:"
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.HTTP.Host)
	assert.Equal(t, 9300, cfg.HTTP.Port)
	assert.Equal(t, "redis", cfg.Storage)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "10.0.0.5:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "registry:db", cfg.Redis.Key)
	assert.Equal(t, "registry:blob:", cfg.Redis.BlobPrefix)
	// untouched keys keep their defaults
	assert.Equal(t, "db.json", cfg.File.DBPath)
}

func TestLoadRejectsUnknownStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend:\n  storage: mongo\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
