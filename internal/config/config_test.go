package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "distributed-colony", cfg.Bucket)
	assert.Equal(t, filepath.Join("output", "bi"), cfg.OutputDir)
	assert.Equal(t, "s3", cfg.Storage.Type)
	assert.Equal(t, "us-east-1", cfg.Storage.S3.Region)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, int64(1*1024*1024*1024), cfg.Cache.MaxBytes)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)

	assert.NoError(t, cfg.Validate())
}

func TestLoadFromFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
bucket: my-colonies
output_dir: /tmp/bi
storage:
  type: local
  path: /tmp/bucket
cache:
  enabled: true
  max_bytes: 1048576
log:
  level: debug
`), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "my-colonies", cfg.Bucket)
	assert.Equal(t, "/tmp/bi", cfg.OutputDir)
	assert.Equal(t, "local", cfg.Storage.Type)
	assert.Equal(t, "/tmp/bucket", cfg.Storage.Path)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, int64(1048576), cfg.Cache.MaxBytes)
	assert.Equal(t, "debug", cfg.Log.Level)
	// Unset fields keep their defaults.
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadFromFile_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"bucket": "json-colonies",
		"storage": {"type": "s3", "s3": {"region": "eu-west-1", "use_path_style": true}}
	}`), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "json-colonies", cfg.Bucket)
	assert.Equal(t, "eu-west-1", cfg.Storage.S3.Region)
	assert.True(t, cfg.Storage.S3.UsePathStyle)
}

func TestLoadFromFile_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("bucket = \"x\""), 0644))

	_, err := LoadFromFile(path)
	assert.Error(t, err)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("COLONY_BUCKET", "env-colonies")
	t.Setenv("COLONY_STORAGE_TYPE", "local")
	t.Setenv("COLONY_STORAGE_PATH", "/tmp/bucket")
	t.Setenv("COLONY_STORAGE_S3_REGION", "ap-south-1")
	t.Setenv("COLONY_CACHE_ENABLED", "true")
	t.Setenv("COLONY_LOG_LEVEL", "warn")

	cfg := DefaultConfig()
	require.NoError(t, LoadFromEnv(cfg))

	assert.Equal(t, "env-colonies", cfg.Bucket)
	assert.Equal(t, "local", cfg.Storage.Type)
	assert.Equal(t, "/tmp/bucket", cfg.Storage.Path)
	assert.Equal(t, "ap-south-1", cfg.Storage.S3.Region)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestResolve_DerivedPaths(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OutputDir = filepath.Join("out", "bi")
	cfg.Resolve()

	assert.Equal(t, filepath.Join("out", "bi", "runs.db"), cfg.CatalogPath)
	assert.Equal(t, filepath.Join("out", "bi", "cache"), cfg.Cache.Dir)

	// Explicit paths are never overridden.
	cfg = DefaultConfig()
	cfg.CatalogPath = "/var/lib/colony/runs.db"
	cfg.Cache.Dir = "/var/cache/colony"
	cfg.Resolve()
	assert.Equal(t, "/var/lib/colony/runs.db", cfg.CatalogPath)
	assert.Equal(t, "/var/cache/colony", cfg.Cache.Dir)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"missing bucket", func(c *Config) { c.Bucket = "" }, "bucket is required"},
		{"bad storage type", func(c *Config) { c.Storage.Type = "ftp" }, "invalid storage type"},
		{"local without path", func(c *Config) { c.Storage.Type = "local" }, "storage.path is required"},
		{"cache without budget", func(c *Config) { c.Cache.Enabled = true; c.Cache.MaxBytes = 0 }, "cache.max_bytes"},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }, "invalid log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEnsureDirectories(t *testing.T) {
	base := t.TempDir()
	cfg := DefaultConfig()
	cfg.OutputDir = filepath.Join(base, "out", "bi")
	cfg.Cache.Enabled = true
	cfg.Resolve()

	require.NoError(t, cfg.EnsureDirectories())
	assert.DirExists(t, cfg.OutputDir)
	assert.DirExists(t, cfg.Cache.Dir)
}
