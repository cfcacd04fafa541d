// Package config provides unified configuration for the colony analytics
// ingest tool.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds the full ingest configuration.
type Config struct {
	// Bucket is the telemetry bucket name (S3 bucket, or the logical root
	// for local storage).
	Bucket string `json:"bucket" yaml:"bucket" env:"BUCKET"`

	// OutputDir is the local directory for per-colony Parquet output.
	OutputDir string `json:"output_dir" yaml:"output_dir" env:"OUTPUT_DIR"`

	// CatalogPath is the path to the SQLite run catalog.
	CatalogPath string `json:"catalog_path" yaml:"catalog_path" env:"CATALOG_PATH"`

	// Storage configuration
	Storage StorageConfig `json:"storage" yaml:"storage" envPrefix:"STORAGE_"`

	// Cache configuration
	Cache CacheConfig `json:"cache" yaml:"cache" envPrefix:"CACHE_"`

	// Log configuration
	Log LogConfig `json:"log" yaml:"log" envPrefix:"LOG_"`
}

// StorageConfig holds storage configuration.
type StorageConfig struct {
	// Type is the storage type: local, s3
	Type string `json:"type" yaml:"type" env:"TYPE"`

	// Path is the local storage root (for local type)
	Path string `json:"path" yaml:"path" env:"PATH"`

	// S3 configuration (for s3 type)
	S3 S3Config `json:"s3" yaml:"s3" envPrefix:"S3_"`
}

// S3Config holds S3 storage configuration.
type S3Config struct {
	// Region is the AWS region
	Region string `json:"region" yaml:"region" env:"REGION"`

	// Endpoint is the S3 endpoint (for S3-compatible storage)
	Endpoint string `json:"endpoint" yaml:"endpoint" env:"ENDPOINT"`

	// UsePathStyle enables path-style addressing (required for MinIO)
	UsePathStyle bool `json:"use_path_style" yaml:"use_path_style" env:"USE_PATH_STYLE"`
}

// CacheConfig holds the raw-object fetch cache configuration.
type CacheConfig struct {
	// Enabled controls whether fetched objects are cached locally
	Enabled bool `json:"enabled" yaml:"enabled" env:"ENABLED"`

	// Dir is the cache directory
	Dir string `json:"dir" yaml:"dir" env:"DIR"`

	// MaxBytes is the maximum total size of cached objects
	MaxBytes int64 `json:"max_bytes" yaml:"max_bytes" env:"MAX_BYTES"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	// Level is the minimum log level: debug, info, warn, error
	Level string `json:"level" yaml:"level" env:"LEVEL"`

	// Format is the output format: console, json
	Format string `json:"format" yaml:"format" env:"FORMAT"`
}

// DefaultConfig returns the default configuration for local development.
func DefaultConfig() *Config {
	return &Config{
		Bucket:      "distributed-colony",
		OutputDir:   filepath.Join("output", "bi"),
		CatalogPath: "",
		Storage: StorageConfig{
			Type: "s3",
			Path: "",
			S3: S3Config{
				Region: "us-east-1",
			},
		},
		Cache: CacheConfig{
			Enabled:  false,
			Dir:      "",
			MaxBytes: 1 * 1024 * 1024 * 1024,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadFromFile loads configuration from a YAML or JSON file on top of the
// defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", ext)
	}

	return cfg, nil
}

// LoadFromEnv overlays configuration from environment variables.
// Environment variables use the COLONY_ prefix, e.g. COLONY_BUCKET,
// COLONY_STORAGE_TYPE, COLONY_STORAGE_S3_REGION, COLONY_LOG_LEVEL.
func LoadFromEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "COLONY_"}); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	return nil
}

// Resolve fills in derived paths based on OutputDir.
func (c *Config) Resolve() {
	if c.OutputDir == "" {
		c.OutputDir = filepath.Join("output", "bi")
	}
	if c.CatalogPath == "" {
		c.CatalogPath = filepath.Join(c.OutputDir, "runs.db")
	}
	if c.Cache.Dir == "" {
		c.Cache.Dir = filepath.Join(c.OutputDir, "cache")
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Bucket == "" {
		return fmt.Errorf("bucket is required")
	}

	if c.Storage.Type != "local" && c.Storage.Type != "s3" {
		return fmt.Errorf("invalid storage type: %s (must be local or s3)", c.Storage.Type)
	}

	if c.Storage.Type == "local" && c.Storage.Path == "" {
		return fmt.Errorf("storage.path is required when storage type is local")
	}

	if c.Cache.Enabled && c.Cache.MaxBytes <= 0 {
		return fmt.Errorf("cache.max_bytes must be positive, got %d", c.Cache.MaxBytes)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	return nil
}

// EnsureDirectories creates all required directories.
func (c *Config) EnsureDirectories() error {
	dirs := []string{c.OutputDir, filepath.Dir(c.CatalogPath)}
	if c.Cache.Enabled {
		dirs = append(dirs, c.Cache.Dir)
	}

	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}
