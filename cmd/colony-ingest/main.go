// Package main implements the colony-ingest binary: batch conversion of
// per-colony stats shots and events from the telemetry bucket into
// per-colony Parquet tables, with optional re-upload.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/yanivbyd/colony-analytics/internal/catalog"
	"github.com/yanivbyd/colony-analytics/internal/config"
	"github.com/yanivbyd/colony-analytics/internal/ingest"
	"github.com/yanivbyd/colony-analytics/internal/storage"
)

var (
	flagConfig   string
	flagColonyID string
	flagUpload   bool
)

var rootCmd = &cobra.Command{
	Use:   "colony-ingest",
	Short: "Convert colony stats shots and events into per-colony Parquet tables",
	Long: "colony-ingest discovers colonies in the telemetry bucket, normalizes their\n" +
		"stats_shots and events JSON objects into flat rows, and writes per-colony\n" +
		"Parquet tables. By default all colonies are processed; use --colony-id to\n" +
		"limit to one, and --upload to push the tables back to the bucket.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}

		ctx := cmd.Context()

		store, err := newStorage(ctx, cfg)
		if err != nil {
			return err
		}

		cat, err := catalog.NewCatalog(cfg.CatalogPath)
		if err != nil {
			return err
		}
		defer cat.Close()

		opts := ingest.Options{Catalog: cat}
		if cfg.Cache.Enabled {
			cache, err := ingest.NewFetchCache(cfg.Cache.Dir, cfg.Cache.MaxBytes)
			if err != nil {
				return err
			}
			opts.Cache = cache
		}

		ingester := ingest.NewIngester(store, cfg.OutputDir, logger, opts)
		if err := ingester.Run(ctx, flagColonyID, flagUpload); err != nil {
			logger.Error().Err(err).Msg("ingest run failed")
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file path (YAML or JSON)")
	rootCmd.Flags().StringVar(&flagColonyID, "colony-id", "", "process only this colony ID instead of discovering all")
	rootCmd.Flags().BoolVar(&flagUpload, "upload", false, "upload generated Parquet files back to the bucket")
}

// setup loads configuration and builds the root logger.
func setup() (*config.Config, zerolog.Logger, error) {
	// Local development convenience; a missing .env is fine.
	_ = godotenv.Load()

	cfg := config.DefaultConfig()
	if flagConfig != "" {
		loaded, err := config.LoadFromFile(flagConfig)
		if err != nil {
			return nil, zerolog.Nop(), err
		}
		cfg = loaded
	}
	if err := config.LoadFromEnv(cfg); err != nil {
		return nil, zerolog.Nop(), err
	}
	cfg.Resolve()
	if err := cfg.Validate(); err != nil {
		return nil, zerolog.Nop(), err
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, zerolog.Nop(), err
	}

	return cfg, newLogger(cfg), nil
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out = os.Stdout
	logger := zerolog.New(out)
	if cfg.Log.Format == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: "2006-01-02T15:04:05Z07:00"})
	}
	return logger.Level(level).With().Timestamp().Logger()
}

func newStorage(ctx context.Context, cfg *config.Config) (storage.ObjectStorage, error) {
	switch cfg.Storage.Type {
	case "s3":
		return storage.NewS3Storage(ctx, cfg.Bucket, storage.S3Config{
			Region:       cfg.Storage.S3.Region,
			Endpoint:     cfg.Storage.S3.Endpoint,
			UsePathStyle: cfg.Storage.S3.UsePathStyle,
		})
	case "local":
		return storage.NewLocalStorage(cfg.Storage.Path)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Storage.Type)
	}
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
