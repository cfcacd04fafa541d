// Package table persists normalized row sets as snappy-compressed Parquet
// files. Schemas come entirely from the row structs' parquet tags, so the
// written column set is fixed regardless of which optional fields are
// populated in a given batch.
package table

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/yanivbyd/colony-analytics/pkg/types"
)

// WriteStats writes a stats table to path.
func WriteStats(path string, rows []types.StatsRow) error {
	return writeRows(path, rows)
}

// WriteEvents writes an events table to path.
func WriteEvents(path string, rows []types.EventRow) error {
	return writeRows(path, rows)
}

func writeRows[T any](path string, rows []T) error {
	if len(rows) == 0 {
		return fmt.Errorf("table: cannot write an empty table to %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("table: failed to create output directory: %w", err)
	}

	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return fmt.Errorf("table: failed to create %s: %w", path, err)
	}

	pw, err := writer.NewParquetWriter(fw, new(T), 2)
	if err != nil {
		fw.Close()
		return fmt.Errorf("table: failed to create parquet writer for %s: %w", path, err)
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	for _, row := range rows {
		if err := pw.Write(row); err != nil {
			fw.Close()
			return fmt.Errorf("table: failed to write row to %s: %w", path, err)
		}
	}

	if err := pw.WriteStop(); err != nil {
		fw.Close()
		return fmt.Errorf("table: failed to finalize %s: %w", path, err)
	}

	return fw.Close()
}
