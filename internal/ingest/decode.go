// Package ingest drives the batch pipeline from telemetry objects to
// per-colony Parquet tables: discovery, fetch, decode, normalization,
// identity checks, table writes, and optional re-upload.
package ingest

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"

	apperrors "github.com/yanivbyd/colony-analytics/internal/errors"
)

// decodeObject decodes an object's raw bytes into a generic JSON document.
//
// Decompression is attempted first; bytes that are not valid gzip fall back
// transparently to plain UTF-8 JSON. Malformed top-level JSON is fatal for
// the run and the returned error carries the offending object key.
func decodeObject(key string, raw []byte) (map[string]any, error) {
	text := raw
	if gz, err := gzip.NewReader(bytes.NewReader(raw)); err == nil {
		if inflated, err := io.ReadAll(gz); err == nil {
			text = inflated
		}
		gz.Close()
	}

	var doc map[string]any
	if err := json.Unmarshal(text, &doc); err != nil {
		return nil, apperrors.NewDecodeError(fmt.Sprintf("malformed JSON in %s", key), err)
	}
	return doc, nil
}
