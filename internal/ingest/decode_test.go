package ingest

import (
	"bytes"
	"compress/gzip"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/yanivbyd/colony-analytics/internal/errors"
)

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write(data)
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	return buf.Bytes()
}

func TestDecodeObject_PlainJSON(t *testing.T) {
	doc, err := decodeObject("colony-1/events/events.json", []byte(`{"tick": 5}`))
	require.NoError(t, err)
	assert.Equal(t, float64(5), doc["tick"])
}

func TestDecodeObject_GzippedJSON(t *testing.T) {
	raw := gzipBytes(t, []byte(`{"colony_instance_id": "colony-1", "tick": 9}`))

	doc, err := decodeObject("colony-1/stats_shots/shot_9.json.gz", raw)
	require.NoError(t, err)
	assert.Equal(t, "colony-1", doc["colony_instance_id"])
	assert.Equal(t, float64(9), doc["tick"])
}

func TestDecodeObject_MalformedJSON(t *testing.T) {
	_, err := decodeObject("colony-1/events/bad.json", []byte(`{truncated`))
	require.Error(t, err)

	var ingestErr *apperrors.IngestError
	require.True(t, errors.As(err, &ingestErr))
	assert.Equal(t, apperrors.ErrCategoryDecode, ingestErr.Category)
	assert.Equal(t, apperrors.CodeMalformedJSON, ingestErr.Code)
	assert.Contains(t, ingestErr.Message, "colony-1/events/bad.json")
}

func TestDecodeObject_TruncatedGzipFallsBackToRaw(t *testing.T) {
	// A gzip header with a truncated body must not mask the raw bytes; the
	// raw bytes are not JSON either, so this surfaces as a decode error.
	raw := gzipBytes(t, []byte(`{"tick": 1}`))
	_, err := decodeObject("colony-1/stats_shots/cut.json.gz", raw[:6])
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCategoryDecode, apperrors.GetCategory(err))
}
