package catalog

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	cat, err := NewCatalog(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { cat.Close() })
	return cat
}

func record(colonyID, table string, fingerprint int64, at time.Time) *RunRecord {
	return &RunRecord{
		RunID:       uuid.NewString(),
		ColonyID:    colonyID,
		Table:       table,
		ObjectCount: 10,
		RowCount:    10,
		Fingerprint: fingerprint,
		OutputPath:  "/tmp/out.parquet",
		Uploaded:    true,
		DurationMs:  120,
		CreatedAt:   at,
	}
}

func TestCatalog_RecordAndQuery(t *testing.T) {
	cat := newTestCatalog(t)
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, cat.RecordRun(ctx, record("colony-1", TableStats, 111, now)))
	require.NoError(t, cat.RecordRun(ctx, record("colony-1", TableStats, 222, now.Add(time.Second))))
	require.NoError(t, cat.RecordRun(ctx, record("colony-2", TableEvents, 333, now)))

	runs, err := cat.RecentRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	// Most recent first.
	assert.Equal(t, int64(222), runs[0].Fingerprint)
	assert.Equal(t, "colony-1", runs[0].ColonyID)
	assert.Equal(t, TableStats, runs[0].Table)
	assert.True(t, runs[0].Uploaded)
}

func TestCatalog_LastFingerprint(t *testing.T) {
	cat := newTestCatalog(t)
	ctx := context.Background()

	_, ok, err := cat.LastFingerprint(ctx, "colony-1", TableStats)
	require.NoError(t, err)
	assert.False(t, ok)

	now := time.Now().UTC()
	require.NoError(t, cat.RecordRun(ctx, record("colony-1", TableStats, 111, now)))
	require.NoError(t, cat.RecordRun(ctx, record("colony-1", TableStats, 222, now.Add(time.Second))))
	require.NoError(t, cat.RecordRun(ctx, record("colony-1", TableEvents, 999, now.Add(2*time.Second))))

	fp, ok, err := cat.LastFingerprint(ctx, "colony-1", TableStats)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(222), fp)

	fp, ok, err = cat.LastFingerprint(ctx, "colony-1", TableEvents)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(999), fp)
}

func TestCatalog_RecentRunsLimit(t *testing.T) {
	cat := newTestCatalog(t)
	ctx := context.Background()

	now := time.Now().UTC()
	for i := 0; i < 5; i++ {
		require.NoError(t, cat.RecordRun(ctx, record("colony-1", TableStats, int64(i), now.Add(time.Duration(i)*time.Second))))
	}

	runs, err := cat.RecentRuns(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)

	runs, err = cat.RecentRuns(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, runs, 5)
}

func TestCatalog_ReopenKeepsRecords(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	ctx := context.Background()

	cat, err := NewCatalog(dbPath)
	require.NoError(t, err)
	require.NoError(t, cat.RecordRun(ctx, record("colony-1", TableStats, 42, time.Now().UTC())))
	require.NoError(t, cat.Close())

	cat, err = NewCatalog(dbPath)
	require.NoError(t, err)
	defer cat.Close()

	fp, ok, err := cat.LastFingerprint(ctx, "colony-1", TableStats)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(42), fp)
}
