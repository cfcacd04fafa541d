// Package catalog records completed ingest runs in a local SQLite database,
// giving operators a queryable history of what was built, from how many
// objects, and whether repeated runs produced identical tables.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Table kinds recorded in the catalog.
const (
	TableStats  = "stats"
	TableEvents = "events"
)

// RunRecord describes one completed table build.
type RunRecord struct {
	RunID       string
	ColonyID    string
	Table       string
	ObjectCount int64
	RowCount    int64
	// Fingerprint is a murmur3 hash over the normalized rows; identical
	// inputs must reproduce it exactly.
	Fingerprint int64
	OutputPath  string
	Uploaded    bool
	DurationMs  int64
	CreatedAt   time.Time
}

// Catalog manages run records in a SQLite database.
type Catalog struct {
	db     *sql.DB
	dbPath string
	mu     sync.Mutex
}

// NewCatalog opens (creating if needed) the run catalog at dbPath.
func NewCatalog(dbPath string) (*Catalog, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1) // Single writer
	db.SetMaxIdleConns(1)

	c := &Catalog{db: db, dbPath: dbPath}
	if err := c.createSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return c, nil
}

func (c *Catalog) createSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS ingest_runs (
		run_id       TEXT PRIMARY KEY,
		colony_id    TEXT NOT NULL,
		table_kind   TEXT NOT NULL,
		object_count INTEGER NOT NULL,
		row_count    INTEGER NOT NULL,
		fingerprint  INTEGER NOT NULL,
		output_path  TEXT NOT NULL,
		uploaded     INTEGER NOT NULL,
		duration_ms  INTEGER NOT NULL,
		created_at   TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_colony ON ingest_runs(colony_id, table_kind, created_at);
	`
	if _, err := c.db.Exec(schema); err != nil {
		return fmt.Errorf("catalog: failed to create schema: %w", err)
	}
	return nil
}

// RecordRun inserts one completed run.
func (c *Catalog) RecordRun(ctx context.Context, rec *RunRecord) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.db.ExecContext(ctx, `
		INSERT INTO ingest_runs
			(run_id, colony_id, table_kind, object_count, row_count, fingerprint, output_path, uploaded, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.RunID, rec.ColonyID, rec.Table, rec.ObjectCount, rec.RowCount,
		rec.Fingerprint, rec.OutputPath, rec.Uploaded, rec.DurationMs, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("catalog: failed to record run: %w", err)
	}
	return nil
}

// LastFingerprint returns the fingerprint of the most recent run for a
// colony/table pair. The second return value is false when no prior run
// exists.
func (c *Catalog) LastFingerprint(ctx context.Context, colonyID, table string) (int64, bool, error) {
	var fp int64
	err := c.db.QueryRowContext(ctx, `
		SELECT fingerprint FROM ingest_runs
		WHERE colony_id = ? AND table_kind = ?
		ORDER BY created_at DESC, run_id DESC LIMIT 1`,
		colonyID, table,
	).Scan(&fp)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("catalog: failed to query last fingerprint: %w", err)
	}
	return fp, true, nil
}

// RecentRuns returns up to limit runs, most recent first.
func (c *Catalog) RecentRuns(ctx context.Context, limit int) ([]*RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := c.db.QueryContext(ctx, `
		SELECT run_id, colony_id, table_kind, object_count, row_count, fingerprint, output_path, uploaded, duration_ms, created_at
		FROM ingest_runs
		ORDER BY created_at DESC, run_id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to query runs: %w", err)
	}
	defer rows.Close()

	var records []*RunRecord
	for rows.Next() {
		rec := &RunRecord{}
		if err := rows.Scan(
			&rec.RunID, &rec.ColonyID, &rec.Table, &rec.ObjectCount, &rec.RowCount,
			&rec.Fingerprint, &rec.OutputPath, &rec.Uploaded, &rec.DurationMs, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("catalog: failed to scan run: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Close closes the catalog database connection.
func (c *Catalog) Close() error {
	return c.db.Close()
}
