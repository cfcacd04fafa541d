package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spaolacci/murmur3"

	"github.com/yanivbyd/colony-analytics/internal/catalog"
	apperrors "github.com/yanivbyd/colony-analytics/internal/errors"
	"github.com/yanivbyd/colony-analytics/internal/normalize"
	"github.com/yanivbyd/colony-analytics/internal/storage"
	"github.com/yanivbyd/colony-analytics/internal/table"
	"github.com/yanivbyd/colony-analytics/pkg/types"
)

// Object key layout inside the telemetry bucket.
const (
	statsShotsSubpath    = "stats_shots"
	eventsSubpath        = "events"
	statsParquetSubpath  = "stats_parquet"
	eventsParquetSubpath = "events_parquet"
)

// Options holds the optional collaborators of an Ingester.
type Options struct {
	// Catalog, when set, records each completed table build.
	Catalog *catalog.Catalog

	// Cache, when set, caches raw object bytes between runs.
	Cache *FetchCache

	// PrefetchWorkers bounds parallel fetches during cache warmup.
	// Zero means the default; warmup only happens when Cache is set.
	PrefetchWorkers int
}

// Ingester runs the batch pipeline for one or all colonies. Processing is
// sequential and fail-fast: the first fetch, decode, or identity error
// aborts the whole run with no partial output for the colony in progress.
type Ingester struct {
	store           storage.ObjectStorage
	outputDir       string
	log             zerolog.Logger
	catalog         *catalog.Catalog
	cache           *FetchCache
	prefetchWorkers int
}

// NewIngester creates an ingester writing per-colony tables under outputDir.
func NewIngester(store storage.ObjectStorage, outputDir string, logger zerolog.Logger, opts Options) *Ingester {
	return &Ingester{
		store:           store,
		outputDir:       outputDir,
		log:             logger,
		catalog:         opts.Catalog,
		cache:           opts.Cache,
		prefetchWorkers: opts.PrefetchWorkers,
	}
}

// Run processes a single colony when colonyID is non-empty, otherwise every
// colony discovered in the bucket.
func (in *Ingester) Run(ctx context.Context, colonyID string, upload bool) error {
	var colonies []string
	if colonyID != "" {
		in.log.Info().Str("colony_id", colonyID).Msg("processing single colony")
		colonies = []string{colonyID}
	} else {
		in.log.Info().Msg("discovering colony IDs")
		discovered, err := in.DiscoverColonies(ctx)
		if err != nil {
			return err
		}
		in.log.Info().Int("count", len(discovered)).Strs("colony_ids", discovered).Msg("discovered colonies")
		colonies = discovered
	}

	if len(colonies) == 0 {
		in.log.Info().Msg("no colonies found; nothing to do")
		return nil
	}

	for _, id := range colonies {
		if err := in.ProcessColony(ctx, id, upload); err != nil {
			return err
		}
	}

	in.log.Info().Msg("all colonies processed successfully")
	return nil
}

// DiscoverColonies returns the sorted set of colony IDs that have stats
// shots or events in the bucket. Keys are expected to look like
// "<colony_id>/stats_shots/..." or "<colony_id>/events/...".
func (in *Ingester) DiscoverColonies(ctx context.Context) ([]string, error) {
	keys, err := in.store.ListObjects(ctx, "")
	if err != nil {
		return nil, apperrors.NewTransportError(apperrors.CodeListFailed, "failed to list bucket", err)
	}

	seen := make(map[string]struct{})
	for _, key := range keys {
		parts := strings.SplitN(key, "/", 3)
		if len(parts) >= 2 && (parts[1] == statsShotsSubpath || parts[1] == eventsSubpath) {
			seen[parts[0]] = struct{}{}
		}
	}

	colonies := make([]string, 0, len(seen))
	for id := range seen {
		colonies = append(colonies, id)
	}
	sort.Strings(colonies)
	return colonies, nil
}

// ProcessColony builds the stats and events tables for one colony.
func (in *Ingester) ProcessColony(ctx context.Context, colonyID string, upload bool) error {
	if err := in.processStats(ctx, colonyID, upload); err != nil {
		return err
	}
	return in.processEvents(ctx, colonyID, upload)
}

func (in *Ingester) processStats(ctx context.Context, colonyID string, upload bool) error {
	log := in.log.With().Str("colony_id", colonyID).Str("table", catalog.TableStats).Logger()

	keys, err := in.listColonyObjects(ctx, colonyID, statsShotsSubpath)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		log.Info().Msg("no stats_shots objects found; skipping stats table")
		return nil
	}

	start := time.Now()
	log.Info().Int("objects", len(keys)).Msg("building stats table")
	warmCache(ctx, in.store, in.cache, keys, in.prefetchWorkers)

	rows := make([]types.StatsRow, 0, len(keys))
	for _, key := range keys {
		log.Info().Str("key", key).Msg("reading object")
		doc, err := in.fetchDocument(ctx, key)
		if err != nil {
			return err
		}
		row := normalize.SnapshotRow(doc)
		if err := verifyColonyID(key, colonyID, row.ColonyID); err != nil {
			return err
		}
		rows = append(rows, row)
	}

	localPath := filepath.Join(in.outputDir, colonyID, "stats.parquet")
	if err := table.WriteStats(localPath, rows); err != nil {
		return apperrors.NewStorageError(apperrors.CodeWriteFailed, fmt.Sprintf("failed to write stats table for %s", colonyID), err)
	}
	log.Info().Str("path", localPath).Int("rows", len(rows)).Msg("wrote stats table")

	return in.finishTable(ctx, log, tableResult{
		colonyID:    colonyID,
		kind:        catalog.TableStats,
		objectCount: int64(len(keys)),
		rowCount:    int64(len(rows)),
		fingerprint: jsonFingerprint(rows),
		localPath:   localPath,
		objectKey:   fmt.Sprintf("%s/%s/%s.parquet", colonyID, statsParquetSubpath, colonyID),
		upload:      upload,
		started:     start,
	})
}

func (in *Ingester) processEvents(ctx context.Context, colonyID string, upload bool) error {
	log := in.log.With().Str("colony_id", colonyID).Str("table", catalog.TableEvents).Logger()

	keys, err := in.listColonyObjects(ctx, colonyID, eventsSubpath)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		log.Info().Msg("no event objects found; skipping events table")
		return nil
	}

	start := time.Now()
	log.Info().Int("objects", len(keys)).Msg("building events table")
	warmCache(ctx, in.store, in.cache, keys, in.prefetchWorkers)

	rows := make([]types.EventRow, 0, len(keys))
	for _, key := range keys {
		log.Info().Str("key", key).Msg("reading object")
		doc, err := in.fetchDocument(ctx, key)
		if err != nil {
			return err
		}
		row := normalize.EventRow(doc)
		if err := verifyColonyID(key, colonyID, row.ColonyID); err != nil {
			return err
		}
		rows = append(rows, row)
	}

	localPath := filepath.Join(in.outputDir, colonyID, "events.parquet")
	if err := table.WriteEvents(localPath, rows); err != nil {
		return apperrors.NewStorageError(apperrors.CodeWriteFailed, fmt.Sprintf("failed to write events table for %s", colonyID), err)
	}
	log.Info().Str("path", localPath).Int("rows", len(rows)).Msg("wrote events table")

	return in.finishTable(ctx, log, tableResult{
		colonyID:    colonyID,
		kind:        catalog.TableEvents,
		objectCount: int64(len(keys)),
		rowCount:    int64(len(rows)),
		fingerprint: jsonFingerprint(rows),
		localPath:   localPath,
		objectKey:   fmt.Sprintf("%s/%s/%s.parquet", colonyID, eventsParquetSubpath, colonyID),
		upload:      upload,
		started:     start,
	})
}

// tableResult carries everything finishTable needs to upload and record one
// completed table build.
type tableResult struct {
	colonyID    string
	kind        string
	objectCount int64
	rowCount    int64
	fingerprint int64
	localPath   string
	objectKey   string
	upload      bool
	started     time.Time
}

func (in *Ingester) finishTable(ctx context.Context, log zerolog.Logger, res tableResult) error {
	uploaded := false
	if res.upload {
		log.Info().Str("key", res.objectKey).Msg("uploading table")
		if err := in.store.Upload(ctx, res.localPath, res.objectKey); err != nil {
			return apperrors.NewStorageError(apperrors.CodeUploadFailed, fmt.Sprintf("failed to upload %s", res.objectKey), err)
		}
		uploaded = true
	} else {
		log.Info().Msg("upload disabled; table only written locally")
	}

	if in.catalog == nil {
		return nil
	}

	prev, ok, err := in.catalog.LastFingerprint(ctx, res.colonyID, res.kind)
	if err != nil {
		return apperrors.NewCatalogError("failed to read previous fingerprint", err)
	}
	if ok && prev != res.fingerprint {
		log.Warn().Int64("previous", prev).Int64("current", res.fingerprint).
			Msg("table fingerprint changed since previous run")
	} else if ok {
		log.Debug().Msg("table fingerprint identical to previous run")
	}

	rec := &catalog.RunRecord{
		RunID:       uuid.NewString(),
		ColonyID:    res.colonyID,
		Table:       res.kind,
		ObjectCount: res.objectCount,
		RowCount:    res.rowCount,
		Fingerprint: res.fingerprint,
		OutputPath:  res.localPath,
		Uploaded:    uploaded,
		DurationMs:  time.Since(res.started).Milliseconds(),
		CreatedAt:   time.Now().UTC(),
	}
	if err := in.catalog.RecordRun(ctx, rec); err != nil {
		return apperrors.NewCatalogError("failed to record run", err)
	}
	return nil
}

// listColonyObjects lists one colony's objects under a bucket subpath in
// lexicographic order. Ordering is a reproducibility convenience for logs,
// not a correctness requirement.
func (in *Ingester) listColonyObjects(ctx context.Context, colonyID, subpath string) ([]string, error) {
	prefix := fmt.Sprintf("%s/%s/", colonyID, subpath)
	keys, err := in.store.ListObjects(ctx, prefix)
	if err != nil {
		return nil, apperrors.NewTransportError(apperrors.CodeListFailed, fmt.Sprintf("failed to list %s", prefix), err)
	}
	sort.Strings(keys)
	return keys, nil
}

// fetchDocument reads one object (through the cache when enabled) and
// decodes it.
func (in *Ingester) fetchDocument(ctx context.Context, key string) (map[string]any, error) {
	var raw []byte
	if in.cache != nil {
		if data, ok := in.cache.Get(key); ok {
			raw = data
		}
	}
	if raw == nil {
		data, err := in.store.Fetch(ctx, key)
		if err != nil {
			return nil, apperrors.NewTransportError(apperrors.CodeFetchFailed, fmt.Sprintf("failed to fetch %s", key), err)
		}
		raw = data
		if in.cache != nil {
			in.cache.Put(key, data)
		}
	}
	return decodeObject(key, raw)
}

// verifyColonyID enforces the batch invariant that every row carries the
// colony id implied by its object key. A mismatch means cross-colony data
// corruption and aborts the run.
func verifyColonyID(key, expected string, actual *string) error {
	if actual != nil && *actual == expected {
		return nil
	}
	got := "<missing>"
	if actual != nil {
		got = *actual
	}
	return apperrors.NewIdentityError(fmt.Sprintf(
		"colony ID mismatch for key %s: payload colony_instance_id=%s, expected %s", key, got, expected))
}

// jsonFingerprint hashes the canonical JSON encoding of a row set. Identical
// inputs must reproduce the fingerprint exactly across runs.
func jsonFingerprint[T any](rows []T) int64 {
	h := murmur3.New64()
	for _, row := range rows {
		b, err := json.Marshal(row)
		if err != nil {
			continue
		}
		h.Write(b)
		h.Write([]byte{'\n'})
	}
	return int64(h.Sum64())
}
