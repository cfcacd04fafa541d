package ingest

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/yanivbyd/colony-analytics/internal/storage"
)

// defaultPrefetchWorkers bounds concurrent object fetches during cache warmup.
const defaultPrefetchWorkers = 8

// warmCache fetches the listed objects in parallel and stores them in the
// cache, so the sequential processing loop runs against local bytes.
//
// Warmup failures are deliberately swallowed: a key that fails here is simply
// absent from the cache, and the sequential fetch surfaces the error at a
// deterministic point in the run.
func warmCache(ctx context.Context, store storage.ObjectStorage, cache *FetchCache, keys []string, workers int) {
	if cache == nil || len(keys) == 0 {
		return
	}
	if workers <= 0 {
		workers = defaultPrefetchWorkers
	}

	sem := semaphore.NewWeighted(int64(workers))
	var wg sync.WaitGroup

	for _, key := range keys {
		if cache.Has(key) {
			continue
		}
		if err := sem.Acquire(ctx, 1); err != nil {
			break // context cancelled
		}

		wg.Add(1)
		go func(key string) {
			defer sem.Release(1)
			defer wg.Done()

			data, err := store.Fetch(ctx, key)
			if err != nil {
				return
			}
			cache.Put(key, data)
		}(key)
	}

	wg.Wait()
}
