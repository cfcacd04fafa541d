package ingest

import (
	"container/list"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/golang/snappy"
	"github.com/spaolacci/murmur3"
)

// FetchCache is an LRU cache for raw telemetry objects, stored on disk
// snappy-compressed. Telemetry objects are immutable once written, so a
// cache hit skips the object-store round trip entirely on repeated runs.
type FetchCache struct {
	mu       sync.Mutex
	dir      string
	maxBytes int64
	curBytes int64

	// items maps objectPath → list element (whose value is *cacheEntry)
	items map[string]*list.Element
	order *list.List // front = most recently used
}

type cacheEntry struct {
	objectPath string
	localPath  string
	sizeBytes  int64
}

// NewFetchCache creates a new fetch cache rooted at dir.
// maxBytes is the maximum total size of cached files (default 1GB).
func NewFetchCache(dir string, maxBytes int64) (*FetchCache, error) {
	if maxBytes <= 0 {
		maxBytes = 1 * 1024 * 1024 * 1024 // 1 GB
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &FetchCache{
		dir:      dir,
		maxBytes: maxBytes,
		items:    make(map[string]*list.Element),
		order:    list.New(),
	}, nil
}

// Get returns the cached bytes for an object, or nil if not cached.
// On hit, the entry is promoted to most-recently-used.
func (c *FetchCache) Get(objectPath string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[objectPath]
	if !ok {
		return nil, false
	}

	entry := elem.Value.(*cacheEntry)
	compressed, err := os.ReadFile(entry.localPath)
	if err != nil {
		// Backing file gone, evict the entry
		c.removeLocked(elem)
		return nil, false
	}

	data, err := snappy.Decode(nil, compressed)
	if err != nil {
		c.removeLocked(elem)
		return nil, false
	}

	c.order.MoveToFront(elem)
	return data, true
}

// Put stores an object's raw bytes in the cache.
// If adding this entry exceeds maxBytes, LRU entries are evicted.
func (c *FetchCache) Put(objectPath string, data []byte) {
	compressed := snappy.Encode(nil, data)
	localPath := filepath.Join(c.dir, fmt.Sprintf("%016x.sz", murmur3.Sum64([]byte(objectPath))))
	if err := os.WriteFile(localPath, compressed, 0644); err != nil {
		return // a cache that cannot write is just a miss
	}
	sizeBytes := int64(len(compressed))

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[objectPath]; ok {
		old := elem.Value.(*cacheEntry)
		c.curBytes -= old.sizeBytes
		old.localPath = localPath
		old.sizeBytes = sizeBytes
		c.curBytes += sizeBytes
		c.order.MoveToFront(elem)
	} else {
		entry := &cacheEntry{
			objectPath: objectPath,
			localPath:  localPath,
			sizeBytes:  sizeBytes,
		}
		elem := c.order.PushFront(entry)
		c.items[objectPath] = elem
		c.curBytes += sizeBytes
	}

	// Evict LRU entries until under limit
	for c.curBytes > c.maxBytes && c.order.Len() > 1 {
		c.evictOldestLocked()
	}
}

// Has reports whether an object is cached, without touching its LRU position
// or reading the backing file.
func (c *FetchCache) Has(objectPath string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.items[objectPath]
	return ok
}

// Len returns the number of cached entries.
func (c *FetchCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// evictOldestLocked removes the least-recently-used entry.
// Caller must hold c.mu.
func (c *FetchCache) evictOldestLocked() {
	back := c.order.Back()
	if back == nil {
		return
	}
	c.removeLocked(back)
}

// removeLocked removes an entry and its backing file.
// Caller must hold c.mu.
func (c *FetchCache) removeLocked(elem *list.Element) {
	entry := elem.Value.(*cacheEntry)
	c.order.Remove(elem)
	delete(c.items, entry.objectPath)
	c.curBytes -= entry.sizeBytes
	_ = os.Remove(entry.localPath)
}
