package ingest

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchCache_RoundTrip(t *testing.T) {
	cache, err := NewFetchCache(t.TempDir(), 1024*1024)
	require.NoError(t, err)

	_, ok := cache.Get("colony-1/events/events.json")
	assert.False(t, ok)

	payload := []byte(`{"colony_instance_id": "colony-1"}`)
	cache.Put("colony-1/events/events.json", payload)

	got, ok := cache.Get("colony-1/events/events.json")
	require.True(t, ok)
	assert.True(t, bytes.Equal(payload, got))
	assert.Equal(t, 1, cache.Len())
}

func TestFetchCache_OverwriteSameKey(t *testing.T) {
	cache, err := NewFetchCache(t.TempDir(), 1024*1024)
	require.NoError(t, err)

	cache.Put("key", []byte("first"))
	cache.Put("key", []byte("second"))

	got, ok := cache.Get("key")
	require.True(t, ok)
	assert.Equal(t, "second", string(got))
	assert.Equal(t, 1, cache.Len())
}

func TestFetchCache_EvictsLeastRecentlyUsed(t *testing.T) {
	// Pseudo-random bodies stay near 256 bytes after snappy, so a 600-byte
	// budget holds about two entries.
	cache, err := NewFetchCache(t.TempDir(), 600)
	require.NoError(t, err)

	body := func(seed byte) []byte {
		out := make([]byte, 256)
		state := uint32(seed) + 1
		for i := range out {
			state = state*1664525 + 1013904223
			out[i] = byte(state >> 24)
		}
		return out
	}

	cache.Put("a", body('a'))
	cache.Put("b", body('b'))

	// Touch "a" so "b" becomes the eviction candidate.
	_, ok := cache.Get("a")
	require.True(t, ok)

	cache.Put("c", body('c'))

	_, ok = cache.Get("b")
	assert.False(t, ok)
	_, ok = cache.Get("a")
	assert.True(t, ok)
	_, ok = cache.Get("c")
	assert.True(t, ok)
}

func TestFetchCache_DefaultLimit(t *testing.T) {
	cache, err := NewFetchCache(t.TempDir(), 0)
	require.NoError(t, err)

	cache.Put("k", []byte("v"))
	got, ok := cache.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", string(got))
}
