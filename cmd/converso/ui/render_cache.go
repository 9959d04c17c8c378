package ui

import (
	"hash/fnv"
	"math"
	"sync"
)

// RenderCache provides hash-based caching for rendered content.
// When it fills up it starts over; rows are cheap to rebuild.
type RenderCache struct {
	mu      sync.Mutex
	entries map[uint64]string
	maxSize int
	hits    int
	misses  int
}

// NewRenderCache creates a new render cache with the specified max size.
func NewRenderCache(maxSize int) *RenderCache {
	if maxSize <= 0 {
		maxSize = 256
	}
	return &RenderCache{
		entries: make(map[uint64]string),
		maxSize: maxSize,
	}
}

// ComputeKey generates a cache key from multiple inputs.
//
// Supported types are intentionally limited to avoid allocations in hot paths.
func ComputeKey(inputs ...interface{}) uint64 {
	h := fnv.New64a()
	var b [8]byte

	putUint := func(u uint64) {
		for i := range b {
			b[i] = byte(u >> (8 * i))
		}
		h.Write(b[:])
	}

	for _, input := range inputs {
		switch v := input.(type) {
		case string:
			h.Write([]byte(v))
			h.Write([]byte{0})
		case int:
			putUint(uint64(v))
		case float64:
			putUint(math.Float64bits(v))
		case bool:
			if v {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}

	return h.Sum64()
}

// Get retrieves cached content if available.
func (rc *RenderCache) Get(key uint64) (string, bool) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	content, ok := rc.entries[key]
	if ok {
		rc.hits++
	} else {
		rc.misses++
	}
	return content, ok
}

// Set stores rendered content in the cache.
func (rc *RenderCache) Set(key uint64, content string) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	if _, exists := rc.entries[key]; !exists && len(rc.entries) >= rc.maxSize {
		rc.entries = make(map[uint64]string)
	}
	rc.entries[key] = content
}

// GetOrCompute retrieves from cache or computes if missing.
func (rc *RenderCache) GetOrCompute(key uint64, compute func() string) string {
	if content, ok := rc.Get(key); ok {
		return content
	}
	content := compute()
	rc.Set(key, content)
	return content
}

// Clear empties the cache.
func (rc *RenderCache) Clear() {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.entries = make(map[uint64]string)
}

// Len returns the number of cached entries.
func (rc *RenderCache) Len() int {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return len(rc.entries)
}

// Stats returns hit and miss counts.
func (rc *RenderCache) Stats() (hits, misses int) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.hits, rc.misses
}
