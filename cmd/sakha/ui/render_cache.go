package ui

import (
	"hash/fnv"
	"math"
	"sync"
)

// RenderCache holds rendered panels keyed by a hash of their inputs.
// Static panels (dashboard, alerts, weather) only change with width or theme,
// so re-rendering them on every spinner frame is wasted work.
type RenderCache struct {
	mu      sync.Mutex
	entries map[uint64]string
	order   []uint64
	maxSize int
}

// NewRenderCache creates a cache that keeps at most maxSize entries,
// evicting the oldest insert first.
func NewRenderCache(maxSize int) *RenderCache {
	if maxSize < 1 {
		maxSize = 1
	}
	return &RenderCache{
		entries: make(map[uint64]string, maxSize),
		maxSize: maxSize,
	}
}

// ComputeKey generates a cache key from multiple inputs.
// Supported types: string, int, float64, bool. Others are ignored.
func ComputeKey(inputs ...interface{}) uint64 {
	h := fnv.New64a()
	var b [8]byte
	put := func(u uint64) {
		for i := 0; i < 8; i++ {
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
			put(uint64(v))
		case float64:
			put(math.Float64bits(v))
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
	return content, ok
}

// Set stores rendered content in the cache.
func (rc *RenderCache) Set(key uint64, content string) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	if _, ok := rc.entries[key]; !ok {
		rc.order = append(rc.order, key)
		for len(rc.order) > rc.maxSize {
			delete(rc.entries, rc.order[0])
			rc.order = rc.order[1:]
		}
	}
	rc.entries[key] = content
}

// Len reports the number of cached entries.
func (rc *RenderCache) Len() int {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return len(rc.entries)
}

// Clear empties the cache.
func (rc *RenderCache) Clear() {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.entries = make(map[uint64]string, rc.maxSize)
	rc.order = nil
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
