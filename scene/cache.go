package scene

import (
	"container/list"
	"sync"
	"sync/atomic"

	"github.com/gogpu/glyphmesh"
	"github.com/gogpu/glyphmesh/catalog"
)

// DefaultCacheCapacity is the part cache size used when a non-positive
// capacity is requested.
const DefaultCacheCapacity = 64

// partKey identifies one extruded part. The catalog pointer is part of the
// key so two catalogs may reuse outline names.
type partKey struct {
	cat   *catalog.Catalog
	name  string
	depth float64
	color glyphmesh.Color
}

type cacheEntry struct {
	key  partKey
	mesh *glyphmesh.Mesh
}

// PartCache is an LRU cache of extruded part meshes shared across
// assemblies. Relayouts that only move glyphs reuse every part.
// It is safe for concurrent use.
//
// Cached meshes are never modified: assembly copies them when merging.
type PartCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[partKey]*list.Element
	lru      *list.List // front is most recently used

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// CacheStats reports part cache usage.
type CacheStats struct {
	Len       int
	Capacity  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
	HitRate   float64
}

// NewPartCache creates a cache holding up to capacity part meshes.
// If capacity <= 0, DefaultCacheCapacity is used.
func NewPartCache(capacity int) *PartCache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &PartCache{
		capacity: capacity,
		entries:  make(map[partKey]*list.Element),
		lru:      list.New(),
	}
}

// getOrCreate returns the cached mesh for key or builds, stores and
// returns it. Errors from create are not cached.
func (c *PartCache) getOrCreate(key partKey, create func() (*glyphmesh.Mesh, error)) (*glyphmesh.Mesh, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		c.lru.MoveToFront(el)
		c.hits.Add(1)
		return el.Value.(*cacheEntry).mesh, nil
	}
	c.misses.Add(1)

	m, err := create()
	if err != nil {
		return nil, err
	}

	for c.lru.Len() >= c.capacity {
		oldest := c.lru.Back()
		if oldest == nil {
			break
		}
		c.lru.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry).key)
		c.evictions.Add(1)
	}
	c.entries[key] = c.lru.PushFront(&cacheEntry{key: key, mesh: m})
	return m, nil
}

// Len returns the number of cached parts.
func (c *PartCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// Clear drops all cached parts. Statistics are kept.
func (c *PartCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[partKey]*list.Element)
	c.lru.Init()
}

// Stats returns current cache statistics.
func (c *PartCache) Stats() CacheStats {
	hits := c.hits.Load()
	misses := c.misses.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}
	return CacheStats{
		Len:       c.Len(),
		Capacity:  c.capacity,
		Hits:      hits,
		Misses:    misses,
		Evictions: c.evictions.Load(),
		HitRate:   hitRate,
	}
}

// ResetStats resets all statistics counters to zero.
func (c *PartCache) ResetStats() {
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
}
