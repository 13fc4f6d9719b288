package scene

import (
	"container/list"
	"image"
	"sync"
	"sync/atomic"
)

// DefaultAssetCapacity is the asset cache size used when none is given.
const DefaultAssetCapacity = 64

// AssetStats reports asset cache activity.
type AssetStats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// AssetCache keeps decoded images by source name, least recently used
// first out, so objects and scenes sharing a sprite decode it once.
// It is safe for concurrent use.
type AssetCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]*list.Element
	lru      *list.List

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type assetEntry struct {
	src string
	img image.Image
}

// NewAssetCache creates a cache holding up to capacity images. If
// capacity <= 0, DefaultAssetCapacity is used.
func NewAssetCache(capacity int) *AssetCache {
	if capacity <= 0 {
		capacity = DefaultAssetCapacity
	}
	return &AssetCache{
		capacity: capacity,
		entries:  make(map[string]*list.Element),
		lru:      list.New(),
	}
}

// Get returns the image cached under src.
func (c *AssetCache) Get(src string) (image.Image, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[src]
	if !ok {
		c.misses.Add(1)
		return nil, false
	}
	c.lru.MoveToFront(el)
	c.hits.Add(1)
	return el.Value.(*assetEntry).img, true
}

// Set stores img under src, evicting the least recently used entry when
// the cache is full.
func (c *AssetCache) Set(src string, img image.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[src]; ok {
		el.Value.(*assetEntry).img = img
		c.lru.MoveToFront(el)
		return
	}
	for c.lru.Len() >= c.capacity {
		oldest := c.lru.Back()
		c.lru.Remove(oldest)
		delete(c.entries, oldest.Value.(*assetEntry).src)
		c.evictions.Add(1)
	}
	c.entries[src] = c.lru.PushFront(&assetEntry{src: src, img: img})
}

// Len returns the number of cached images.
func (c *AssetCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// Stats returns the hit, miss and eviction counters.
func (c *AssetCache) Stats() AssetStats {
	return AssetStats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}
