package colorfulmap

import (
	"container/list"
	"fmt"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/paulmach/orb/maptile"

	"github.com/pyfisch/colorful-map/internal/compress"
)

// TileCache keeps rendered tiles with LRU eviction policy.
//
// Rendered SVG is stored compressed. Every entry remembers an xxhash of the
// payload it was rendered from, so a tile whose data changed is rendered
// again instead of served stale.
//
// Memory accounting uses the compressed size plus a small per-entry overhead.
//
// Example:
//
//	cache, err := colorfulmap.NewTileCache(colorfulmap.DefaultCacheOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	svg, err := cache.Get(maptile.New(536, 356, 10), data, func(data []byte) (string, error) {
//	    tile, err := renderer.Render(data)
//	    if err != nil {
//	        return "", err
//	    }
//	    return tile.SVG(), nil
//	})
type TileCache struct {
	maxMemory  int64 // Maximum memory in bytes
	usedMemory int64 // Current memory usage estimate
	codec      compress.Codec
	tiles      map[maptile.Tile]*cacheEntry
	lru        *list.List // LRU list (most recent at front)
	hits       int64
	misses     int64
	mu         sync.RWMutex
}

// cacheEntry tracks a cached tile and its metadata
type cacheEntry struct {
	tile         maptile.Tile
	sourceHash   uint64
	svg          []byte // compressed
	memorySize   int64
	element      *list.Element // Position in LRU list
	lastAccessed time.Time
	accessCount  int
}

// entryOverhead approximates the bookkeeping memory of one entry
const entryOverhead = 128

// NewTileCache creates a new cache. It fails if the compression is unknown.
func NewTileCache(opts CacheOptions) (*TileCache, error) {
	name := opts.Compression
	if name == "" {
		name = DefaultCacheOptions().Compression
	}
	typ, err := compress.ParseType(name)
	if err != nil {
		return nil, err
	}
	codec, err := compress.GetCodec(typ)
	if err != nil {
		return nil, err
	}

	return &TileCache{
		maxMemory: opts.MaxMemory,
		codec:     codec,
		tiles:     make(map[maptile.Tile]*cacheEntry),
		lru:       list.New(),
	}, nil
}

// Get returns the rendered SVG of a tile, calling render on a cache miss.
//
// data is the tile payload. A cached entry is only used if it was rendered
// from identical data. Render errors are returned and nothing is cached.
func (c *TileCache) Get(t maptile.Tile, data []byte, render func([]byte) (string, error)) (string, error) {
	if !t.Valid() {
		return "", fmt.Errorf("invalid tile %d/%d/%d", t.Z, t.X, t.Y)
	}
	hash := xxhash.Sum64(data)

	c.mu.Lock()
	if entry, ok := c.tiles[t]; ok {
		if entry.sourceHash == hash {
			entry.lastAccessed = time.Now()
			entry.accessCount++
			c.lru.MoveToFront(entry.element)
			c.hits++
			compressed := entry.svg
			c.mu.Unlock()

			svg, err := c.codec.Decompress(compressed)
			if err != nil {
				return "", fmt.Errorf("cached tile %d/%d/%d: %w", t.Z, t.X, t.Y, err)
			}
			return string(svg), nil
		}
		// payload changed since the tile was cached
		c.removeEntry(entry)
	}
	c.misses++
	c.mu.Unlock()

	svg, err := render(data)
	if err != nil {
		return "", fmt.Errorf("render tile %d/%d/%d: %w", t.Z, t.X, t.Y, err)
	}

	// a tile that cannot be cached is still returned
	_ = c.Add(t, hash, svg)

	return svg, nil
}

// Add adds a rendered tile to the cache. sourceHash is the xxhash of the
// payload the SVG was rendered from.
//
// If the cache is at capacity, least-recently-used tiles are evicted to make
// room. Returns error if the tile cannot be cached.
func (c *TileCache) Add(t maptile.Tile, sourceHash uint64, svg string) error {
	compressed, err := c.codec.Compress([]byte(svg))
	if err != nil {
		return fmt.Errorf("compress tile: %w", err)
	}
	memSize := int64(len(compressed)) + entryOverhead

	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.tiles[t]; ok {
		c.removeEntry(entry)
	}

	// If tile is larger than max memory, don't cache it
	if c.maxMemory > 0 && memSize > c.maxMemory {
		return fmt.Errorf("tile too large for cache (%d bytes > %d bytes max)",
			memSize, c.maxMemory)
	}

	// Evict until we have space
	if c.maxMemory > 0 {
		for c.usedMemory+memSize > c.maxMemory && c.lru.Len() > 0 {
			c.evictLRU()
		}
	}

	entry := &cacheEntry{
		tile:         t,
		sourceHash:   sourceHash,
		svg:          compressed,
		memorySize:   memSize,
		lastAccessed: time.Now(),
		accessCount:  1,
	}
	entry.element = c.lru.PushFront(entry)
	c.tiles[t] = entry
	c.usedMemory += memSize

	return nil
}

// evictLRU removes the least recently used tile from cache.
// Must be called with c.mu locked.
func (c *TileCache) evictLRU() {
	elem := c.lru.Back()
	if elem == nil {
		return
	}
	c.removeEntry(elem.Value.(*cacheEntry))
}

// removeEntry must be called with c.mu locked.
func (c *TileCache) removeEntry(entry *cacheEntry) {
	c.lru.Remove(entry.element)
	delete(c.tiles, entry.tile)
	c.usedMemory -= entry.memorySize
}

// Remove explicitly removes a tile from the cache.
func (c *TileCache) Remove(t maptile.Tile) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.tiles[t]; ok {
		c.removeEntry(entry)
	}
}

// Contains reports whether a rendering of the tile is cached.
func (c *TileCache) Contains(t maptile.Tile) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.tiles[t]
	return ok
}

// Clear removes all tiles from the cache.
func (c *TileCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tiles = make(map[maptile.Tile]*cacheEntry)
	c.lru.Init()
	c.usedMemory = 0
}

// Stats returns cache statistics.
func (c *TileCache) Stats() CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	totalAccess := 0
	for _, entry := range c.tiles {
		totalAccess += entry.accessCount
	}

	return CacheStats{
		TileCount:   len(c.tiles),
		UsedMemory:  c.usedMemory,
		MaxMemory:   c.maxMemory,
		TotalAccess: totalAccess,
		Hits:        c.hits,
		Misses:      c.misses,
	}
}

// CacheStats holds cache performance metrics.
type CacheStats struct {
	TileCount   int   // Number of tiles currently cached
	UsedMemory  int64 // Estimated memory usage in bytes
	MaxMemory   int64 // Maximum memory limit in bytes
	TotalAccess int   // Total number of accesses across all cached tiles
	Hits        int64 // Lookups served from the cache
	Misses      int64 // Lookups that called the render function
}
