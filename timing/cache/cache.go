// Package cache implements the set-associative LRU cache model that serves
// as the controller's timing oracle. Grounded on the teacher's
// timing/cache/cache.go use of an Akita cache directory for set/way/tag/
// valid/LRU-stamp bookkeeping, but the teacher's data-storage layer
// (dataStore, BackingStore, extractData/storeData) is dropped entirely:
// the core spec's cache "models addressing and replacement only" and never
// stores or returns data bytes (see original_source/project2/src/cache.cpp,
// whose cacheArray holds only tags, never block contents).
package cache

import (
	akitacache "github.com/sarchlab/akita/v4/mem/cache"
)

// Operation distinguishes a read access from a write access. The core spec
// is explicit that operation code is not used for placement policy; it is
// retained here only because callers have one to report.
type Operation uint8

// Operation values.
const (
	OperationRead Operation = iota
	OperationWrite
)

// Config holds one cache's geometry, matching the core spec's external
// cache-configuration interface: {cache_size, block_size, ways,
// miss_latency}.
type Config struct {
	CacheSize   int
	BlockSize   int
	Ways        int
	MissLatency uint64
}

// Cache is a set-associative LRU cache that answers hit/miss for an address
// and records hit/miss counters. It stores no data.
type Cache struct {
	config Config

	// directory is nil for a degenerate configuration (zero sets or zero
	// ways); every access against a nil directory is defined to miss.
	directory *akitacache.DirectoryImpl

	hits, misses uint64
}

// New constructs a Cache from the given configuration. A degenerate
// configuration (CacheSize, BlockSize, or Ways of zero, or a geometry with
// fewer blocks than ways, so that the set count rounds down to zero) yields
// a Cache whose every access is a miss, per the core spec's
// degenerate-config edge case.
func New(config Config) *Cache {
	c := &Cache{config: config}

	if config.BlockSize <= 0 || config.Ways <= 0 || config.CacheSize <= 0 {
		return c
	}

	numBlocks := config.CacheSize / config.BlockSize
	numSets := numBlocks / config.Ways
	if numSets <= 0 {
		return c
	}

	c.directory = akitacache.NewDirectory(numSets, config.Ways, config.BlockSize, akitacache.NewLRUVictimFinder())
	return c
}

// Config returns the cache's configuration.
func (c *Cache) Config() Config { return c.config }

// Hits returns the number of accesses that hit.
func (c *Cache) Hits() uint64 { return c.hits }

// Misses returns the number of accesses that missed.
func (c *Cache) Misses() uint64 { return c.misses }

// MissLatency returns the configured miss latency in cycles.
func (c *Cache) MissLatency() uint64 { return c.config.MissLatency }

// blockAddr computes the block-aligned address containing addr.
func (c *Cache) blockAddr(addr uint64) uint64 {
	blockSize := uint64(c.config.BlockSize)
	return (addr / blockSize) * blockSize
}

// Access looks up addr in the cache, updating LRU state and the hit/miss
// counters. The operation code never affects placement: this cache is
// write-allocate and tracks no dirty state.
func (c *Cache) Access(addr uint64, _ Operation) bool {
	if c.directory == nil {
		c.misses++
		return false
	}

	block := c.directory.Lookup(0, c.blockAddr(addr))
	if block != nil && block.IsValid {
		c.hits++
		c.directory.Visit(block)
		return true
	}

	c.misses++
	victim := c.directory.FindVictim(c.blockAddr(addr))
	if victim == nil {
		return false
	}
	victim.Tag = c.blockAddr(addr)
	victim.IsValid = true
	c.directory.Visit(victim)
	return false
}

// Invalidate clears the valid bit of the way matching addr, if any. Used by
// the controller to abandon a prefetch when a taken branch redirects while
// an I-miss is outstanding.
func (c *Cache) Invalidate(addr uint64) {
	if c.directory == nil {
		return
	}
	block := c.directory.Lookup(0, c.blockAddr(addr))
	if block != nil && block.IsValid {
		block.IsValid = false
	}
}

// Reset clears all cache state and counters.
func (c *Cache) Reset() {
	if c.directory != nil {
		c.directory.Reset()
	}
	c.hits, c.misses = 0, 0
}
