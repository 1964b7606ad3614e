package cache

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Netizaar/sqlfrag/fragment"
	"github.com/Netizaar/sqlfrag/utils"
)

// ScanCache memoizes placeholder-offset scans per template so hot callers
// can hand precomputed locations to fragment.NewWithOffsets instead of
// rescanning. Keys are template fingerprints; collisions are accepted the
// same way the rest of the caches accept them.
type ScanCache struct {
	cache *lru.Cache[uint64, []int]
	mu    sync.RWMutex
}

func NewScanCache(size int) *ScanCache {
	cache, _ := lru.New[uint64, []int](size)
	return &ScanCache{cache: cache}
}

// Locations returns the placeholder offsets of template, scanning once and
// caching the result. Callers must not mutate the returned slice.
func (s *ScanCache) Locations(template string) []int {
	key := utils.FingerprintString(template)

	// Fast path: read lock only.
	s.mu.RLock()
	if offsets, ok := s.cache.Get(key); ok {
		s.mu.RUnlock()
		return offsets
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Double-check after acquiring the write lock.
	if offsets, ok := s.cache.Get(key); ok {
		return offsets
	}

	offsets := fragment.PlaceholderOffsets(template)
	s.cache.Add(key, offsets)
	return offsets
}

func (s *ScanCache) Purge() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Purge()
}
