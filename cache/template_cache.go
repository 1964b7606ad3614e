package cache

import (
	"sync"
)

// TemplateCache maps a (dialect, template) fingerprint to the rebound SQL
// text so repeated renders of the same fragment shape skip the rewrite.
type TemplateCache interface {
	Get(key uint64) (string, bool)
	Set(key uint64, sql string)
}

type memTemplateCache struct {
	mu   sync.RWMutex
	data map[uint64]string
}

func NewTemplateCache() TemplateCache {
	return &memTemplateCache{
		data: make(map[uint64]string, 256),
	}
}

func (c *memTemplateCache) Get(key uint64) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	sql, ok := c.data[key]
	return sql, ok
}

func (c *memTemplateCache) Set(key uint64, sql string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = sql
}
