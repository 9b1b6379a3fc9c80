package urlcheck

import (
	"container/list"
	"sync"

	"github.com/shieldsms/smishing-filter/internal/core"
)

// resultCache is a fixed-capacity LRU memo for URL analysis results, safe
// for concurrent use. Eviction is strictly by recency; entries never expire
// because the analysis of a given URL string never changes within a process.
type resultCache struct {
	mu       sync.Mutex
	capacity int
	order    *list.List // front = most recently used
	entries  map[string]*list.Element
}

type cacheItem struct {
	key    string
	result core.URLRiskResult
}

func newResultCache(capacity int) *resultCache {
	return &resultCache{
		capacity: capacity,
		order:    list.New(),
		entries:  make(map[string]*list.Element, capacity),
	}
}

func (c *resultCache) get(key string) (core.URLRiskResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		return core.URLRiskResult{}, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*cacheItem).result, true
}

func (c *resultCache) put(key string, result core.URLRiskResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		elem.Value.(*cacheItem).result = result
		c.order.MoveToFront(elem)
		return
	}

	c.entries[key] = c.order.PushFront(&cacheItem{key: key, result: result})

	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*cacheItem).key)
		}
	}
}

func (c *resultCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
