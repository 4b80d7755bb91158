// Package cache wraps dgraph-io/ristretto as a small in-process read cache.
package cache

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

type Cache[V any] struct {
	c *ristretto.Cache[string, V]
}

// New creates a ristretto-backed cache sized for maxEntries values of uniform
// cost.
func New[V any](maxEntries int64) (*Cache[V], error) {
	c, err := ristretto.NewCache(&ristretto.Config[string, V]{
		NumCounters: maxEntries * 10,
		MaxCost:     maxEntries,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &Cache[V]{c: c}, nil
}

func (c *Cache[V]) Get(key string) (V, bool) {
	return c.c.Get(key)
}

// Set stores a value with the given TTL. It waits for the write buffer to
// drain so a Set is visible to the next Get.
func (c *Cache[V]) Set(key string, value V, ttl time.Duration) {
	c.c.SetWithTTL(key, value, 1, ttl)
	c.c.Wait()
}

func (c *Cache[V]) Delete(key string) {
	c.c.Del(key)
}

func (c *Cache[V]) Close() {
	c.c.Close()
}
