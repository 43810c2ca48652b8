// Package synced wraps a resource cache in coarse mutual exclusion for
// callers that cannot guarantee a single owning goroutine. Entry mutation
// and sweep removal are not individually safe to interleave, so every
// operation serializes behind one mutex.
package synced

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/unkn0wn-root/rescache"
	"github.com/unkn0wn-root/rescache/report"
)

// Cache serializes every operation of the wrapped cache. GetOrAdd
// additionally deduplicates concurrent loads of the same key.
type Cache[K, V any] struct {
	mu    sync.Mutex
	inner rescache.ResourceCache[K, V]

	// flightKey names a key for load deduplication; distinct keys must map
	// to distinct strings or unrelated loads would coalesce.
	flightKey func(K) string
	sf        singleflight.Group
}

func New[K, V any](inner rescache.ResourceCache[K, V], flightKey func(K) string) *Cache[K, V] {
	return &Cache[K, V]{inner: inner, flightKey: flightKey}
}

func (c *Cache[K, V]) Add(key K, value V) {
	c.mu.Lock()
	c.inner.Add(key, value)
	c.mu.Unlock()
}

func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.Get(key)
}

func (c *Cache[K, V]) Has(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.Has(key)
}

func (c *Cache[K, V]) Invalidate(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.Invalidate(key)
}

func (c *Cache[K, V]) Collect() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.Collect()
}

func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.Len()
}

func (c *Cache[K, V]) Report() report.Report {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.Report()
}

// GetOrAdd returns the cached value for key, bumping its age as a liveness
// signal, or produces it with load and inserts it. Concurrent loads of the
// same key are coalesced; every caller of a coalesced load observes the
// same stored value. load runs without the cache lock held.
func (c *Cache[K, V]) GetOrAdd(key K, load func() (V, error)) (V, error) {
	c.mu.Lock()
	if v, ok := c.inner.Get(key); ok {
		c.inner.Add(key, v) // keep-alive bump; the argument is discarded
		c.mu.Unlock()
		return v, nil
	}
	c.mu.Unlock()

	res, err, _ := c.sf.Do(c.flightKey(key), func() (any, error) {
		// re-check: another flight may have inserted while we queued
		c.mu.Lock()
		if v, ok := c.inner.Get(key); ok {
			c.inner.Add(key, v)
			c.mu.Unlock()
			return v, nil
		}
		c.mu.Unlock()

		v, err := load()
		if err != nil {
			var zero V
			return zero, err
		}

		c.mu.Lock()
		c.inner.Add(key, v)
		// return the stored handle (for Copyable policies, the owned copy);
		// falls back to the loaded value if the Add was rejected
		if got, ok := c.inner.Get(key); ok {
			v = got
		}
		c.mu.Unlock()
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return res.(V), nil
}
