package rescache

import (
	"time"

	"github.com/unkn0wn-root/rescache/internal/table"
	"github.com/unkn0wn-root/rescache/keys"
	"github.com/unkn0wn-root/rescache/ownership"
	"github.com/unkn0wn-root/rescache/report"
)

// entry is one live key's record. age drives eviction; lastAccess is
// diagnostic only and is updated by Get alone.
type entry[V any] struct {
	value      V
	age        int
	lastAccess time.Time
}

type cache[K, V any] struct {
	name  string
	keys  keys.Funcs[K]
	own   ownership.Policy[V]
	log   Logger
	hooks Hooks

	// entries is allocated by the first Add; its existence seals the
	// configuration (keys/ownership can no longer change).
	entries *table.Table[K, *entry[V]]

	stats report.Counters
}

func newCache[K, V any](opts Options[K, V]) *cache[K, V] {
	c := &cache[K, V]{
		name: opts.Name,
		keys: opts.Keys,
		own:  opts.Ownership,
	}

	// defaults
	c.log = coalesce[Logger](opts.Logger, NopLogger{})
	c.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})

	return c
}

func (c *cache[K, V]) Name() string { return c.name }

// SetName may be called at any time; the name is diagnostic only.
func (c *cache[K, V]) SetName(name string) { c.name = name }

func (c *cache[K, V]) SetKeys(f keys.Funcs[K]) bool {
	if c.entries != nil {
		c.log.Warn("SetKeys rejected (configuration sealed by first Add)", Fields{"cache": c.name})
		c.hooks.ConfigSealed(c.name, "keys")
		return false
	}
	c.keys = f
	return true
}

func (c *cache[K, V]) SetOwnership(p ownership.Policy[V]) bool {
	if c.entries != nil {
		c.log.Warn("SetOwnership rejected (configuration sealed by first Add)", Fields{"cache": c.name})
		c.hooks.ConfigSealed(c.name, "ownership")
		return false
	}
	c.own = p
	return true
}

func (c *cache[K, V]) Add(key K, value V) {
	if c.entries == nil {
		if !c.keys.Valid() {
			c.log.Error("Add rejected (key funcs not configured)", Fields{"cache": c.name})
			c.hooks.AddRejected(c.name, ReasonKeysUnset)
			return
		}
		c.entries = table.New[K, *entry[V]](c.keys.Hash, c.keys.Equal)
	}

	if e, ok := c.entries.Lookup(key); ok {
		// Keep-alive: the caller signals continued use. The stored value
		// stays untouched and the argument is discarded, never acquired.
		e.age++
		c.stats.Refreshes++
		return
	}

	if c.own.Kind() == ownership.KindInvalid {
		c.log.Error("Add rejected (no ownership policy; did you forget to set Options.Ownership?)",
			Fields{"cache": c.name})
		c.hooks.AddRejected(c.name, ReasonNoOwnership)
		return
	}

	c.entries.Insert(key, &entry[V]{value: c.own.Acquire(value), age: 1})
	c.stats.Adds++
}

func (c *cache[K, V]) Get(key K) (V, bool) {
	var zero V
	if c.entries == nil {
		c.stats.Misses++
		return zero, false
	}
	e, ok := c.entries.Lookup(key)
	if !ok {
		c.stats.Misses++
		return zero, false
	}
	e.lastAccess = time.Now()
	c.stats.Hits++
	return e.value, true
}

func (c *cache[K, V]) Has(key K) bool {
	if c.entries == nil {
		return false
	}
	_, ok := c.entries.Lookup(key)
	return ok
}

func (c *cache[K, V]) Invalidate(key K) bool {
	if c.entries == nil {
		return false
	}
	e, ok := c.entries.Lookup(key)
	if !ok {
		return false
	}
	if e.age == 0 {
		// clamp; the entry existed, so this still reports true
		c.log.Warn("too many invalidations for entry (age already 0)", Fields{"cache": c.name})
		c.hooks.InvalidateUnderflow(c.name)
		c.stats.Underflows++
		return true
	}
	e.age--
	c.stats.Invalidations++
	return true
}

// Collect performs one generation sweep. Eviction decisions are local to
// each entry, so the sweep is correct under arbitrary iteration order.
func (c *cache[K, V]) Collect() int {
	if c.entries == nil {
		return 0
	}

	evicted := c.entries.Sweep(func(key K, e *entry[V]) bool {
		if e.age == 0 {
			c.own.Release(e.value)
			if c.keys.Drop != nil {
				c.keys.Drop(key)
			}
			return true
		}
		e.age--
		return false
	})

	c.stats.Evictions += uint64(evicted)
	kept := c.entries.Len()
	if evicted > 0 {
		c.log.Debug("collection sweep", Fields{"cache": c.name, "evicted": evicted, "kept": kept})
	}
	c.hooks.Collected(c.name, evicted, kept)
	return evicted
}

func (c *cache[K, V]) Len() int {
	if c.entries == nil {
		return 0
	}
	return c.entries.Len()
}

func (c *cache[K, V]) Report() report.Report {
	r := report.Report{
		Cache:    c.name,
		TakenAt:  time.Now(),
		Counters: c.stats,
	}
	if c.entries == nil {
		return r
	}
	r.Entries = c.entries.Len()
	r.AgeHistogram = make(map[int]int, r.Entries)
	c.entries.Range(func(_ K, e *entry[V]) {
		r.AgeHistogram[e.age]++
		if !e.lastAccess.IsZero() &&
			(r.OldestAccess.IsZero() || e.lastAccess.Before(r.OldestAccess)) {
			r.OldestAccess = e.lastAccess
		}
	})
	return r
}
