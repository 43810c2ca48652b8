// Package rescache implements a generational resource cache for rendering
// pipelines: a keyed store that retains expensive-to-produce artifacts
// (rasterized glyphs, compiled textures) across frames and automatically
// evicts entries that were not revalidated recently.
//
// Components:
//   - keys.Funcs[K]: hash/equality/drop strategy for opaque keys.
//   - ownership.Policy[V]: how the cache owns stored values (Raw, Copyable,
//     RefCounted), resolved once at configuration time.
//   - Logger / Hooks: injected diagnostics; the core carries no global state.
//
// Age protocol:
//
//	cache.Add(k, v)        // new entry starts at age 1; re-Add bumps age
//	v, ok := cache.Get(k)  // borrow; never changes age
//	cache.Invalidate(k)    // age-1 (clamped at 0); eviction stays deferred
//	n := cache.Collect()   // once per frame: evict age==0, age the rest
//
// An entry added once and never touched again survives exactly one Collect
// and is evicted by the second: every artifact gets a one-generation grace
// period after its last use.
//
// The cache is driven by a single logical owner (the render/composite loop).
// Entry mutation and sweep removal are not safe to interleave from multiple
// goroutines; wrap the cache with the synced package if you need that.
package rescache
