package rescache

import (
	"github.com/unkn0wn-root/rescache/keys"
	"github.com/unkn0wn-root/rescache/ownership"
	"github.com/unkn0wn-root/rescache/report"
)

// Cache is an alias-style shorthand for ResourceCache, e.g.
// rescache.Cache[GlyphKey, *Texture]. (Expressed as an embedding interface
// because generic type aliases require Go 1.24.)
type Cache[K, V any] interface {
	ResourceCache[K, V]
}

// ResourceCache is the generational cache API. K is the caller's key type,
// V the cached artifact. Key hashing/equality and value ownership are
// delegated to the configured strategies.
type ResourceCache[K, V any] interface {
	// Add inserts value under key with age 1, or, when key is already
	// present, bumps the entry's age by one and discards the argument.
	// Re-Add is the caller's "I am still using this" signal, not a replace.
	Add(key K, value V)

	// Get returns the stored value on hit, updating the entry's last-access
	// timestamp. The value is borrowed: ownership stays with the cache per
	// its policy. Get never changes age.
	Get(key K) (v V, ok bool)

	// Has is a pure membership test with no side effects.
	Has(key K) bool

	// Invalidate ages the entry by one (clamped at 0) and reports whether
	// it existed. Removal is deferred to the next Collect.
	Invalidate(key K) bool

	// Collect performs one generation sweep: entries at age 0 are removed
	// and released, all others age by one. Returns the number removed.
	Collect() int

	// Len reports the number of live entries.
	Len() int

	// Report takes a diagnostic snapshot of the cache.
	Report() report.Report

	Name() string
	SetName(name string)

	// SetKeys and SetOwnership configure the cache before first use.
	// They are rejected (returning false) once the first Add has sealed
	// the configuration.
	SetKeys(f keys.Funcs[K]) bool
	SetOwnership(p ownership.Policy[V]) bool
}

// Options configure a cache at construction. All fields are optional at New
// time, but Keys and Ownership must be resolved before the first Add.
type Options[K, V any] struct {
	// Name is a short diagnostic name, e.g. "glyphs", "textures".
	Name string

	Keys      keys.Funcs[K]
	Ownership ownership.Policy[V]

	Logger Logger // if nil, NopLogger is used
	Hooks  Hooks  // if nil, NopHooks is used
}

// New constructs a cache. Construction never fails: configuration misuse is
// degraded to diagnostics at call time, never to errors or panics.
func New[K, V any](opts Options[K, V]) ResourceCache[K, V] {
	return newCache(opts)
}
