// Package table implements the hash table backing a resource cache: a map
// keyed by a caller-supplied hash and equality, supporting removal during
// iteration.
package table

// Table maps K to E. Distinct keys with equal hashes chain within one
// bucket and are resolved by the equality function.
type Table[K, E any] struct {
	hash    func(K) uint64
	equal   func(K, K) bool
	buckets map[uint64][]slot[K, E]
	n       int
}

type slot[K, E any] struct {
	key  K
	elem E
}

func New[K, E any](hash func(K) uint64, equal func(K, K) bool) *Table[K, E] {
	return &Table[K, E]{
		hash:    hash,
		equal:   equal,
		buckets: make(map[uint64][]slot[K, E]),
	}
}

func (t *Table[K, E]) Len() int { return t.n }

func (t *Table[K, E]) Lookup(key K) (E, bool) {
	for _, s := range t.buckets[t.hash(key)] {
		if t.equal(s.key, key) {
			return s.elem, true
		}
	}
	var zero E
	return zero, false
}

// Insert stores elem under key. The caller must have established that key
// is absent; a duplicate insert would shadow the earlier slot.
func (t *Table[K, E]) Insert(key K, elem E) {
	h := t.hash(key)
	t.buckets[h] = append(t.buckets[h], slot[K, E]{key: key, elem: elem})
	t.n++
}

// Range calls fn for every entry in unspecified order. fn must not mutate
// the table; use Sweep for removal during iteration.
func (t *Table[K, E]) Range(fn func(K, E)) {
	for _, b := range t.buckets {
		for _, s := range b {
			fn(s.key, s.elem)
		}
	}
}

// Sweep calls fn for every entry, in unspecified order, and removes those
// for which fn returns true. Returns the number removed.
func (t *Table[K, E]) Sweep(fn func(K, E) bool) int {
	removed := 0
	for h, b := range t.buckets {
		kept := b[:0]
		for _, s := range b {
			if fn(s.key, s.elem) {
				removed++
				continue
			}
			kept = append(kept, s)
		}
		if len(kept) == 0 {
			delete(t.buckets, h)
		} else {
			t.buckets[h] = kept
		}
	}
	t.n -= removed
	return removed
}
