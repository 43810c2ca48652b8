// Package keys bundles the key strategy a resource cache is configured
// with: how keys hash, how they compare, and what happens when an evicted
// entry's key leaves the map.
package keys

import (
	"bytes"
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Funcs is the key strategy for one cache. Hash and Equal are required
// before the first Add; Drop is optional and runs once per evicted entry.
type Funcs[K any] struct {
	Hash  func(K) uint64
	Equal func(K, K) bool
	Drop  func(K)
}

// Valid reports whether the strategy can back a cache map.
func (f Funcs[K]) Valid() bool { return f.Hash != nil && f.Equal != nil }

// WithDrop returns a copy of f with the drop callback set.
func (f Funcs[K]) WithDrop(drop func(K)) Funcs[K] {
	f.Drop = drop
	return f
}

// String returns the stock strategy for string keys.
func String() Funcs[string] {
	return Funcs[string]{
		Hash:  xxhash.Sum64String,
		Equal: func(a, b string) bool { return a == b },
	}
}

// Bytes returns the stock strategy for []byte keys.
func Bytes() Funcs[[]byte] {
	return Funcs[[]byte]{
		Hash:  xxhash.Sum64,
		Equal: bytes.Equal,
	}
}

// Uint64 returns the stock strategy for uint64 keys (glyph indices, atlas
// slots). Keys hash through xxhash so bucket spread does not depend on the
// key distribution.
func Uint64() Funcs[uint64] {
	return Funcs[uint64]{
		Hash: func(k uint64) uint64 {
			var b [8]byte
			binary.LittleEndian.PutUint64(b[:], k)
			return xxhash.Sum64(b[:])
		},
		Equal: func(a, b uint64) bool { return a == b },
	}
}
