// Package ownership defines how a resource cache owns the values it stores.
//
// The discipline is fixed once per cache: Raw values are held as-is,
// Copyable values are copied on insert and freed on eviction, RefCounted
// values have a reference taken on insert and released on eviction. The
// cache acquires exactly once per inserted entry and releases exactly once
// per evicted entry - never for re-Adds, which discard the argument.
package ownership

// Kind tags the ownership discipline of a cache's values.
type Kind uint8

const (
	// KindInvalid is the zero Kind; a cache without a resolved policy
	// rejects Add.
	KindInvalid Kind = iota
	// KindRaw holds the caller's handle as-is: no copy, no release.
	KindRaw
	// KindCopyable stores an owned copy and frees it on eviction.
	KindCopyable
	// KindRefCounted takes a shared reference on insert and releases it
	// on eviction.
	KindRefCounted
)

func (k Kind) String() string {
	switch k {
	case KindRaw:
		return "raw"
	case KindCopyable:
		return "copyable"
	case KindRefCounted:
		return "ref-counted"
	default:
		return "invalid"
	}
}

// Policy is a closed variant over the three disciplines. The zero value is
// invalid; construct with Raw, Copyable, or RefCounted.
type Policy[V any] struct {
	kind  Kind
	copy  func(V) V
	free  func(V)
	ref   func(V)
	unref func(V)
}

// Raw returns the no-ownership policy: the cache stores and returns the
// handle it was given.
func Raw[V any]() Policy[V] { return Policy[V]{kind: KindRaw} }

// Copyable returns a policy that stores copy(v) on insert and calls free on
// eviction. copy must not be nil; free may be nil when the copy needs no
// explicit teardown.
func Copyable[V any](copy func(V) V, free func(V)) Policy[V] {
	if copy == nil {
		return Policy[V]{}
	}
	return Policy[V]{kind: KindCopyable, copy: copy, free: free}
}

// RefCounted returns a policy that calls ref on insert and unref on
// eviction. Both must be non-nil.
func RefCounted[V any](ref, unref func(V)) Policy[V] {
	if ref == nil || unref == nil {
		return Policy[V]{}
	}
	return Policy[V]{kind: KindRefCounted, ref: ref, unref: unref}
}

// Kind reports the discipline this policy resolves to.
func (p Policy[V]) Kind() Kind { return p.kind }

// Acquire takes ownership of v per the policy and returns the handle the
// cache stores.
func (p Policy[V]) Acquire(v V) V {
	switch p.kind {
	case KindCopyable:
		return p.copy(v)
	case KindRefCounted:
		p.ref(v)
		return v
	default:
		return v
	}
}

// Release gives up ownership of a stored handle.
func (p Policy[V]) Release(v V) {
	switch p.kind {
	case KindCopyable:
		if p.free != nil {
			p.free(v)
		}
	case KindRefCounted:
		p.unref(v)
	}
}
