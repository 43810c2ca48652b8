package table

import "testing"

func newStringTable() *Table[string, int] {
	// constant hash forces every key into one bucket so collision chains
	// are exercised on every operation
	return New[string, int](
		func(string) uint64 { return 42 },
		func(a, b string) bool { return a == b },
	)
}

func TestLookupResolvesCollisions(t *testing.T) {
	tb := newStringTable()
	tb.Insert("a", 1)
	tb.Insert("b", 2)
	tb.Insert("c", 3)

	if tb.Len() != 3 {
		t.Fatalf("Len = %d, want 3", tb.Len())
	}
	for k, want := range map[string]int{"a": 1, "b": 2, "c": 3} {
		got, ok := tb.Lookup(k)
		if !ok || got != want {
			t.Fatalf("Lookup(%q) = %d,%v want %d", k, got, ok, want)
		}
	}
	if _, ok := tb.Lookup("d"); ok {
		t.Fatalf("Lookup hit on absent key")
	}
}

func TestSweepRemovesSelected(t *testing.T) {
	tb := newStringTable()
	tb.Insert("keep", 1)
	tb.Insert("drop1", 0)
	tb.Insert("drop2", 0)

	removed := tb.Sweep(func(_ string, v int) bool { return v == 0 })
	if removed != 2 {
		t.Fatalf("Sweep removed %d, want 2", removed)
	}
	if tb.Len() != 1 {
		t.Fatalf("Len = %d, want 1", tb.Len())
	}
	if _, ok := tb.Lookup("keep"); !ok {
		t.Fatalf("survivor lost")
	}
	if _, ok := tb.Lookup("drop1"); ok {
		t.Fatalf("removed key still present")
	}
}

func TestSweepRemovingAllDropsBucket(t *testing.T) {
	tb := newStringTable()
	tb.Insert("a", 0)
	tb.Insert("b", 0)

	if removed := tb.Sweep(func(string, int) bool { return true }); removed != 2 {
		t.Fatalf("removed %d, want 2", removed)
	}
	if tb.Len() != 0 {
		t.Fatalf("Len = %d, want 0", tb.Len())
	}
	// table stays usable after a full clear
	tb.Insert("a", 9)
	if v, ok := tb.Lookup("a"); !ok || v != 9 {
		t.Fatalf("insert after clear broken")
	}
}

func TestRangeVisitsAll(t *testing.T) {
	tb := New[uint64, int](
		func(k uint64) uint64 { return k % 2 }, // two buckets
		func(a, b uint64) bool { return a == b },
	)
	for i := uint64(0); i < 6; i++ {
		tb.Insert(i, int(i))
	}

	seen := make(map[uint64]bool)
	tb.Range(func(k uint64, _ int) { seen[k] = true })
	if len(seen) != 6 {
		t.Fatalf("Range visited %d keys, want 6", len(seen))
	}
}
