package keys

import "testing"

func TestValid(t *testing.T) {
	var zero Funcs[string]
	if zero.Valid() {
		t.Fatalf("zero Funcs must be invalid")
	}
	if !String().Valid() || !Bytes().Valid() || !Uint64().Valid() {
		t.Fatalf("stock strategies must be valid")
	}
	if (Funcs[string]{Hash: String().Hash}).Valid() {
		t.Fatalf("missing Equal must be invalid")
	}
}

func TestStringFuncs(t *testing.T) {
	f := String()
	if f.Hash("glyph:a") != f.Hash("glyph:a") {
		t.Fatalf("hash not deterministic")
	}
	if !f.Equal("glyph:a", "glyph:a") || f.Equal("glyph:a", "glyph:b") {
		t.Fatalf("equality broken")
	}
}

func TestBytesFuncs(t *testing.T) {
	f := Bytes()
	a := []byte{1, 2, 3}
	b := []byte{1, 2, 3}
	if f.Hash(a) != f.Hash(b) {
		t.Fatalf("equal byte keys must hash equal")
	}
	if !f.Equal(a, b) || f.Equal(a, []byte{1, 2}) {
		t.Fatalf("equality broken")
	}
}

func TestUint64Funcs(t *testing.T) {
	f := Uint64()
	if f.Hash(7) != f.Hash(7) {
		t.Fatalf("hash not deterministic")
	}
	// sequential keys should not collapse onto each other
	if f.Hash(1) == f.Hash(2) {
		t.Fatalf("suspicious collision for adjacent keys")
	}
	if !f.Equal(7, 7) || f.Equal(7, 8) {
		t.Fatalf("equality broken")
	}
}

func TestWithDrop(t *testing.T) {
	dropped := ""
	f := String().WithDrop(func(k string) { dropped = k })
	if f.Drop == nil {
		t.Fatalf("WithDrop did not set the callback")
	}
	f.Drop("k")
	if dropped != "k" {
		t.Fatalf("drop callback not invoked")
	}
	if String().Drop != nil {
		t.Fatalf("WithDrop must not mutate the source strategy")
	}
}
