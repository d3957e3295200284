package source

import "testing"

func TestInternerBasic(t *testing.T) {
	interner := NewInterner()

	if s, ok := interner.Lookup(NoStringID); !ok || s != "" {
		t.Errorf("NoStringID must map to empty string, got %q ok=%v", s, ok)
	}

	id1 := interner.Intern("field_name")
	if id1 == NoStringID {
		t.Fatal("Intern returned NoStringID for non-empty string")
	}
	if id2 := interner.Intern("field_name"); id1 != id2 {
		t.Errorf("same string interned twice: %d != %d", id1, id2)
	}
	if s := interner.MustLookup(id1); s != "field_name" {
		t.Errorf("Lookup = %q", s)
	}
	if interner.Intern("other") == id1 {
		t.Error("different strings share an ID")
	}
	if interner.Len() != 3 {
		t.Errorf("Len = %d, want 3", interner.Len())
	}
}

func TestInternerBytesMatchesString(t *testing.T) {
	interner := NewInterner()
	if interner.InternBytes([]byte("x")) != interner.Intern("x") {
		t.Fatal("InternBytes and Intern disagree")
	}
}

func TestInternerStringCopy(t *testing.T) {
	interner := NewInterner()
	buf := []byte("abc")
	id := interner.InternBytes(buf)
	buf[0] = 'z'
	if s := interner.MustLookup(id); s != "abc" {
		t.Fatalf("interned string aliases caller buffer: %q", s)
	}
}

func TestInternerMustLookupPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewInterner().MustLookup(StringID(42))
}
