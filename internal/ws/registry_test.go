package ws

import "testing"

func TestRegistryLifecycle(t *testing.T) {
	g := NewRegistry()

	if _, ok := g.Lookup("abc"); ok {
		t.Fatalf("empty registry must not resolve any id")
	}

	rm := g.Create("abc")
	got, ok := g.Lookup("abc")
	if !ok || got != rm {
		t.Fatalf("lookup must return the created room")
	}
	if g.Len() != 1 {
		t.Fatalf("expected 1 room, got %d", g.Len())
	}

	g.Remove("abc")
	if _, ok := g.Lookup("abc"); ok {
		t.Fatalf("removed room must not resolve")
	}
	if g.Len() != 0 {
		t.Fatalf("expected 0 rooms, got %d", g.Len())
	}

	// Recreating the same id yields a distinct, empty room.
	rm2 := g.Create("abc")
	if rm2 == rm {
		t.Fatalf("recreated room must be a fresh instance")
	}
	if rm2.Len() != 0 {
		t.Fatalf("recreated room must start empty")
	}
}
