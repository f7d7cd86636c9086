package store

import (
	"encoding/hex"
	"testing"
)

func TestNewRoomToken(t *testing.T) {
	a, err := NewRoomToken()
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	if len(a) != tokenBytes*2 {
		t.Fatalf("expected %d hex chars, got %q", tokenBytes*2, a)
	}
	if _, err := hex.DecodeString(a); err != nil {
		t.Fatalf("token %q is not hex: %v", a, err)
	}

	b, err := NewRoomToken()
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	if a == b {
		t.Fatalf("two mints must not collide: %q", a)
	}
}
