package app

import (
	"testing"
	"time"
)

func TestSplitCSV(t *testing.T) {
	got := splitCSV(" http://a.test , ,http://b.test")
	if len(got) != 2 || got[0] != "http://a.test" || got[1] != "http://b.test" {
		t.Fatalf("unexpected split %v", got)
	}
	if got := splitCSV(""); len(got) != 0 {
		t.Fatalf("empty input must yield nothing, got %v", got)
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("TEST_TTL", "30m")
	if d := getEnvDuration("TEST_TTL", time.Hour); d != 30*time.Minute {
		t.Fatalf("expected 30m, got %v", d)
	}

	t.Setenv("TEST_TTL", "soon")
	if d := getEnvDuration("TEST_TTL", time.Hour); d != time.Hour {
		t.Fatalf("bad value must fall back, got %v", d)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("ROOM_TTL", "1h")
	t.Setenv("WS_SEND_BUFFER", "64")

	cfg := LoadConfig()
	if cfg.HTTPAddr != ":9999" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.RoomTTL != time.Hour {
		t.Fatalf("RoomTTL = %v", cfg.RoomTTL)
	}
	if cfg.WSSendBuffer != 64 {
		t.Fatalf("WSSendBuffer = %d", cfg.WSSendBuffer)
	}
}
