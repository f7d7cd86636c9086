package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/abhinavohri/video-call/internal/app"
	"github.com/abhinavohri/video-call/internal/ws"
)

type fakeDirectory struct {
	next  string
	known map[string]bool
	down  bool
}

func (f *fakeDirectory) Create(ctx context.Context) (string, error) {
	if f.down {
		return "", errors.New("db down")
	}
	return f.next, nil
}

func (f *fakeDirectory) Exists(ctx context.Context, id string) (bool, error) {
	if f.down {
		return false, errors.New("db down")
	}
	return f.known[id], nil
}

func newTestRouter(dir RoomDirectory) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := app.Config{CORSAllow: []string{"*"}}
	relay := ws.NewRelay(logger)
	hub := ws.NewHub(logger, relay, 8)
	return NewRouter(cfg, logger, hub, dir)
}

func doJSON(t *testing.T, h http.Handler, method, path string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var body map[string]any
	if rec.Body.Len() > 0 {
		_ = json.Unmarshal(rec.Body.Bytes(), &body)
	}
	return rec.Code, body
}

func TestCreateRoom(t *testing.T) {
	h := newTestRouter(&fakeDirectory{next: "8f4e2a1bc09d7e65"})

	code, body := doJSON(t, h, http.MethodPost, "/api/rooms")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if body["roomId"] != "8f4e2a1bc09d7e65" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestCreateRoomDirectoryDown(t *testing.T) {
	h := newTestRouter(&fakeDirectory{down: true})

	code, body := doJSON(t, h, http.MethodPost, "/api/rooms")
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if body["error"] == "" {
		t.Fatalf("expected an error body, got %v", body)
	}
}

func TestCheckRoom(t *testing.T) {
	h := newTestRouter(&fakeDirectory{known: map[string]bool{"goodtoken": true}})

	code, body := doJSON(t, h, http.MethodGet, "/api/rooms/goodtoken")
	if code != http.StatusOK || body["valid"] != true {
		t.Fatalf("expected valid room, got %d %v", code, body)
	}

	code, body = doJSON(t, h, http.MethodGet, "/api/rooms/badtoken")
	if code != http.StatusOK || body["valid"] != false {
		t.Fatalf("expected invalid room, got %d %v", code, body)
	}
	if body["error"] != "Room not found" {
		t.Fatalf("unexpected error string %v", body)
	}
}

func TestCreateRoomWrongMethod(t *testing.T) {
	h := newTestRouter(&fakeDirectory{})

	code, _ := doJSON(t, h, http.MethodGet, "/api/rooms")
	if code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", code)
	}
}

func TestHealthEndpoints(t *testing.T) {
	h := newTestRouter(&fakeDirectory{})

	for _, path := range []string{"/healthz", "/readyz"} {
		code, _ := doJSON(t, h, http.MethodGet, path)
		if code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, code)
		}
	}
}
