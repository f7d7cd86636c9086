package httpx

import (
	"context"
	"encoding/json"
	"net/http"
)

// RoomDirectory issues and validates room tokens. Backed by the store in
// production; tests substitute fakes.
type RoomDirectory interface {
	Create(ctx context.Context) (string, error)
	Exists(ctx context.Context, id string) (bool, error)
}

type RoomsAPI struct{ Directory RoomDirectory }

type createRoomResp struct {
	RoomID string `json:"roomId"`
}

type checkRoomResp struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// Create mints a fresh room token for the caller to share with peers.
func (a *RoomsAPI) Create(w http.ResponseWriter, r *http.Request) {
	id, err := a.Directory.Create(r.Context())
	if err != nil {
		writeJSONStatus(w, http.StatusInternalServerError,
			map[string]string{"error": "Failed to generate unique room ID"})
		return
	}
	writeJSON(w, createRoomResp{RoomID: id})
}

// Check reports whether a room token is known to the directory.
func (a *RoomsAPI) Check(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeJSONStatus(w, http.StatusBadRequest,
			checkRoomResp{Valid: false, Error: "Room ID is required"})
		return
	}

	ok, err := a.Directory.Exists(r.Context(), id)
	if err != nil {
		writeJSONStatus(w, http.StatusInternalServerError,
			map[string]string{"error": "lookup failed"})
		return
	}
	if !ok {
		writeJSON(w, checkRoomResp{Valid: false, Error: "Room not found"})
		return
	}
	writeJSON(w, checkRoomResp{Valid: true})
}

// send JSON with proper headers
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONStatus(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
