package httpx

import (
	"net/http"

	"log/slog"

	"github.com/abhinavohri/video-call/internal/app"
	"github.com/abhinavohri/video-call/internal/ws"
	"github.com/abhinavohri/video-call/pkg/metrics"
)

// NewRouter wires up all HTTP routes, middleware, and handlers
func NewRouter(cfg app.Config, logger *slog.Logger, hub *ws.Hub, dir RoomDirectory) http.Handler {
	mw := NewMiddleware(cfg)
	api := &RoomsAPI{Directory: dir}

	mux := http.NewServeMux()

	// Health / readiness / metrics
	mux.Handle("/healthz", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(200) }))
	mux.Handle("/readyz", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(200) }))
	mux.Handle("/metrics", metrics.Handler())

	// WebSocket signaling endpoint
	mux.Handle("/ws", http.HandlerFunc(hub.ServeWS))

	// Room directory endpoints
	mux.Handle("POST /api/rooms", http.HandlerFunc(api.Create))
	mux.Handle("GET /api/rooms/{id}", http.HandlerFunc(api.Check))

	// CORS + rate limit applied globally
	return mw.Wrap(mux)
}
