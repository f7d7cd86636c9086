package ws

import (
	"encoding/json"
	"net/http"

	"log/slog"
)

// Hub bridges HTTP upgrades to the relay: one goroutine per connection
// reading frames, one draining its outbound buffer. Room state itself is
// serialized inside the relay.
type Hub struct {
	log     *slog.Logger
	relay   *Relay
	sendBuf int
}

// NewHub wires the websocket endpoint to a relay. sendBuf is the per-
// connection outbound queue length.
func NewHub(log *slog.Logger, relay *Relay, sendBuf int) *Hub {
	return &Hub{log: log, relay: relay, sendBuf: sendBuf}
}

// ServeWS handles a new /ws connection for a room token.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	roomID := r.URL.Query().Get("room")

	wsc, err := Accept(w, r)
	if err != nil {
		h.log.Error("ws.accept", "err", err)
		return
	}

	c := NewConn(wsc, h.sendBuf)
	go c.WriteLoop(ctx)

	p, err := h.relay.Connect(c, roomID)
	if err != nil {
		h.log.Info("ws.rejected", "err", err)
		_ = c.CloseReject("room required")
		return
	}

	for {
		payload, ok := c.Read(ctx)
		if !ok {
			break
		}
		// Payloads are opaque but must at least be JSON; a frame that
		// isn't is a protocol violation and tears the connection down.
		if !json.Valid(payload) {
			h.log.Warn("ws.bad_frame", "room", roomID, "peer", p.ID())
			break
		}
		h.relay.Message(p, payload)
	}

	// Teardown always completes: leave the room first, then close the
	// socket, and never let either failure escape.
	h.relay.Disconnect(p)
	_ = c.Close()
}
