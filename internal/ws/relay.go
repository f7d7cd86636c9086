package ws

import (
	"encoding/json"
	"errors"
	"sync"

	"log/slog"

	"github.com/abhinavohri/video-call/pkg/metrics"
)

// ErrRoomRequired rejects connections whose handshake carried no room id.
// Rooms without an id are never created.
var ErrRoomRequired = errors.New("room id required")

// Wire envelopes. Signal payloads pass through untouched.
type meMsg struct {
	Type string `json:"type"`
	ID   int64  `json:"id"`
}

type presenceMsg struct {
	Type   string `json:"type"`
	UserID int64  `json:"userId"`
}

type signalMsg struct {
	Type   string          `json:"type"`
	Sender int64           `json:"sender"`
	Data   json.RawMessage `json:"data"`
}

// Relay routes signaling messages between peers that share a room. It
// reacts to connect, message, and close events from the transport layer
// and never interprets payloads.
//
// One mutex serializes every registry and room mutation, so events on a
// room apply in the order they arrive and broadcasts always see a settled
// member list. Sends themselves are non-blocking enqueues to each peer's
// own outbound buffer, so no event ever waits on another connection.
type Relay struct {
	log *slog.Logger

	mu       sync.Mutex
	registry *Registry
	nextID   int64
}

// NewRelay returns a relay with an empty room registry. Each relay is
// self-contained; several can coexist in one process.
func NewRelay(log *slog.Logger) *Relay {
	return &Relay{log: log, registry: NewRegistry()}
}

// Connect handles a new transport session that presented roomID at
// handshake time. Existing members hear about the newcomer before it is
// registered, so nobody ever receives its own announcement; the newcomer
// then gets a private "me" carrying its assigned identity.
func (r *Relay) Connect(send Sendable, roomID string) (*Peer, error) {
	if roomID == "" {
		metrics.ConnectionsRejected.Inc()
		return nil, ErrRoomRequired
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	p := &Peer{id: r.nextID, roomID: roomID, send: send}

	rm, ok := r.registry.Lookup(roomID)
	if !ok {
		rm = r.registry.Create(roomID)
		metrics.ActiveRooms.Inc()
	}

	announce, _ := json.Marshal(presenceMsg{Type: "user-connected", UserID: p.id})
	r.fanout(rm, announce, nil)
	rm.Join(p)

	me, _ := json.Marshal(meMsg{Type: "me", ID: p.id})
	if err := p.send.Send(me); err != nil {
		metrics.SendFailures.Inc()
		r.log.Warn("relay.send_failed", "room", roomID, "peer", p.id)
	}

	metrics.ConnectionsAccepted.Inc()
	metrics.ActivePeers.Inc()
	r.log.Info("relay.join", "room", roomID, "peer", p.id, "members", rm.Len())
	return p, nil
}

// Message relays one inbound payload from p to every other member of its
// room, stamped with the sender identity. Messages from a peer that never
// joined, or whose room is already gone, are silently dropped.
func (r *Relay) Message(p *Peer, payload json.RawMessage) {
	if p == nil || p.roomID == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if p.closed {
		return
	}
	rm, ok := r.registry.Lookup(p.roomID)
	if !ok {
		return
	}

	b, _ := json.Marshal(signalMsg{Type: "signal", Sender: p.id, Data: payload})
	r.fanout(rm, b, p)
	metrics.SignalsRelayed.Inc()
}

// Disconnect removes p from its room, tells the remaining members, and
// destroys the room if p was the last one out. Idempotent: repeat calls
// and calls for peers that never joined do nothing.
func (r *Relay) Disconnect(p *Peer) {
	if p == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true
	metrics.ActivePeers.Dec()

	rm, ok := r.registry.Lookup(p.roomID)
	if !ok {
		return
	}

	if rm.Leave(p) {
		r.registry.Remove(p.roomID)
		metrics.ActiveRooms.Dec()
		r.log.Info("relay.room_closed", "room", p.roomID)
		return
	}

	b, _ := json.Marshal(presenceMsg{Type: "user-disconnected", UserID: p.id})
	r.fanout(rm, b, p)
	r.log.Info("relay.leave", "room", p.roomID, "peer", p.id, "members", rm.Len())
}

// Rooms reports how many rooms are live.
func (r *Relay) Rooms() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.registry.Len()
}

// fanout broadcasts b and logs peers that could not be reached. Must be
// called with r.mu held.
func (r *Relay) fanout(rm *Room, b []byte, except *Peer) {
	for _, p := range rm.Broadcast(b, except) {
		metrics.SendFailures.Inc()
		r.log.Warn("relay.send_failed", "room", rm.id, "peer", p.id)
	}
}
