package ws

// Sendable is the outbound capability a peer needs from its transport.
// The real *Conn implements it; tests substitute fakes.
type Sendable interface {
	Send(b []byte) error
}

// Peer is one live signaling connection: a process-unique identity plus
// the send side of its transport. Created by the relay when a connection
// presents a room id, forgotten when the connection closes. roomID is set
// exactly once, at join time.
type Peer struct {
	id     int64
	roomID string
	send   Sendable
	closed bool // guarded by the relay mutex
}

// ID returns the relay-assigned identity. Identities are monotonically
// assigned and never reused while the process runs.
func (p *Peer) ID() int64 { return p.id }

// RoomID returns the room this peer joined.
func (p *Peer) RoomID() string { return p.roomID }
