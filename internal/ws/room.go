package ws

// Room is the set of peers sharing one room id. Members are kept in join
// order so announcements reach everyone in the order connects happened.
// Not safe for concurrent use; the relay serializes all access.
type Room struct {
	id      string
	members []*Peer
}

func newRoom(id string) *Room { return &Room{id: id} }

// Join adds p to the member list. Announcing to existing members is the
// caller's job and must happen before this call.
func (r *Room) Join(p *Peer) { r.members = append(r.members, p) }

// Leave removes p and reports whether the room is now empty. Removing a
// peer that is not a member just reports the current emptiness.
func (r *Room) Leave(p *Peer) bool {
	for i, m := range r.members {
		if m == p {
			r.members = append(r.members[:i], r.members[i+1:]...)
			break
		}
	}
	return len(r.members) == 0
}

// Len returns the current member count.
func (r *Room) Len() int { return len(r.members) }

// Broadcast enqueues b to every member except the excluded peer, in join
// order. A failed send never aborts delivery to the rest; peers whose
// send failed are returned so the caller can log them.
func (r *Room) Broadcast(b []byte, except *Peer) []*Peer {
	var failed []*Peer
	for _, m := range r.members {
		if m == except {
			continue
		}
		if err := m.send.Send(b); err != nil {
			failed = append(failed, m)
		}
	}
	return failed
}
