package ws

// Registry owns every live Room, keyed by room id. Rooms appear on first
// join and must be removed the instant they empty; the relay re-looks-up
// by id on every event so it never acts on a destroyed room.
// Not safe for concurrent use; the relay serializes all access.
type Registry struct {
	rooms map[string]*Room
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry { return &Registry{rooms: map[string]*Room{}} }

// Lookup returns the room for id, if it exists.
func (g *Registry) Lookup(id string) (*Room, bool) {
	rm, ok := g.rooms[id]
	return rm, ok
}

// Create makes a fresh empty room for id. Precondition: id is not present.
func (g *Registry) Create(id string) *Room {
	rm := newRoom(id)
	g.rooms[id] = rm
	return rm
}

// Remove destroys the room for id.
func (g *Registry) Remove(id string) { delete(g.rooms, id) }

// Len returns the number of live rooms.
func (g *Registry) Len() int { return len(g.rooms) }
