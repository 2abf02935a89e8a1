package lobby

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Registry is the authoritative collection of live rooms. Rooms are kept in
// creation order so listings are deterministic. A room present in the
// registry always has at least one player: the operation that removes the
// last player removes the room before releasing control.
//
// Registry does no locking of its own; the Handler that owns it serializes
// access.
type Registry struct {
	rooms    []*Room
	capacity int
}

// NewRegistry creates an empty registry whose rooms seat capacity players.
func NewRegistry(capacity int) *Registry {
	return &Registry{capacity: capacity}
}

// Create allocates a room, disambiguating the requested name against the
// current registry, and adds it. It always succeeds.
func (g *Registry) Create(name string, password *string) *Room {
	room := &Room{
		ID:       generateID(),
		Name:     g.disambiguate(name),
		Password: password,
		Capacity: g.capacity,
	}
	g.rooms = append(g.rooms, room)
	return room
}

// disambiguate appends _1, _2, … until the name collides with no live room.
// Scanning the live set on every attempt means concurrent creates of the
// same base name each end up with a distinct suffix.
func (g *Registry) disambiguate(name string) string {
	candidate := name
	for n := 1; g.nameTaken(candidate); n++ {
		candidate = fmt.Sprintf("%s_%d", name, n)
	}
	return candidate
}

func (g *Registry) nameTaken(name string) bool {
	for _, room := range g.rooms {
		if room.Name == name {
			return true
		}
	}
	return false
}

// ByID returns the room with the given id, or nil.
func (g *Registry) ByID(id string) *Room {
	for _, room := range g.rooms {
		if room.ID == id {
			return room
		}
	}
	return nil
}

// Joinable returns every room with a free seat, in registry order.
func (g *Registry) Joinable() []*Room {
	var out []*Room
	for _, room := range g.rooms {
		if !room.Full() {
			out = append(out, room)
		}
	}
	return out
}

// Rooms returns all live rooms in registry order.
func (g *Registry) Rooms() []*Room {
	out := make([]*Room, len(g.rooms))
	copy(out, g.rooms)
	return out
}

// RemoveIfEmpty drops the room from the registry iff it has no players.
// Removing an absent or occupied room is a no-op.
func (g *Registry) RemoveIfEmpty(room *Room) bool {
	if room == nil || len(room.Players) > 0 {
		return false
	}
	for i, r := range g.rooms {
		if r == room {
			g.rooms = append(g.rooms[:i], g.rooms[i+1:]...)
			return true
		}
	}
	return false
}

func generateID() string {
	b := make([]byte, 4)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
