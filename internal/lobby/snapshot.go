package lobby

// RoomSnapshot is a read-only view of one room for the diagnostic endpoint.
// Connection handles appear as their ids only.
type RoomSnapshot struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	HasPass    bool             `json:"hasPass"`
	Capacity   int              `json:"capacity"`
	InProgress bool             `json:"inProgress"`
	Players    []PlayerSnapshot `json:"players"`
}

// PlayerSnapshot is a read-only view of one seated player.
type PlayerSnapshot struct {
	ID     string `json:"id"`
	Ready  bool   `json:"ready"`
	Points int    `json:"points"`
}

// Snapshot captures the full room/player tree. Safe to call from any
// goroutine.
func (h *Handler) Snapshot() []RoomSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()

	rooms := h.registry.Rooms()
	out := make([]RoomSnapshot, 0, len(rooms))
	for _, room := range rooms {
		rs := RoomSnapshot{
			ID:         room.ID,
			Name:       room.Name,
			HasPass:    room.HasPassword(),
			Capacity:   room.Capacity,
			InProgress: room.InProgress,
			Players:    make([]PlayerSnapshot, 0, len(room.Players)),
		}
		for _, p := range room.Players {
			rs.Players = append(rs.Players, PlayerSnapshot{ID: p.ID, Ready: p.Ready, Points: p.Points})
		}
		out = append(out, rs)
	}
	return out
}
