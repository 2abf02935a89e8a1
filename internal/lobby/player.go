package lobby

// Player holds the per-room state of one connected client. A Player belongs
// to exactly one Room; its ID is the connection id and never changes while
// the connection is open.
type Player struct {
	ID     string
	Ready  bool
	Points int
}

// NewPlayer creates a player for the given connection.
func NewPlayer(connID string) *Player {
	return &Player{ID: connID}
}
