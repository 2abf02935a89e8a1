package lobby

// Room groups up to Capacity players for one match. Players are kept in join
// order; seat numbers handed out at round start are positions in this slice.
//
// Password is nil for public rooms. An absent password is distinct from any
// string, including "" — a private room whose password is the empty string is
// still private.
type Room struct {
	ID         string
	Name       string
	Password   *string
	Capacity   int
	InProgress bool
	Players    []*Player
}

// HasPassword reports whether the room is private.
func (r *Room) HasPassword() bool {
	return r.Password != nil
}

// PasswordMatches compares a join attempt's password against the room's,
// byte-exact. Two absent passwords match; absent against any string does not.
func (r *Room) PasswordMatches(password *string) bool {
	if (r.Password == nil) != (password == nil) {
		return false
	}
	return r.Password == nil || *r.Password == *password
}

// PlayerCount returns the current occupancy.
func (r *Room) PlayerCount() int {
	return len(r.Players)
}

// Full reports whether every seat is taken.
func (r *Room) Full() bool {
	return len(r.Players) >= r.Capacity
}

// AddPlayer seats a player if a seat is free.
func (r *Room) AddPlayer(p *Player) bool {
	if r.Full() {
		return false
	}
	r.Players = append(r.Players, p)
	return true
}

// RemovePlayer unseats the player with the given connection id and reports
// whether it was present.
func (r *Room) RemovePlayer(connID string) bool {
	for i, p := range r.Players {
		if p.ID == connID {
			r.Players = append(r.Players[:i], r.Players[i+1:]...)
			return true
		}
	}
	return false
}

// Player returns the seated player with the given connection id, or nil.
func (r *Room) Player(connID string) *Player {
	for _, p := range r.Players {
		if p.ID == connID {
			return p
		}
	}
	return nil
}

// AllReady reports whether every occupant has signalled readiness.
func (r *Room) AllReady() bool {
	for _, p := range r.Players {
		if !p.Ready {
			return false
		}
	}
	return true
}

// resetRound returns the room to the waiting state so a new ready-check
// cycle can run once another player joins.
func (r *Room) resetRound() {
	r.InProgress = false
	for _, p := range r.Players {
		p.Ready = false
	}
}
