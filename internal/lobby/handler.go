package lobby

import (
	"encoding/json"
	"log"
	"sync"

	"shuttle/internal/protocol"
)

// Handler is the lobby protocol engine. It owns the room registry and the
// binding record from connection id to the room that connection currently
// occupies, and reacts to inbound events by mutating rooms and emitting
// responses through the Transport.
//
// The Hub feeds Handler from a single goroutine, so each inbound event runs
// to completion before the next one observes shared state. The mutex exists
// for the one concurrent reader, the debug snapshot.
type Handler struct {
	mu        sync.Mutex
	transport Transport
	registry  *Registry
	bindings  map[string]string // connection id → room id
}

// NewHandler creates a handler whose rooms seat capacity players.
func NewHandler(transport Transport, capacity int) *Handler {
	return &Handler{
		transport: transport,
		registry:  NewRegistry(capacity),
		bindings:  make(map[string]string),
	}
}

// Connect greets a new connection with the current room listing and its
// assigned id.
func (h *Handler) Connect(connID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, room := range h.registry.Rooms() {
		h.transport.Emit(connID, protocol.MustEnvelope(protocol.MsgRoomConnect, roomState(room)))
	}
	h.transport.Emit(connID, protocol.MustEnvelope(protocol.MsgInit, protocol.InitMsg{Player: connID}))
}

// HandleMessage dispatches one inbound envelope. Unknown kinds and malformed
// payloads are logged and dropped; no inbound message may fault the handler.
func (h *Handler) HandleMessage(connID string, env protocol.Envelope) {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch env.Type {
	case protocol.MsgGetRooms:
		h.handleGetRooms(connID)
	case protocol.MsgCreateRoom:
		h.handleCreateRoom(connID, env.Payload, false)
	case protocol.MsgCreatePrivateRoom:
		h.handleCreateRoom(connID, env.Payload, true)
	case protocol.MsgJoinRoom:
		h.handleJoinRoom(connID, env.Payload, false)
	case protocol.MsgJoinPrivateRoom:
		h.handleJoinRoom(connID, env.Payload, true)
	case protocol.MsgLeaveRoom:
		h.handleLeaveRoom(connID)
	case protocol.MsgReady:
		h.handleReady(connID, env.Payload, true)
	case protocol.MsgNotReady:
		h.handleReady(connID, env.Payload, false)
	case protocol.MsgUpdate, protocol.MsgHit:
		h.relay(connID, env.Type, env.Payload, false)
	case protocol.MsgSynchronize:
		h.relay(connID, env.Type, env.Payload, true)
	default:
		log.Printf("lobby: unknown message type %q from %s", env.Type, connID)
	}
}

func (h *Handler) handleGetRooms(connID string) {
	for _, room := range h.registry.Joinable() {
		h.transport.Emit(connID, protocol.MustEnvelope(protocol.MsgRoomConnect, roomState(room)))
	}
}

func (h *Handler) handleCreateRoom(connID string, payload json.RawMessage, private bool) {
	var req protocol.CreateRoomMsg
	if err := json.Unmarshal(payload, &req); err != nil {
		log.Printf("lobby: bad create payload from %s: %v", connID, err)
		return
	}
	var password *string
	if private {
		password = req.Password
		if password == nil {
			empty := ""
			password = &empty
		}
	}

	room := h.registry.Create(req.RoomName, password)
	room.AddPlayer(NewPlayer(connID))
	h.bindings[connID] = room.ID

	env := protocol.MustEnvelope(protocol.MsgRoomConnect, roomState(room))
	h.transport.Emit(connID, env)
	h.transport.BroadcastExcept(connID, env)
	log.Printf("lobby: room %s (%q) created by %s", room.ID, room.Name, connID)
}

func (h *Handler) handleJoinRoom(connID string, payload json.RawMessage, private bool) {
	var req protocol.JoinRoomMsg
	if err := json.Unmarshal(payload, &req); err != nil {
		log.Printf("lobby: bad join payload from %s: %v", connID, err)
		return
	}

	room := h.registry.ByID(req.RoomID)
	ok := room != nil && !room.Full()
	if ok && private {
		// Password is only consulted once id and capacity have matched.
		ok = room.PasswordMatches(req.Password)
	}
	if !ok {
		delete(h.bindings, connID)
		h.transport.Emit(connID, protocol.MustEnvelope(protocol.MsgErrorJoiningRoom, protocol.JoinErrorMsg{RoomID: req.RoomID}))
		return
	}

	room.AddPlayer(NewPlayer(connID))
	h.bindings[connID] = room.ID

	if room.Full() {
		start := protocol.MustEnvelope(protocol.MsgStartGame, protocol.StartGameMsg{ID: room.ID})
		for _, p := range room.Players {
			h.transport.Emit(p.ID, start)
		}
	}

	// Refresh everyone's listing: retract the stale entry, re-announce with
	// the new occupancy.
	gone := protocol.MustEnvelope(protocol.MsgRoomDisconnect, protocol.RoomGoneMsg{Room: room.ID, Name: room.Name})
	state := protocol.MustEnvelope(protocol.MsgRoomConnect, roomState(room))
	h.transport.BroadcastExcept(connID, gone)
	h.transport.BroadcastExcept(connID, state)
	h.transport.Emit(connID, gone)
	h.transport.Emit(connID, state)
}

func (h *Handler) handleLeaveRoom(connID string) {
	// The binding can be stale after an earlier leave, so search every room
	// for the player and clear the binding no matter what was found.
	defer delete(h.bindings, connID)

	for _, room := range h.registry.Rooms() {
		if !room.RemovePlayer(connID) {
			continue
		}
		if h.registry.RemoveIfEmpty(room) {
			gone := protocol.MustEnvelope(protocol.MsgRoomDisconnect, protocol.RoomGoneMsg{Room: room.ID, Name: room.Name})
			h.transport.Emit(connID, gone)
			h.transport.BroadcastExcept(connID, gone)
			log.Printf("lobby: room %s removed", room.ID)
		} else if room.PlayerCount() < 2 {
			room.resetRound()
		}
		return
	}
}

func (h *Handler) handleReady(connID string, payload json.RawMessage, ready bool) {
	room := h.boundRoom(connID)
	if room == nil {
		return
	}
	player := room.Player(connID)
	if player == nil {
		return
	}
	player.Ready = ready

	typ := protocol.MsgNotReady
	if ready {
		typ = protocol.MsgReady
	}
	h.relayToOthers(room, connID, typ, payload, false)

	if ready && !room.InProgress && room.PlayerCount() >= 2 && room.AllReady() {
		room.InProgress = true
		for i, p := range room.Players {
			h.transport.Emit(p.ID, protocol.MustEnvelope(protocol.MsgStartRound, protocol.StartRoundMsg{Player: p.ID, Count: i}))
		}
		log.Printf("lobby: round started in room %s", room.ID)
	}
}

// relay forwards a gameplay event, tagged with the sender, to every other
// occupant of the sender's room. Unbound senders are ignored.
func (h *Handler) relay(connID, typ string, payload json.RawMessage, unreliable bool) {
	room := h.boundRoom(connID)
	if room == nil {
		return
	}
	h.relayToOthers(room, connID, typ, payload, unreliable)
}

func (h *Handler) relayToOthers(room *Room, connID, typ string, payload json.RawMessage, unreliable bool) {
	env := protocol.MustEnvelope(typ, protocol.RelayMsg{Player: connID, Message: payload})
	for _, p := range room.Players {
		if p.ID == connID {
			continue
		}
		if unreliable {
			h.transport.EmitUnreliable(p.ID, env)
		} else {
			h.transport.Emit(p.ID, env)
		}
	}
}

// Disconnect handles the transport reporting a closed connection.
func (h *Handler) Disconnect(connID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room := h.boundRoom(connID)
	delete(h.bindings, connID)
	if room == nil {
		return
	}

	drop := protocol.MustEnvelope(protocol.MsgPlayerDisconnect, protocol.PlayerDisconnectMsg{Player: connID})
	for _, p := range room.Players {
		if p.ID != connID {
			h.transport.Emit(p.ID, drop)
		}
	}

	room.RemovePlayer(connID)
	if h.registry.RemoveIfEmpty(room) {
		gone := protocol.MustEnvelope(protocol.MsgRoomDisconnect, protocol.RoomGoneMsg{Room: room.ID, Name: room.Name})
		h.transport.BroadcastExcept(connID, gone)
		log.Printf("lobby: room %s removed", room.ID)
		return
	}
	if room.PlayerCount() == 1 {
		winner := room.Players[0]
		h.transport.Emit(winner.ID, protocol.MustEnvelope(protocol.MsgEndRound, protocol.EndRoundMsg{Winner: winner.ID}))
	}
	if room.PlayerCount() < 2 {
		room.resetRound()
	}
}

// boundRoom resolves the sender's room binding, tolerating stale entries.
func (h *Handler) boundRoom(connID string) *Room {
	roomID, ok := h.bindings[connID]
	if !ok {
		return nil
	}
	return h.registry.ByID(roomID)
}

func roomState(room *Room) protocol.RoomStateMsg {
	return protocol.RoomStateMsg{
		Room:      room.ID,
		Name:      room.Name,
		HasPass:   room.HasPassword(),
		PlayerCnt: room.PlayerCount(),
	}
}
