package protocol

import "encoding/json"

// Message types: Client → Server
const (
	MsgGetRooms          = "getrooms"
	MsgCreateRoom        = "createroom"
	MsgCreatePrivateRoom = "createprivateroom"
	MsgJoinRoom          = "joinroom"
	MsgJoinPrivateRoom   = "joinprivateroom"
	MsgLeaveRoom         = "leaveroom"
	MsgReady             = "ready"
	MsgNotReady          = "notready"
	MsgUpdate            = "update"
	MsgHit               = "hit"
	MsgSynchronize       = "synchronize"
)

// Message types: Server → Client
const (
	MsgInit             = "init"
	MsgRoomConnect      = "roomconnect"
	MsgRoomDisconnect   = "roomdisconnect"
	MsgStartGame        = "startgame"
	MsgErrorJoiningRoom = "errorjoiningroom"
	MsgStartRound       = "startround"
	MsgPlayerDisconnect = "playerdisconnect"
	MsgEndRound         = "endRound"
)

// InitMsg tells a freshly connected client its own connection id.
type InitMsg struct {
	Player string `json:"player"`
}

// CreateRoomMsg is sent by a client to open a new room.
type CreateRoomMsg struct {
	RoomName string  `json:"roomname"`
	Password *string `json:"password,omitempty"`
}

// JoinRoomMsg is sent by a client to join an existing room.
type JoinRoomMsg struct {
	RoomID   string  `json:"roomId"`
	Password *string `json:"password,omitempty"`
}

// RoomStateMsg advertises a room in the lobby listing.
type RoomStateMsg struct {
	Room      string `json:"room"`
	Name      string `json:"name"`
	HasPass   bool   `json:"hasPass"`
	PlayerCnt int    `json:"playerCnt"`
}

// RoomGoneMsg removes a room from the lobby listing.
type RoomGoneMsg struct {
	Room string `json:"room"`
	Name string `json:"name"`
}

// StartGameMsg tells every occupant their room is full and gameplay begins.
type StartGameMsg struct {
	ID string `json:"id"`
}

// JoinErrorMsg is the single error event for any failed join. The client
// cannot tell a missing room from a full one or a bad password.
type JoinErrorMsg struct {
	RoomID string `json:"roomId"`
}

// RelayMsg wraps a gameplay payload with the id of the player who sent it.
// The payload travels verbatim.
type RelayMsg struct {
	Player  string          `json:"player"`
	Message json.RawMessage `json:"message"`
}

// StartRoundMsg is sent per occupant when the ready-check passes. Count is
// the receiver's zero-based seat in join order.
type StartRoundMsg struct {
	Player string `json:"player"`
	Count  int    `json:"count"`
}

// PlayerDisconnectMsg notifies remaining occupants that a player dropped.
type PlayerDisconnectMsg struct {
	Player string `json:"player"`
}

// EndRoundMsg declares the round over with the sole remaining occupant as
// winner.
type EndRoundMsg struct {
	Winner string `json:"winner"`
}
