package lobby

import "shuttle/internal/protocol"

// Transport is the subset of the connection substrate the lobby uses. All
// sends are fire-and-forget: the lobby never waits for delivery.
type Transport interface {
	// Emit sends reliably and in order to one connection.
	Emit(connID string, env protocol.Envelope)
	// EmitUnreliable sends best-effort to one connection. Messages may be
	// dropped or arrive out of order; used for high-frequency state sync.
	EmitUnreliable(connID string, env protocol.Envelope)
	// BroadcastExcept sends reliably to every connection other than connID.
	BroadcastExcept(connID string, env protocol.Envelope)
}
