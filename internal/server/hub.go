package server

import (
	"sync"

	"shuttle/internal/lobby"
	"shuttle/internal/protocol"
)

// Hub owns every WebSocket connection and funnels all inbound traffic into
// the lobby handler from a single goroutine, so each event runs to completion
// before the next one starts. It is the lobby's Transport.
type Hub struct {
	mu         sync.Mutex
	handler    *lobby.Handler
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	incoming   chan inboundMessage
	quit       chan struct{}
}

func NewHub(capacity int) *Hub {
	h := &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		incoming:   make(chan inboundMessage, 256),
		quit:       make(chan struct{}),
	}
	h.handler = lobby.NewHandler(h, capacity)
	return h
}

// Handler exposes the lobby handler for the diagnostic endpoint.
func (h *Hub) Handler() *lobby.Handler {
	return h.handler
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()
			h.handler.Connect(client.ID)

		case client := <-h.unregister:
			h.mu.Lock()
			if cur, ok := h.clients[client.ID]; ok && cur == client {
				delete(h.clients, client.ID)
				close(client.send)
			}
			h.mu.Unlock()
			h.handler.Disconnect(client.ID)

		case msg := <-h.incoming:
			h.handler.HandleMessage(msg.ConnID, msg.Envelope)

		case <-h.quit:
			return
		}
	}
}

// Stop terminates the Run loop.
func (h *Hub) Stop() {
	close(h.quit)
}

// Emit implements lobby.Transport.
func (h *Hub) Emit(connID string, env protocol.Envelope) {
	if c := h.client(connID); c != nil {
		c.SendEnvelope(env)
	}
}

// EmitUnreliable implements lobby.Transport.
func (h *Hub) EmitUnreliable(connID string, env protocol.Envelope) {
	if c := h.client(connID); c != nil {
		c.SendEnvelopeUnreliable(env)
	}
}

// BroadcastExcept implements lobby.Transport.
func (h *Hub) BroadcastExcept(connID string, env protocol.Envelope) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, c := range h.clients {
		if id == connID {
			continue
		}
		c.SendEnvelope(env)
	}
}

func (h *Hub) client(connID string) *Client {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.clients[connID]
}
