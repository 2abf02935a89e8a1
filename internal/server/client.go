package server

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"

	"shuttle/internal/protocol"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096

	// Unreliable sends only go out while the queue has this much headroom;
	// otherwise they are dropped on the floor, which is the point.
	unreliableHeadroom = 16
)

// Client represents a single WebSocket connection. ID is assigned by the hub
// at upgrade time and is the player identity for the connection's lifetime.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
	ID   string
}

func NewClient(hub *Hub, conn *websocket.Conn, id string) *Client {
	return &Client{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, 256),
		ID:   id,
	}
}

// ReadPump reads messages from the WebSocket and forwards to the hub.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("ws read error: %v", err)
			}
			break
		}
		var env protocol.Envelope
		if err := json.Unmarshal(message, &env); err != nil {
			log.Printf("ws parse error from %s: %v", c.ID, err)
			continue
		}
		c.hub.incoming <- inboundMessage{ConnID: c.ID, Envelope: env}
	}
}

// WritePump writes messages from the send channel to the WebSocket.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// SendEnvelope queues a message for reliable delivery. The lobby never waits
// on delivery, so a full queue drops the message with a log line.
func (c *Client) SendEnvelope(env protocol.Envelope) {
	data, err := json.Marshal(env)
	if err != nil {
		log.Printf("marshal error: %v", err)
		return
	}
	select {
	case c.send <- data:
	default:
		log.Printf("client %s send buffer full, dropping %s", c.ID, env.Type)
	}
}

// SendEnvelopeUnreliable queues a message for best-effort delivery. A busy
// queue drops it silently; stale synchronize frames are worthless anyway.
func (c *Client) SendEnvelopeUnreliable(env protocol.Envelope) {
	if len(c.send) > cap(c.send)-unreliableHeadroom {
		return
	}
	data, err := json.Marshal(env)
	if err != nil {
		return
	}
	select {
	case c.send <- data:
	default:
	}
}

// inboundMessage pairs a decoded envelope with its source connection.
type inboundMessage struct {
	ConnID   string
	Envelope protocol.Envelope
}
