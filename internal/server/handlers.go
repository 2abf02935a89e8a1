package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	qr "shuttle/internal/qrcode"
)

// Handlers holds HTTP handler dependencies.
type Handlers struct {
	hub      *Hub
	upgrader websocket.Upgrader
}

func NewHandlers(hub *Hub, allowedOrigins []string) *Handlers {
	return &Handlers{
		hub: hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: originChecker(allowedOrigins),
		},
	}
}

func originChecker(allowed []string) func(*http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, a := range allowed {
			if a == "*" || a == origin {
				return true
			}
		}
		return false
	}
}

// HandleWS upgrades the connection and assigns it a player id.
func (h *Handlers) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	client := NewClient(h.hub, conn, uuid.NewString())
	h.hub.register <- client

	go client.WritePump()
	go client.ReadPump()
}

// HandleDebugRooms dumps the room/player tree as JSON for operational
// inspection. Connections are rendered as their ids only.
func (h *Handlers) HandleDebugRooms(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(h.hub.Handler().Snapshot()); err != nil {
		log.Printf("debug encode error: %v", err)
	}
}

// HandleQR generates a QR code PNG carrying a join link for a room.
func (h *Handlers) HandleQR(w http.ResponseWriter, r *http.Request) {
	roomID := r.URL.Query().Get("room")
	if roomID == "" {
		http.Error(w, "missing room parameter", http.StatusBadRequest)
		return
	}
	url := fmt.Sprintf("http://%s/?join=%s", r.Host, roomID)
	png, err := qr.Generate(url)
	if err != nil {
		http.Error(w, "QR generation failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
