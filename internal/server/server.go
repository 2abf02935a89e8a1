package server

import (
	"log"
	"net/http"

	"shuttle/internal/config"
)

// Server ties together the HTTP surface and the WebSocket hub.
type Server struct {
	hub      *Hub
	handlers *Handlers
	cfg      config.Config
}

func New(cfg config.Config) *Server {
	hub := NewHub(cfg.RoomCapacity)
	return &Server{
		hub:      hub,
		handlers: NewHandlers(hub, cfg.AllowedOrigins),
		cfg:      cfg,
	}
}

func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handlers.HandleWS)
	mux.HandleFunc("/debug/rooms", s.handlers.HandleDebugRooms)
	mux.HandleFunc("/api/qr", s.handlers.HandleQR)

	go s.hub.Run()
	defer s.hub.Stop()

	addr := s.cfg.Address()
	log.Printf("shuttle lobby listening on %s", addr)
	return http.ListenAndServe(addr, mux)
}
