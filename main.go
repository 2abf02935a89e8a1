package main

import (
	"flag"
	"log"

	"shuttle/internal/config"
	"shuttle/internal/server"
)

func main() {
	cfg := config.Load()
	port := flag.String("port", cfg.Port, "server port")
	flag.Parse()
	cfg.Port = *port

	srv := server.New(cfg)
	if err := srv.Start(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
