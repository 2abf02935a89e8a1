package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the lobby server.
type Config struct {
	Port           string
	AllowedOrigins []string
	RoomCapacity   int
}

// Load reads an optional .env file plus environment variables and returns a
// populated Config.
func Load() Config {
	_ = godotenv.Load()

	port := os.Getenv("SHUTTLE_PORT")
	if port == "" {
		port = "19834"
	}

	allowedOrigins := []string{"*"}
	if origins := os.Getenv("SHUTTLE_ALLOWED_ORIGINS"); origins != "" {
		allowedOrigins = splitAndTrim(origins)
	}

	capacity := 2
	if raw := os.Getenv("SHUTTLE_ROOM_CAPACITY"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 {
			capacity = n
		}
	}

	return Config{
		Port:           port,
		AllowedOrigins: allowedOrigins,
		RoomCapacity:   capacity,
	}
}

func (c Config) Address() string {
	return fmt.Sprintf(":%s", c.Port)
}

func splitAndTrim(input string) []string {
	raw := strings.Split(input, ",")
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
