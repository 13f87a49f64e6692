package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string

	// AuthDelay imitates a network round trip on sign-in/sign-up. The demo
	// has no backend, so without it the client's loading states would never
	// be visible.
	AuthDelay time.Duration
}

func Load() (*Config, error) {
	// Load .env file if it exists (useful for local dev)
	_ = godotenv.Load()

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	authDelay := 800 * time.Millisecond
	if v := os.Getenv("AUTH_DELAY_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil || ms < 0 {
			return nil, fmt.Errorf("AUTH_DELAY_MS must be a non-negative integer, got %q", v)
		}
		authDelay = time.Duration(ms) * time.Millisecond
	}

	return &Config{
		ServerPort: serverPort,
		AuthDelay:  authDelay,
	}, nil
}
