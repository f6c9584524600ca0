package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config aggregates every setting the service reads at startup.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Fipe     FipeConfig
	Bot      BotConfig
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

// DatabaseConfig points at the condo administration database. An empty
// DSN switches the service to its in-memory store, for local runs.
type DatabaseConfig struct {
	DSN string
}

// FipeConfig describes the external vehicle reference API.
type FipeConfig struct {
	BaseURL string
}

// BotConfig tunes the conversation engine.
type BotConfig struct {
	IdleTimeout time.Duration
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	bot, err := loadBotConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server:   server,
		Database: DatabaseConfig{DSN: strings.TrimSpace(os.Getenv("DATABASE_URL"))},
		Fipe:     FipeConfig{BaseURL: strings.TrimSpace(os.Getenv("FIPE_BASE_URL"))},
		Bot:      bot,
	}, nil
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "3000"
	}

	if strings.Contains(port, ":") {
		// Allow passing ":3000" or "127.0.0.1:3000" directly.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

func loadBotConfig() (BotConfig, error) {
	minutes, err := parseOptionalIntEnv("BOT_IDLE_MINUTES")
	if err != nil {
		return BotConfig{}, err
	}

	cfg := BotConfig{}
	if minutes != nil {
		if *minutes < 1 {
			return BotConfig{}, fmt.Errorf("BOT_IDLE_MINUTES must be at least 1, got %d", *minutes)
		}
		cfg.IdleTimeout = time.Duration(*minutes) * time.Minute
	}
	return cfg, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
