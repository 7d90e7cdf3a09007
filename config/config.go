package config

import (
	"fmt"
	"os"
)

// Supported database engines, selected via DATABASE_CLIENT.
const (
	ClientPostgres = "postgres"
	ClientSQLite   = "sqlite"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerHost string
	ServerPort string

	// Database configuration
	DatabaseURL    string
	DatabaseClient string
}

// Load creates a new Config instance from the process environment, reading
// a dotenv file first when one is present.
func Load() (*Config, error) {
	loadDotenv()

	cfg := &Config{
		ServerHost:     getEnv("HOST", "0.0.0.0"),
		ServerPort:     getEnv("PORT", "1337"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DatabaseClient: getEnv("DATABASE_CLIENT", ClientPostgres),
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Addr returns the host:port pair the HTTP server should listen on
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
