package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig
	Source SourceConfig
	CORS   CORSConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// SourceConfig holds configuration for the exporter document source
type SourceConfig struct {
	BaseURL      string
	FetchTimeout time.Duration
	RefreshSpec  string // cron spec for scheduled snapshot refreshes
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	fetchTimeout, err := time.ParseDuration(getEnv("SOURCE_FETCH_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SOURCE_FETCH_TIMEOUT: %w", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Source: SourceConfig{
			BaseURL:      getEnv("SOURCE_BASE_URL", "http://localhost:3000/output"),
			FetchTimeout: fetchTimeout,
			RefreshSpec:  getEnv("SNAPSHOT_REFRESH_SPEC", "*/15 * * * *"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
