package config

import (
	"fmt"
	"os"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Data     DataConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// DatabaseConfig holds the optional cluster-tree cache connection. An empty
// URL disables caching entirely.
type DatabaseConfig struct {
	URL string
}

// DataConfig points at an optional matrix file (xlsx or csv) served to the
// renderer at startup.
type DataConfig struct {
	File string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "release"),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Data: DataConfig{
			File: os.Getenv("MATRIX_FILE"),
		},
	}

	if cfg.Server.Port == "" {
		return nil, fmt.Errorf("server port must not be empty")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
