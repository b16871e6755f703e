// Package config manages application configuration
package config

import (
	"os"
)

// Config holds all application configuration
type Config struct {
	// Server settings
	Port        string
	Environment string // "development" or "production"

	// Security
	SecretKey string // For JWT signing

	// CORS
	AllowedOrigin string // Origin of the browser frontend
}

// Load reads configuration from environment variables with sensible defaults
func Load() *Config {
	return &Config{
		Port:          getEnv("ONECART_PORT", "8080"),
		Environment:   getEnv("ONECART_ENV", "development"),
		SecretKey:     getEnv("ONECART_SECRET_KEY", "dev-secret-key-change-in-production"),
		AllowedOrigin: getEnv("ONECART_ALLOWED_ORIGIN", "http://localhost:5173"),
	}
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
