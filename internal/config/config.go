// Package config loads service configuration from the environment, with an
// optional .env file for development.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/campus-events/app/internal/database"
)

// Config holds everything main needs to wire the service.
type Config struct {
	Port        string
	DatabaseDSN string
	// CurrentUser is the identity assumed when a request carries no
	// X-User header. The service trusts the header as-is; there is no
	// authentication.
	CurrentUser string
	CORSOrigins []string
	LogLevel    string
}

// Load reads the environment. A missing .env file is not an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseDSN: getEnv("DATABASE_DSN", database.MemoryDSN),
		CurrentUser: getEnv("CURRENT_USER", "Akash Patel"),
		CORSOrigins: strings.Split(getEnv("CORS_ORIGINS", "*"), ","),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
