package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL   string
	NominatimURL string
	JWTSecret    string
	Port         string
	Timezone     string
	PageSize     int
}

func Load() *Config {
	// Optional .env for local development; ignored when absent.
	_ = godotenv.Load()

	return &Config{
		APIBaseURL:   getEnv("API_BASE_URL", "http://localhost:8000"),
		NominatimURL: getEnv("NOMINATIM_URL", "https://nominatim.openstreetmap.org"),
		JWTSecret:    getEnv("JWT_SECRET", "your-256-bit-secret-change-in-production"),
		Port:         getEnv("PORT", "8000"),
		Timezone:     getEnv("TIMEZONE", "America/Maceio"),
		PageSize:     10,
	}
}

// Location resolves the configured timezone, falling back to UTC when the
// name cannot be loaded. One location is applied end-to-end for every
// calendar-date comparison and grouping.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
