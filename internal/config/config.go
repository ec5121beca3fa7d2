// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel is the minimum slog level: debug, info, warn or error. Defaults to "info".
	LogLevel string

	// CORSOrigins is the comma-separated CORS_ORIGINS list.
	// Defaults to the Vite dev server.
	CORSOrigins []string

	// JWTSecret signs and verifies bearer tokens. Required.
	JWTSecret []byte

	// MaxBodyBytes caps request bodies. Defaults to 1 MiB.
	MaxBodyBytes int64

	// GenAIAPIKey enables location descriptions and recommendations.
	// When empty those endpoints answer with empty results.
	GenAIAPIKey string
	// GenAIBaseURL overrides the provider host; empty keeps the client default.
	GenAIBaseURL string
	// GenAIModel overrides the model name; empty keeps the client default.
	GenAIModel string
	// GenAIRatePerSec caps outgoing generation requests. Defaults to 2.
	GenAIRatePerSec float64

	// DescriptionCacheSize bounds the number of cached location descriptions. Defaults to 256.
	DescriptionCacheSize int
	// DescriptionCacheTTL is how long a cached description stays valid. Defaults to 24h.
	DescriptionCacheTTL time.Duration
}

// Load reads configuration from environment variables and returns a Config.
// Missing required variables and malformed numeric values are reported
// together in one error.
func Load() (Config, error) {
	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		CORSOrigins:  splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		GenAIAPIKey:  os.Getenv("GENAI_API_KEY"),
		GenAIBaseURL: os.Getenv("GENAI_BASE_URL"),
		GenAIModel:   os.Getenv("GENAI_MODEL"),
	}

	var missing, invalid []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	cfg.JWTSecret = []byte(os.Getenv("JWT_SECRET"))
	if len(cfg.JWTSecret) == 0 {
		missing = append(missing, "JWT_SECRET")
	}

	var err error
	if cfg.MaxBodyBytes, err = strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64); err != nil || cfg.MaxBodyBytes <= 0 {
		invalid = append(invalid, "MAX_BODY_BYTES")
	}
	if cfg.GenAIRatePerSec, err = strconv.ParseFloat(getEnv("GENAI_RATE_PER_SEC", "2"), 64); err != nil {
		invalid = append(invalid, "GENAI_RATE_PER_SEC")
	}
	if cfg.DescriptionCacheSize, err = strconv.Atoi(getEnv("DESCRIPTION_CACHE_SIZE", "256")); err != nil || cfg.DescriptionCacheSize <= 0 {
		invalid = append(invalid, "DESCRIPTION_CACHE_SIZE")
	}
	if cfg.DescriptionCacheTTL, err = time.ParseDuration(getEnv("DESCRIPTION_CACHE_TTL", "24h")); err != nil || cfg.DescriptionCacheTTL <= 0 {
		invalid = append(invalid, "DESCRIPTION_CACHE_TTL")
	}

	var problems []string
	if len(missing) > 0 {
		problems = append(problems, "required environment variables not set: "+strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		problems = append(problems, "invalid values for: "+strings.Join(invalid, ", "))
	}
	if len(problems) > 0 {
		return Config{}, fmt.Errorf("config: %s", strings.Join(problems, "; "))
	}
	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
