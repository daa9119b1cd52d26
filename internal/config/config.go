package config

import (
	"log/slog"
	"os"
	"time"
)

type Config struct {
	Port        string
	DatabaseDSN string
	JWTSecret   string
	TokenTTL    time.Duration
}

// Load reads configuration from the environment. JWT_SECRET and DATABASE_DSN
// have no safe defaults, so a missing value is a fatal startup condition.
func Load() Config {
	cfg := Config{
		Port:        getEnv("PORT", "3000"),
		DatabaseDSN: os.Getenv("DATABASE_DSN"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		TokenTTL:    72 * time.Hour,
	}

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET must be set")
		os.Exit(1)
	}
	if cfg.DatabaseDSN == "" {
		slog.Error("DATABASE_DSN must be set")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
