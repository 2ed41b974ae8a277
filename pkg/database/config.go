package database

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// LoadConfigFromEnv reads the database configuration from DB_* environment
// variables. Unlike the rest of the runtime configuration, credentials never
// travel through maestro.yaml.
func LoadConfigFromEnv() (Config, error) {
	port, err := strconv.Atoi(envOr("DB_PORT", "5432"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	cfg := Config{
		Host:            envOr("DB_HOST", "localhost"),
		Port:            port,
		User:            envOr("DB_USER", "maestro"),
		Password:        os.Getenv("DB_PASSWORD"),
		Database:        envOr("DB_NAME", "maestro"),
		SSLMode:         envOr("DB_SSLMODE", "disable"),
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}
	cfg.MaxOpenConns, _ = strconv.Atoi(envOr("DB_MAX_OPEN_CONNS", "10"))
	cfg.MaxIdleConns, _ = strconv.Atoi(envOr("DB_MAX_IDLE_CONNS", "5"))
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
