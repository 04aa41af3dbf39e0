package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"

	PasswordHashingPlain  = "plain"
	PasswordHashingBcrypt = "bcrypt"
)

type Config struct {
	ServerPort      string
	StorageDriver   string
	DatabaseURL     string
	SeedProducts    bool
	PasswordHashing string
	ShutdownTimeout time.Duration

	Log struct {
		Level  string
		Format string
	}

	AuthRateLimit struct {
		RPS   float64
		Burst int
	}
}

func Load() (*Config, error) {
	// Load .env file if it exists (useful for local dev)
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		StorageDriver:   getEnv("STORAGE_DRIVER", StorageDriverPostgres),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		PasswordHashing: getEnv("PASSWORD_HASHING", PasswordHashingPlain),
	}
	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "text")

	switch cfg.StorageDriver {
	case StorageDriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL must be set")
		}
	case StorageDriverMemory:
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}

	switch cfg.PasswordHashing {
	case PasswordHashingPlain, PasswordHashingBcrypt:
	default:
		return nil, fmt.Errorf("unknown PASSWORD_HASHING %q", cfg.PasswordHashing)
	}

	var err error
	if cfg.SeedProducts, err = strconv.ParseBool(getEnv("SEED_PRODUCTS", "true")); err != nil {
		return nil, fmt.Errorf("invalid SEED_PRODUCTS: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "5s")); err != nil {
		return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}

	if cfg.AuthRateLimit.RPS, err = strconv.ParseFloat(getEnv("AUTH_RATE_LIMIT_RPS", "0"), 64); err != nil {
		return nil, fmt.Errorf("invalid AUTH_RATE_LIMIT_RPS: %w", err)
	}
	if cfg.AuthRateLimit.Burst, err = strconv.Atoi(getEnv("AUTH_RATE_LIMIT_BURST", "5")); err != nil {
		return nil, fmt.Errorf("invalid AUTH_RATE_LIMIT_BURST: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
