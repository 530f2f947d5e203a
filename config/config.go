package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	GinMode  string
	Database Database
	Logging  Logging
	Kafka    Kafka
}

type Database struct {
	Driver string // sqlite or postgres
	Source string
}

type Logging struct {
	Level  string
	Format string
}

// Kafka is disabled when Brokers is empty
type Kafka struct {
	Brokers []string
	Topic   string
}

// Load reads the environment, after applying an optional .env file from the
// working directory. Variables already set in the environment win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		Port:    getEnv("PORT", "3000"),
		GinMode: os.Getenv("GIN_MODE"),
		Database: Database{
			Driver: strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
			Source: getEnv("DB_SOURCE", "restaurant.db"),
		},
		Logging: Logging{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
		Kafka: Kafka{
			Brokers: splitList(os.Getenv("KAFKA_BROKERS")),
			Topic:   getEnv("KAFKA_TOPIC", "order-events"),
		},
	}

	switch cfg.Database.Driver {
	case "sqlite", "postgres":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
