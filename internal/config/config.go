// Package config loads the runtime settings from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// MemoryDBPath selects the in-memory repository instead of a SQLite file.
const MemoryDBPath = ":memory:"

type Config struct {
	DBPath   string   `env:"QUIZ_DB_PATH" envDefault:"quiz.db"`
	Addr     string   `env:"QUIZ_ADDR" envDefault:":3030"`
	HTTPAddr string   `env:"QUIZ_HTTP_ADDR"`
	SeedFile string   `env:"QUIZ_SEED_FILE"`
	LogLevel string   `env:"QUIZ_LOG_LEVEL" envDefault:"info"`
	Credits  []string `env:"QUIZ_CREDITS" envSeparator:";"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DBPath) == "" {
		return fmt.Errorf("QUIZ_DB_PATH must not be empty")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("QUIZ_LOG_LEVEL %q is not one of debug, info, warn, error", c.LogLevel)
	}
	return nil
}

// InMemory reports whether the repository should live in process memory.
func (c Config) InMemory() bool {
	return c.DBPath == MemoryDBPath
}
