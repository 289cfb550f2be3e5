package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

const (
	DEFAULT_APP_ID    = "io.reflex.game"
	DEFAULT_LOG_LEVEL = zerolog.InfoLevel
)

var ErrInvalid = errors.New("invalid configuration")

// Process settings only. The rules of the game are fixed and can't be
// changed from the environment.
type Config struct {
	LogLevel string `env:"REFLEX_LOG_LEVEL"`
	AppID    string `env:"REFLEX_APP_ID"`

	// Parsed LogLevel.
	Level zerolog.Level
}

func Default() Config {
	return Config{
		LogLevel: DEFAULT_LOG_LEVEL.String(),
		AppID:    DEFAULT_APP_ID,
		Level:    DEFAULT_LOG_LEVEL,
	}
}

// Unset variables keep the values of Default().
func Parse() (Config, error) {
	cfg := Default()

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.AppID == "" {
		return Config{}, fmt.Errorf("%w: empty application id", ErrInvalid)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)

	if err != nil {
		return Config{}, fmt.Errorf("%w: log level: %w", ErrInvalid, err)
	}

	cfg.Level = level

	return cfg, nil
}
