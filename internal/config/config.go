package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	AppName      string `env:"APP_NAME" envDefault:"Guessing Game"`
	Debug        bool   `env:"DEBUG" envDefault:"false"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"warn"`
	PlainPrompts bool   `env:"PLAIN_PROMPTS" envDefault:"false"`
	// Difficulty skips the menu when set, e.g. "hard" or "3".
	Difficulty string `env:"DIFFICULTY"`

	// EnvFileLoaded reports whether a .env file was found.
	EnvFileLoaded bool
}

// Load reads an optional .env file, then the environment.
func Load(envFiles ...string) (*Config, error) {
	cfg := &Config{}

	if err := godotenv.Load(envFiles...); err == nil {
		cfg.EnvFileLoaded = true
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
