// Package config reads run settings from the environment and an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/samdwyer/sorcerer/internal/game"
	"github.com/samdwyer/sorcerer/internal/telemetry"
)

// Prefix is prepended to every variable name.
const Prefix = "SORCERER_"

// Config is the complete set of run settings.
type Config struct {
	Game      game.Config      `envPrefix:"SORCERER_"`
	Telemetry telemetry.Config `envPrefix:"SORCERER_"`

	// DeckFile is an authored YAML or JSON file replacing the built-in
	// roster or decks.
	DeckFile string `env:"SORCERER_DECK_FILE"`
	// LogFile receives the run log. The terminal belongs to the UI, so
	// logging is off when unset.
	LogFile string `env:"SORCERER_LOG_FILE"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadDotEnv reads variables from the given .env files, or ./.env when none
// are given. Variables already set are kept. Missing files are not an error.
func LoadDotEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// Load reads the .env files and then the environment.
func Load(files ...string) (Config, error) {
	var cfg Config
	if err := LoadDotEnv(files...); err != nil {
		return cfg, err
	}
	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
