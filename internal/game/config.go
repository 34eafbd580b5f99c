package game

import (
	"time"

	"github.com/samdwyer/sorcerer/internal/entity"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. A seed of 0 means a random seed will
	// be generated.
	Seed int64 `env:"SEED"`

	// TurnIncrement is how far the turn tracker moves per encounter.
	TurnIncrement int `env:"TURN_INCREMENT" envDefault:"1"`
	// TurnTrackerCap is the tracker value that brings the boss onto the board.
	TurnTrackerCap int `env:"TURN_TRACKER_CAP" envDefault:"10"`

	// RevealDelay is how long a roll result stays up before the board is cleared.
	RevealDelay time.Duration `env:"REVEAL_DELAY" envDefault:"1500ms"`
	// ManualAdvance waits for the Next Turn button instead of clearing the
	// board automatically.
	ManualAdvance bool `env:"MANUAL_ADVANCE"`

	BossName   string `env:"BOSS_NAME" envDefault:"The Sorcerer"`
	BossHealth int    `env:"BOSS_HEALTH" envDefault:"5"`
}

// DefaultConfig returns the values used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		TurnIncrement:  1,
		TurnTrackerCap: 10,
		RevealDelay:    1500 * time.Millisecond,
		BossName:       "The Sorcerer",
		BossHealth:     entity.DefaultBossHealth,
	}
}

// withDefaults fills zero values that would stall the game.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.TurnIncrement <= 0 {
		c.TurnIncrement = d.TurnIncrement
	}
	if c.TurnTrackerCap <= 0 {
		c.TurnTrackerCap = d.TurnTrackerCap
	}
	if c.RevealDelay < 0 {
		c.RevealDelay = 0
	}
	if c.BossName == "" {
		c.BossName = d.BossName
	}
	if c.BossHealth <= 0 {
		c.BossHealth = d.BossHealth
	}
	return c
}
