// Package entity provides game entities like characters, the team and the boss.
package entity

import (
	"fmt"
	"strings"
)

// Stat names one of a character's four attributes.
type Stat int

const (
	StatHealth Stat = iota
	StatStrength
	StatAccuracy
	StatStealth
)

// AllStats lists the stats in display order.
var AllStats = []Stat{StatHealth, StatStrength, StatAccuracy, StatStealth}

// String returns the stat name.
func (s Stat) String() string {
	switch s {
	case StatHealth:
		return "Health"
	case StatStrength:
		return "Strength"
	case StatAccuracy:
		return "Accuracy"
	case StatStealth:
		return "Stealth"
	default:
		return "Unknown"
	}
}

// ParseStat converts a stat name (case-insensitive) to a Stat.
func ParseStat(name string) (Stat, error) {
	for _, s := range AllStats {
		if strings.EqualFold(name, s.String()) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown stat %q", name)
}

// Stats holds one value per attribute.
type Stats struct {
	Health   int
	Strength int
	Accuracy int
	Stealth  int
}

// Get returns the value of a single stat.
func (s Stats) Get(stat Stat) int {
	switch stat {
	case StatHealth:
		return s.Health
	case StatStrength:
		return s.Strength
	case StatAccuracy:
		return s.Accuracy
	case StatStealth:
		return s.Stealth
	default:
		return 0
	}
}

func (s *Stats) set(stat Stat, value int) {
	switch stat {
	case StatHealth:
		s.Health = value
	case StatStrength:
		s.Strength = value
	case StatAccuracy:
		s.Accuracy = value
	case StatStealth:
		s.Stealth = value
	}
}

// NoSlot marks a character that has not been placed in a team slot.
const NoSlot = -1

// Character is a single character card.
type Character struct {
	ID    string // Unique identifier (e.g., "ranger")
	Name  string // Display name
	Color string // Hex color used by the card renderer

	Base    Stats // Stats the card was authored with
	Current Stats // Stats after encounters, never negative

	// TeamSlot is the team position 0..3, or NoSlot. It survives death so the
	// presentation layer can still find where the card sat.
	TeamSlot int

	InTeam    bool // Picked during roster selection
	Confirmed bool // Locked into the team
	Selected  bool // Acting character of the current encounter

	alive   bool
	onDeath func(*Character)
}

// NewCharacter creates a living character with current stats equal to base.
func NewCharacter(id, name string, base Stats) *Character {
	c := &Character{
		ID:       id,
		Name:     name,
		Base:     base,
		TeamSlot: NoSlot,
		alive:    true,
	}
	c.Current = Stats{
		Health:   clamp(base.Health),
		Strength: clamp(base.Strength),
		Accuracy: clamp(base.Accuracy),
		Stealth:  clamp(base.Stealth),
	}
	if c.Current.Health == 0 {
		c.alive = false
	}
	return c
}

// IsAlive reports whether the character still has health.
func (c *Character) IsAlive() bool { return c.alive }

// Get returns the current value of a stat.
func (c *Character) Get(stat Stat) int { return c.Current.Get(stat) }

// Increase raises a stat by amount. There is no upper bound.
func (c *Character) Increase(stat Stat, amount int) int {
	if amount <= 0 || !c.alive {
		return 0
	}
	c.Current.set(stat, c.Current.Get(stat)+amount)
	return amount
}

// Decrease lowers a stat by amount, clamped at zero, and returns the actual
// change. Health reaching zero kills the character.
func (c *Character) Decrease(stat Stat, amount int) int {
	if amount <= 0 {
		return 0
	}
	before := c.Current.Get(stat)
	after := clamp(before - amount)
	c.Current.set(stat, after)

	if stat == StatHealth && after == 0 {
		c.die()
	}
	return before - after
}

// DecreaseHealth is shorthand for Decrease(StatHealth, amount).
func (c *Character) DecreaseHealth(amount int) int {
	return c.Decrease(StatHealth, amount)
}

// die runs death handling once.
func (c *Character) die() {
	if !c.alive {
		return
	}
	c.alive = false
	c.Selected = false
	if c.onDeath != nil {
		c.onDeath(c)
	}
}

// setDeathHook registers the callback run when the character dies.
func (c *Character) setDeathHook(fn func(*Character)) {
	c.onDeath = fn
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
