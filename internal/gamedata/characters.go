package gamedata

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/sorcerer/internal/entity"
)

// CharacterDef defines a roster character.
type CharacterDef struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Color    string `json:"color" yaml:"color"` // Card color, hex or a tcell color name
	Health   int    `json:"health" yaml:"health"`
	Strength int    `json:"strength" yaml:"strength"`
	Accuracy int    `json:"accuracy" yaml:"accuracy"`
	Stealth  int    `json:"stealth" yaml:"stealth"`
}

// NewCharacter builds a fresh character at its base stats.
func (d *CharacterDef) NewCharacter() *entity.Character {
	c := entity.NewCharacter(d.ID, d.Name, entity.Stats{
		Health:   d.Health,
		Strength: d.Strength,
		Accuracy: d.Accuracy,
		Stealth:  d.Stealth,
	})
	c.Color = d.Color
	return c
}

// TCellColor returns the card color, or white if it does not parse.
func (d *CharacterDef) TCellColor() tcell.Color {
	return ColorOr(d.Color, tcell.ColorWhite)
}

// RosterFile represents the structure of roster.json.
type RosterFile struct {
	Roster []CharacterDef `json:"roster"`
}

// LoadRoster loads character definitions from the embedded roster.json file.
func LoadRoster() ([]CharacterDef, error) {
	file, err := Load[RosterFile]("roster.json")
	if err != nil {
		return nil, err
	}
	return file.Roster, nil
}
