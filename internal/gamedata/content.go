package gamedata

import (
	"fmt"

	"github.com/samdwyer/sorcerer/internal/encounter"
	"github.com/samdwyer/sorcerer/internal/entity"
	"github.com/samdwyer/sorcerer/internal/game"
)

// Content is everything a run is built from. It is the shape of an authored
// deck file.
type Content struct {
	Roster     []CharacterDef `json:"roster" yaml:"roster"`
	Encounters []CardDef      `json:"encounters" yaml:"encounters"`
	Items      []CardDef      `json:"items" yaml:"items"`
	Boss       []CardDef      `json:"boss" yaml:"boss"`
}

// LoadBuiltin loads the embedded content.
func LoadBuiltin() (Content, error) {
	var c Content
	var err error
	if c.Roster, err = LoadRoster(); err != nil {
		return c, err
	}
	if c.Encounters, err = LoadEncounters(); err != nil {
		return c, err
	}
	if c.Items, err = LoadItems(); err != nil {
		return c, err
	}
	if c.Boss, err = LoadBossCards(); err != nil {
		return c, err
	}
	return c, nil
}

// LoadContent returns the built-in content, with any section present in the deck
// file at path replacing the built-in one. An empty path loads only the
// built-in content.
func LoadContent(path string) (Content, error) {
	builtin, err := LoadBuiltin()
	if err != nil {
		return Content{}, err
	}
	if path == "" {
		return builtin, nil
	}
	authored, err := LoadFile(path)
	if err != nil {
		return Content{}, err
	}
	return builtin.Merge(authored), nil
}

// Merge returns c with every non-empty section of other replacing its own.
func (c Content) Merge(other Content) Content {
	if len(other.Roster) > 0 {
		c.Roster = other.Roster
	}
	if len(other.Encounters) > 0 {
		c.Encounters = other.Encounters
	}
	if len(other.Items) > 0 {
		c.Items = other.Items
	}
	if len(other.Boss) > 0 {
		c.Boss = other.Boss
	}
	return c
}

// Setup builds fresh characters and decks for a new run.
func (c Content) Setup() (game.Setup, error) {
	var setup game.Setup

	if len(c.Roster) < entity.TeamSize {
		return setup, fmt.Errorf("roster: %d characters, need at least %d", len(c.Roster), entity.TeamSize)
	}
	seen := make(map[string]bool, len(c.Roster))
	for i := range c.Roster {
		def := &c.Roster[i]
		if def.ID == "" || seen[def.ID] {
			return setup, fmt.Errorf("roster: missing or duplicate id %q", def.ID)
		}
		if def.Health <= 0 {
			return setup, fmt.Errorf("roster: %s has no health", def.ID)
		}
		seen[def.ID] = true
		setup.Roster = append(setup.Roster, def.NewCharacter())
	}

	var err error
	if setup.Encounters, err = buildDeck("encounters", c.Encounters,
		encounter.KindEnemy, encounter.KindTrap, encounter.KindUnlockable, encounter.KindItem); err != nil {
		return setup, err
	}
	if !hasPlayable(setup.Encounters) {
		return setup, fmt.Errorf("encounters: need at least one card that is not an item")
	}
	if len(c.Items) > 0 {
		if setup.Items, err = buildDeck("items", c.Items, encounter.KindItem); err != nil {
			return setup, err
		}
	}
	if setup.BossCards, err = buildDeck("boss", c.Boss, encounter.KindBoss); err != nil {
		return setup, err
	}
	return setup, nil
}

func buildDeck(name string, defs []CardDef, kinds ...encounter.Kind) ([]*encounter.Card, error) {
	registry, err := NewCardRegistry(name, defs)
	if err != nil {
		return nil, err
	}
	deck, err := registry.Deck()
	if err != nil {
		return nil, err
	}
	if err := DeckOf(deck, kinds...); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return deck, nil
}
