package gamedata

import (
	"fmt"

	"github.com/samdwyer/sorcerer/internal/encounter"
)

// OutcomeDef is an authored outcome such as {"resource": "health", "amount": 2}.
type OutcomeDef struct {
	Resource string `json:"resource" yaml:"resource"`
	Amount   int    `json:"amount" yaml:"amount"`
}

func (o OutcomeDef) outcome() (encounter.Outcome, error) {
	r, err := encounter.ParseResource(o.Resource)
	if err != nil {
		return encounter.Outcome{}, err
	}
	return encounter.Outcome{Resource: r, Amount: o.Amount}, nil
}

// CardDef defines an encounter, item or boss card.
type CardDef struct {
	ID          string      `json:"id" yaml:"id"`
	Name        string      `json:"name" yaml:"name"`
	Kind        string      `json:"kind" yaml:"kind"`
	Copies      int         `json:"copies,omitempty" yaml:"copies,omitempty"` // Copies in the deck, 1 when unset
	WinRolls    []int       `json:"winRolls,omitempty" yaml:"winRolls,omitempty"`
	Win         OutcomeDef  `json:"win" yaml:"win"`
	Loss        *OutcomeDef `json:"loss,omitempty" yaml:"loss,omitempty"`
	BigWinRolls []int       `json:"bigWinRolls,omitempty" yaml:"bigWinRolls,omitempty"`
	BigWin      *OutcomeDef `json:"bigWin,omitempty" yaml:"bigWin,omitempty"`
}

// Card converts the definition into a validated card.
func (d *CardDef) Card() (*encounter.Card, error) {
	kind, err := encounter.ParseKind(d.Kind)
	if err != nil {
		return nil, fmt.Errorf("card %s: %w", d.ID, err)
	}
	card := &encounter.Card{
		ID:          d.ID,
		Name:        d.Name,
		Kind:        kind,
		WinRolls:    append([]int(nil), d.WinRolls...),
		BigWinRolls: append([]int(nil), d.BigWinRolls...),
	}
	if card.Name == "" {
		card.Name = d.ID
	}
	if card.Win, err = d.Win.outcome(); err != nil {
		return nil, fmt.Errorf("card %s win: %w", d.ID, err)
	}
	if d.Loss != nil {
		if card.Loss, err = d.Loss.outcome(); err != nil {
			return nil, fmt.Errorf("card %s loss: %w", d.ID, err)
		}
	}
	if d.BigWin != nil {
		if card.BigWin, err = d.BigWin.outcome(); err != nil {
			return nil, fmt.Errorf("card %s bigWin: %w", d.ID, err)
		}
	}
	if err := card.Validate(); err != nil {
		return nil, err
	}
	return card, nil
}

func (d *CardDef) copies() int {
	if d.Copies < 1 {
		return 1
	}
	return d.Copies
}

// EncountersFile represents the structure of encounters.json.
type EncountersFile struct {
	Encounters []CardDef `json:"encounters"`
}

// ItemsFile represents the structure of items.json.
type ItemsFile struct {
	Items []CardDef `json:"items"`
}

// BossFile represents the structure of boss.json.
type BossFile struct {
	Boss []CardDef `json:"boss"`
}

// LoadEncounters loads the main deck from the embedded encounters.json file.
func LoadEncounters() ([]CardDef, error) {
	file, err := Load[EncountersFile]("encounters.json")
	if err != nil {
		return nil, err
	}
	return file.Encounters, nil
}

// LoadItems loads the item sub-deck from the embedded items.json file.
func LoadItems() ([]CardDef, error) {
	file, err := Load[ItemsFile]("items.json")
	if err != nil {
		return nil, err
	}
	return file.Items, nil
}

// LoadBossCards loads the boss deck from the embedded boss.json file.
func LoadBossCards() ([]CardDef, error) {
	file, err := Load[BossFile]("boss.json")
	if err != nil {
		return nil, err
	}
	return file.Boss, nil
}
