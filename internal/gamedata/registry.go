package gamedata

import (
	"errors"
	"fmt"

	"github.com/samdwyer/sorcerer/internal/encounter"
)

// CardRegistry holds the card definitions of one deck and builds the deck
// from them.
type CardRegistry struct {
	name string
	all  []CardDef
}

// NewCardRegistry indexes card definitions by ID. Duplicate IDs are an error.
func NewCardRegistry(name string, defs []CardDef) (*CardRegistry, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("%s: no cards", name)
	}
	seen := make(map[string]bool, len(defs))
	for i := range defs {
		id := defs[i].ID
		if id == "" {
			return nil, fmt.Errorf("%s: card %d has no id", name, i)
		}
		if seen[id] {
			return nil, fmt.Errorf("%s: duplicate card id %q", name, id)
		}
		seen[id] = true
	}
	return &CardRegistry{name: name, all: defs}, nil
}

// All returns all card definitions.
func (r *CardRegistry) All() []CardDef {
	return r.all
}

// Deck builds the cards of the deck, one per copy, in definition order.
func (r *CardRegistry) Deck() ([]*encounter.Card, error) {
	var deck []*encounter.Card
	var errs []error
	for i := range r.all {
		def := &r.all[i]
		for n := 0; n < def.copies(); n++ {
			card, err := def.Card()
			if err != nil {
				errs = append(errs, err)
				break
			}
			deck = append(deck, card)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%s: %w", r.name, errors.Join(errs...))
	}
	return deck, nil
}

// DeckOf checks that every card in the deck has the wanted kind.
func DeckOf(deck []*encounter.Card, kinds ...encounter.Kind) error {
	for _, c := range deck {
		ok := false
		for _, k := range kinds {
			if c.Kind == k {
				ok = true
				break
			}
		}
		if !ok {
			return fmt.Errorf("card %s: kind %s not allowed here", c.ID, c.Kind)
		}
	}
	return nil
}

// hasPlayable reports whether the deck has a card that is not an item.
// Chosen items are consumed, so a deck of items alone runs dry before the
// turn tracker fills.
func hasPlayable(deck []*encounter.Card) bool {
	for _, c := range deck {
		if c.Kind != encounter.KindItem {
			return true
		}
	}
	return false
}
