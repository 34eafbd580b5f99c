package encounter

import "math/rand"

// Deck is a draw pile plus a discard pile. Cards are drawn at random
// without replacement; once the draw pile runs out the discard pile becomes
// the new draw pile.
type Deck struct {
	draw    []*Card
	discard []*Card
}

// NewDeck creates a deck whose draw pile holds the given cards.
func NewDeck(cards []*Card) *Deck {
	draw := make([]*Card, len(cards))
	copy(draw, cards)
	return &Deck{draw: draw, discard: []*Card{}}
}

// Draw removes a uniformly random card from the draw pile, reshuffling the
// discard pile in first if the draw pile is empty. It returns false only when
// both piles are empty.
func (d *Deck) Draw(rng *rand.Rand) (*Card, bool) {
	if len(d.draw) == 0 {
		d.Reshuffle()
	}
	if len(d.draw) == 0 {
		return nil, false
	}

	i := rng.Intn(len(d.draw))
	card := d.draw[i]
	last := len(d.draw) - 1
	d.draw[i] = d.draw[last]
	d.draw[last] = nil
	d.draw = d.draw[:last]
	return card, true
}

// Reshuffle moves the discard pile into the draw pile, most recently
// discarded first.
func (d *Deck) Reshuffle() {
	for i := len(d.discard) - 1; i >= 0; i-- {
		d.draw = append(d.draw, d.discard[i])
	}
	d.discard = d.discard[:0]
}

// Discard puts a used card on the discard pile. Consumed cards are simply
// never discarded.
func (d *Deck) Discard(c *Card) {
	if c == nil {
		return
	}
	d.discard = append(d.discard, c)
}

// Remaining returns the number of cards left in the draw pile.
func (d *Deck) Remaining() int { return len(d.draw) }

// Discarded returns the number of cards in the discard pile.
func (d *Deck) Discarded() int { return len(d.discard) }

// Available returns the number of cards that can still be drawn, counting
// the discard pile.
func (d *Deck) Available() int { return len(d.draw) + len(d.discard) }
