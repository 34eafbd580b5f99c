package encounter

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCards(n int) []*Card {
	cards := make([]*Card, n)
	for i := range cards {
		cards[i] = &Card{ID: fmt.Sprintf("c%d", i), Kind: KindEnemy, WinRolls: []int{7}}
	}
	return cards
}

func TestDrawWithoutReplacement(t *testing.T) {
	cards := testCards(5)
	deck := NewDeck(cards)
	rng := rand.New(rand.NewSource(1))

	seen := make(map[*Card]bool)
	for i := 0; i < len(cards); i++ {
		c, ok := deck.Draw(rng)
		require.True(t, ok)
		assert.False(t, seen[c], "card drawn twice")
		seen[c] = true
	}
	assert.Equal(t, 0, deck.Remaining())

	_, ok := deck.Draw(rng)
	assert.False(t, ok, "nothing discarded, nothing left")
}

func TestDrawReshufflesDiscard(t *testing.T) {
	cards := testCards(3)
	deck := NewDeck(cards)
	rng := rand.New(rand.NewSource(7))

	// N draws, each discarded, then one more.
	for i := 0; i < len(cards); i++ {
		c, ok := deck.Draw(rng)
		require.True(t, ok)
		deck.Discard(c)
	}
	assert.Equal(t, 0, deck.Remaining())
	assert.Equal(t, 3, deck.Discarded())

	c, ok := deck.Draw(rng)
	require.True(t, ok)
	assert.Contains(t, cards, c)
	assert.Equal(t, 0, deck.Discarded(), "discard is empty after a reshuffle")
	assert.Equal(t, 2, deck.Remaining())
}

func TestConsumedCardsNeverReturn(t *testing.T) {
	cards := testCards(2)
	deck := NewDeck(cards)
	rng := rand.New(rand.NewSource(3))

	kept, _ := deck.Draw(rng)
	consumed, _ := deck.Draw(rng)
	deck.Discard(kept)
	deck.Discard(nil)
	assert.Equal(t, 1, deck.Available())

	for i := 0; i < 5; i++ {
		c, ok := deck.Draw(rng)
		require.True(t, ok)
		assert.Same(t, kept, c)
		assert.NotSame(t, consumed, c)
		deck.Discard(c)
	}
}

func TestNewDeckCopiesCards(t *testing.T) {
	cards := testCards(2)
	deck := NewDeck(cards)
	cards[0] = nil

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 2; i++ {
		c, ok := deck.Draw(rng)
		require.True(t, ok)
		assert.NotNil(t, c)
	}
}
