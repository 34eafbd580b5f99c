package encounter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/sorcerer/internal/entity"
)

func TestParseKind(t *testing.T) {
	for k, name := range kindNames {
		got, err := ParseKind(name)
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	got, err := ParseKind("unlockable")
	require.NoError(t, err)
	assert.Equal(t, KindUnlockable, got)

	_, err = ParseKind("Chest")
	assert.Error(t, err)
}

func TestParseResource(t *testing.T) {
	r, err := ParseResource("KEY")
	require.NoError(t, err)
	assert.Equal(t, ResourceKey, r)
	_, ok := r.Stat()
	assert.False(t, ok)

	r, err = ParseResource("accuracy")
	require.NoError(t, err)
	stat, ok := r.Stat()
	require.True(t, ok)
	assert.Equal(t, entity.StatAccuracy, stat)

	_, err = ParseResource("gold")
	assert.Error(t, err)
}

func TestCardRolls(t *testing.T) {
	card := &Card{
		ID:          "hex",
		Kind:        KindBoss,
		WinRolls:    []int{8, 9},
		BigWinRolls: []int{10, 11},
		Win:         Outcome{ResourceAccuracy, 1},
		Loss:        Outcome{ResourceHealth, 2},
		BigWin:      Outcome{ResourceStealth, 1},
	}
	assert.True(t, card.IsWin(8))
	assert.False(t, card.IsWin(10))
	assert.True(t, card.IsBigWin(11))
	assert.Equal(t, card.Win, card.Result(true))
	assert.Equal(t, card.Loss, card.Result(false))
	assert.Equal(t, "Accuracy 1", card.Win.String())
	assert.NoError(t, card.Validate())
}

func TestCardValidate(t *testing.T) {
	tests := []struct {
		name string
		card Card
		ok   bool
	}{
		{"enemy", Card{ID: "e", Kind: KindEnemy, WinRolls: []int{7}, Win: Outcome{ResourceHealth, 1}, Loss: Outcome{ResourceHealth, 2}}, true},
		{"missing id", Card{Kind: KindEnemy, WinRolls: []int{7}, Win: Outcome{ResourceHealth, 1}, Loss: Outcome{ResourceHealth, 2}}, false},
		{"no win rolls", Card{ID: "e", Kind: KindTrap, Win: Outcome{ResourceHealth, 1}, Loss: Outcome{ResourceHealth, 2}}, false},
		{"amount too big", Card{ID: "e", Kind: KindEnemy, WinRolls: []int{7}, Win: Outcome{ResourceHealth, 3}, Loss: Outcome{ResourceHealth, 2}}, false},
		{"item without rolls", Card{ID: "i", Kind: KindItem, Win: Outcome{ResourceKey, 1}}, true},
		{"boss without big win", Card{ID: "b", Kind: KindBoss, WinRolls: []int{9}, Win: Outcome{ResourceHealth, 1}, Loss: Outcome{ResourceHealth, 1}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.card.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
