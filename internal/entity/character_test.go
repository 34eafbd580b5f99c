package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCharacter(id string) *Character {
	return NewCharacter(id, id, Stats{Health: 10, Strength: 3, Accuracy: 3, Stealth: 3})
}

func TestParseStat(t *testing.T) {
	for _, s := range AllStats {
		got, err := ParseStat(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	got, err := ParseStat("sTeAlTh")
	require.NoError(t, err)
	assert.Equal(t, StatStealth, got)

	_, err = ParseStat("charisma")
	assert.Error(t, err)
}

func TestNewCharacter(t *testing.T) {
	c := newTestCharacter("ranger")
	assert.True(t, c.IsAlive())
	assert.Equal(t, c.Base, c.Current)
	assert.Equal(t, NoSlot, c.TeamSlot)

	dead := NewCharacter("ghost", "Ghost", Stats{Strength: -2})
	assert.False(t, dead.IsAlive())
	assert.Equal(t, 0, dead.Get(StatStrength), "negative base stats clamp to zero")
}

func TestDecreaseClampsAtZero(t *testing.T) {
	c := newTestCharacter("rogue")

	assert.Equal(t, 2, c.Decrease(StatStrength, 2))
	assert.Equal(t, 1, c.Get(StatStrength))
	assert.Equal(t, 1, c.Decrease(StatStrength, 2), "only the remaining point is lost")
	assert.Equal(t, 0, c.Get(StatStrength))
	assert.Equal(t, 0, c.Decrease(StatStrength, 1))
	assert.Equal(t, 0, c.Decrease(StatStrength, -3))
	assert.True(t, c.IsAlive(), "losing strength does not kill")
}

func TestIncrease(t *testing.T) {
	c := newTestCharacter("bard")
	assert.Equal(t, 2, c.Increase(StatAccuracy, 2))
	assert.Equal(t, 5, c.Get(StatAccuracy))
	assert.Equal(t, 0, c.Increase(StatAccuracy, 0))

	c.DecreaseHealth(100)
	assert.Equal(t, 0, c.Increase(StatHealth, 2), "the dead stay dead")
	assert.Equal(t, 0, c.Get(StatHealth))
}

func TestDeathRunsOnce(t *testing.T) {
	c := newTestCharacter("knight")
	c.Selected = true
	deaths := 0
	c.setDeathHook(func(*Character) { deaths++ })

	c.DecreaseHealth(9)
	assert.True(t, c.IsAlive())
	assert.Equal(t, 1, c.Get(StatHealth))

	c.DecreaseHealth(5)
	assert.False(t, c.IsAlive())
	assert.Equal(t, 0, c.Get(StatHealth))
	assert.False(t, c.Selected)

	c.DecreaseHealth(1)
	assert.Equal(t, 1, deaths)
}
