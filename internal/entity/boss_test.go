package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoss(t *testing.T) {
	b := NewBoss("The Sorcerer", 0)
	assert.Equal(t, DefaultBossHealth, b.MaxHealth)
	assert.False(t, b.IsOnBoard())
	assert.Equal(t, 0, b.TakeDamage(1), "off the board")

	b.Activate()
	assert.True(t, b.IsOnBoard())
	assert.Equal(t, 5, b.GetHealth())

	for i := 0; i < 3; i++ {
		assert.Equal(t, 1, b.TakeDamage(1))
	}
	assert.Equal(t, 2, b.GetHealth())
	assert.Equal(t, 2, b.TakeDamage(2))
	assert.Equal(t, 0, b.GetHealth())
	assert.False(t, b.IsAlive())
	assert.Equal(t, 0, b.TakeDamage(2), "health never goes negative")
}
