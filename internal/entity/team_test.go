package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullTeam(t *testing.T) (*Team, []*Character) {
	t.Helper()
	team := NewTeam()
	var members []*Character
	for _, id := range []string{"a", "b", "c", "d"} {
		c := newTestCharacter(id)
		team.Add(c)
		members = append(members, c)
	}
	require.True(t, team.SelectionComplete())
	return team, members
}

func TestTeamSelection(t *testing.T) {
	team := NewTeam()
	a, b := newTestCharacter("a"), newTestCharacter("b")

	assert.False(t, team.Add(a))
	assert.True(t, a.InTeam)
	assert.False(t, team.Add(a), "adding twice is ignored")
	assert.Equal(t, 1, team.Count())

	assert.True(t, team.Remove(a))
	assert.False(t, a.InTeam)
	assert.False(t, team.Remove(b), "b was never picked")
	assert.Equal(t, 0, team.Count())
}

func TestTeamFifthAddIsIgnored(t *testing.T) {
	team, _ := fullTeam(t)
	extra := newTestCharacter("e")

	assert.False(t, team.Add(extra))
	assert.False(t, extra.InTeam)
	assert.Equal(t, TeamSize, team.Count())
	assert.True(t, team.SelectionComplete())
}

func TestTeamConfirm(t *testing.T) {
	team := NewTeam()
	assert.False(t, team.Confirm(), "needs four")

	team, members := fullTeam(t)
	require.True(t, team.Confirm())
	assert.True(t, team.IsConfirmed())
	assert.False(t, team.Confirm())

	for i, c := range members {
		assert.Equal(t, i, c.TeamSlot)
		assert.True(t, c.Confirmed)
		assert.Same(t, c, team.Slot(i))
		assert.True(t, team.Contains(c))
	}
	assert.False(t, team.Remove(members[0]), "confirmed teams are locked")
	assert.Nil(t, team.Slot(TeamSize))
}

func TestTeamDeath(t *testing.T) {
	team, members := fullTeam(t)
	require.True(t, team.Confirm())

	members[1].DecreaseHealth(10)
	assert.Equal(t, 3, team.Count())
	assert.Nil(t, team.Slot(1))
	assert.Equal(t, 1, members[1].TeamSlot, "slot index is kept after death")
	assert.False(t, team.Contains(members[1]))
	assert.Len(t, team.Members(), TeamSize)

	members[1].DecreaseHealth(10)
	assert.Equal(t, 3, team.Count(), "a dead member is only removed once")

	for _, c := range members {
		c.DecreaseHealth(10)
	}
	assert.False(t, team.IsAlive())
	assert.Equal(t, 0, team.Count())
}
