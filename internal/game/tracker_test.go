package game

import (
	"testing"

	"github.com/enetx/fsm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTurnTracker(t *testing.T) {
	tr := NewTurnTracker(3, 1)
	assert.False(t, tr.Advance())
	assert.False(t, tr.Advance())
	assert.True(t, tr.Advance())
	assert.True(t, tr.Saturated())
	assert.True(t, tr.Advance())
	assert.Equal(t, 3, tr.Value(), "never passes the cap")
}

func TestStageMachine(t *testing.T) {
	m := newStageMachine()
	assert.Equal(t, StageRosterSelection, m.Current())
	assert.Error(t, m.Trigger(EventDraw))

	steps := []struct {
		event fsm.Event
		want  fsm.State
	}{
		{EventConfirmTeam, StageBoardIdle},
		{EventDraw, StageEncounter},
		{EventResolve, StageBoardIdle},
		{EventDraw, StageEncounter},
		{EventSummonBoss, StageBossPhase},
		{EventFinish, StageGameOver},
	}
	for _, s := range steps {
		require.NoError(t, m.Trigger(s.event), string(s.event))
		assert.Equal(t, s.want, m.Current())
	}
	assert.Error(t, m.Trigger(EventConfirmTeam), "game over is final")
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "resolving", PhaseResolving.String())
	assert.Equal(t, "unknown", Phase(99).String())
}
