package game

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samdwyer/sorcerer/internal/combat"
	"github.com/samdwyer/sorcerer/internal/encounter"
	"github.com/samdwyer/sorcerer/internal/entity"
	"github.com/samdwyer/sorcerer/internal/timer"
)

const testDelay = time.Second

// recorder is a Presenter that keeps the last value of everything.
type recorder struct {
	roster, instruction, result, bossInstruction string

	enabled    map[Button]bool
	board      bool
	bossPanel  string
	bossHealth int
	tracker    int
	trackerMax int
	keys       int
	overCalls  int
	playerWon  bool
}

func newRecorder() *recorder { return &recorder{enabled: make(map[Button]bool)} }

func (r *recorder) UpdateRosterText(text string)          { r.roster = text }
func (r *recorder) UpdateInstructionText(text string)     { r.instruction = text }
func (r *recorder) UpdateResultText(text string)          { r.result = text }
func (r *recorder) UpdateBossInstructionText(text string) { r.bossInstruction = text }
func (r *recorder) SetButtonEnabled(b Button, on bool)    { r.enabled[b] = on }
func (r *recorder) ShowBoard()                            { r.board = true }
func (r *recorder) ShowBossPanel(name string)             { r.bossPanel = name }
func (r *recorder) ShowBossHealthbar(health int)          { r.bossHealth = health }
func (r *recorder) ShowKeyCount(keys int)                 { r.keys = keys }
func (r *recorder) ShowTurnTracker(value, max int) {
	r.tracker, r.trackerMax = value, max
}
func (r *recorder) ShowGameOver(playerWon bool) {
	r.overCalls++
	r.playerWon = playerWon
}

// dice returns the given values in order, repeating the last one.
func dice(values ...int) combat.Roller {
	i := 0
	return combat.RollerFunc(func() int {
		v := values[len(values)-1]
		if i < len(values) {
			v = values[i]
		}
		i++
		return v
	})
}

func character(id string, health int) *entity.Character {
	return entity.NewCharacter(id, id, entity.Stats{Health: health, Strength: 3, Accuracy: 3, Stealth: 3})
}

func roster(health int) []*entity.Character {
	return []*entity.Character{
		character("knight", health),
		character("ranger", health),
		character("rogue", health),
		character("cleric", health),
		character("bard", health),
	}
}

func goblin() *encounter.Card {
	return &encounter.Card{
		ID:       "goblin",
		Name:     "Goblin",
		Kind:     encounter.KindEnemy,
		WinRolls: []int{7, 8, 9, 10, 11, 12},
		Win:      encounter.Outcome{Resource: encounter.ResourceHealth, Amount: 1},
		Loss:     encounter.Outcome{Resource: encounter.ResourceHealth, Amount: 2},
	}
}

func chest() *encounter.Card {
	return &encounter.Card{
		ID:       "chest",
		Name:     "Locked Chest",
		Kind:     encounter.KindUnlockable,
		WinRolls: []int{7, 8, 9, 10, 11, 12},
		Win:      encounter.Outcome{Resource: encounter.ResourceKey, Amount: 1},
		Loss:     encounter.Outcome{Resource: encounter.ResourceStealth, Amount: 1},
	}
}

func item(id string, r encounter.Resource, amount int) *encounter.Card {
	return &encounter.Card{ID: id, Name: id, Kind: encounter.KindItem, Win: encounter.Outcome{Resource: r, Amount: amount}}
}

// hex rolls against accuracy+stealth, 6 for the test characters: a die of
// 2..5 wins and a 6 is a big win.
func hex() *encounter.Card {
	return &encounter.Card{
		ID:          "hex",
		Name:        "Hex Bolt",
		Kind:        encounter.KindBoss,
		WinRolls:    []int{8, 9, 10, 11},
		BigWinRolls: []int{12, 13, 14, 15, 16, 17, 18},
		Win:         encounter.Outcome{Resource: encounter.ResourceAccuracy, Amount: 1},
		Loss:        encounter.Outcome{Resource: encounter.ResourceHealth, Amount: 2},
		BigWin:      encounter.Outcome{Resource: encounter.ResourceHealth, Amount: 1},
	}
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.RevealDelay = testDelay
	return cfg
}

type fixture struct {
	ctx    context.Context
	game   *Game
	ui     *recorder
	timers *timer.Manual
}

func newFixture(t *testing.T, cfg Config, setup Setup, roller combat.Roller) *fixture {
	t.Helper()
	if setup.Roster == nil {
		setup.Roster = roster(10)
	}
	if setup.Encounters == nil {
		setup.Encounters = []*encounter.Card{goblin()}
	}
	if setup.BossCards == nil {
		setup.BossCards = []*encounter.Card{hex()}
	}
	f := &fixture{ctx: context.Background(), ui: newRecorder(), timers: timer.NewManual()}
	g, err := New(cfg, setup, Options{
		Presenter: f.ui,
		Scheduler: f.timers,
		Roller:    roller,
		Rand:      rand.New(rand.NewSource(1)),
	})
	require.NoError(t, err)
	g.Start(f.ctx)
	f.game = g
	return f
}

// confirmTeam picks the first four roster characters and confirms them.
func (f *fixture) confirmTeam(t *testing.T) {
	t.Helper()
	for _, c := range f.game.Roster()[:entity.TeamSize] {
		f.game.ToggleCharacter(f.ctx, c)
	}
	f.game.ConfirmTeam(f.ctx)
	require.Equal(t, StageBoardIdle, f.game.Stage())
}

// rollBoard draws, selects the team member in slot and rolls. The result
// is still on screen afterwards.
func (f *fixture) rollBoard(t *testing.T, slot int) {
	t.Helper()
	f.game.DrawEncounter(f.ctx)
	require.Equal(t, StageEncounter, f.game.Stage())
	f.game.SelectCharacter(f.ctx, f.game.Team().Slot(slot))
	f.game.Roll(f.ctx)
	require.Equal(t, PhaseResolving, f.game.Session().Phase)
}

// playBoard is rollBoard followed by the reveal delay.
func (f *fixture) playBoard(t *testing.T, slot int) {
	t.Helper()
	f.rollBoard(t, slot)
	f.timers.Advance(testDelay)
}

func (f *fixture) playBoss(t *testing.T, slot int) {
	t.Helper()
	f.game.DrawBossEncounter(f.ctx)
	require.True(t, f.game.Session().Boss)
	f.game.SelectCharacter(f.ctx, f.game.Team().Slot(slot))
	f.game.Roll(f.ctx)
	require.Equal(t, PhaseResolving, f.game.Session().Phase)
	f.timers.Advance(testDelay)
}
