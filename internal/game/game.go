package game

import (
	"context"
	"errors"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/enetx/fsm"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/sorcerer/internal/combat"
	"github.com/samdwyer/sorcerer/internal/encounter"
	"github.com/samdwyer/sorcerer/internal/entity"
	"github.com/samdwyer/sorcerer/internal/telemetry"
	"github.com/samdwyer/sorcerer/internal/timer"
)

var (
	ErrRosterTooSmall = errors.New("roster needs at least 4 characters")
	ErrNoEncounters   = errors.New("encounter deck is empty")
	ErrNoBossCards    = errors.New("boss deck is empty")
	ErrNoScheduler    = errors.New("no scheduler")
)

// Timer keys. Each key has at most one pending callback.
const (
	keyEndEncounter     timer.Key = "end_encounter"
	keyEndBossEncounter timer.Key = "end_boss_encounter"
)

// Setup is the content a run is built from.
type Setup struct {
	Roster     []*entity.Character
	Encounters []*encounter.Card // main deck, may contain Item cards
	Items      []*encounter.Card // item sub-deck for the paired draw
	BossCards  []*encounter.Card
}

// Options injects collaborators. Scheduler is required and must run its
// callbacks on the goroutine that drives the game. Other zero values get
// working defaults.
type Options struct {
	Presenter Presenter
	Scheduler timer.Scheduler
	Roller    combat.Roller
	Rand      *rand.Rand
	Logger    *log.Logger
}

// Game holds the entire game state.
type Game struct {
	cfg      Config
	ui       Presenter
	timers   timer.Scheduler
	rng      *rand.Rand
	resolver *combat.Resolver
	logger   *log.Logger
	runID    string

	roster   []*entity.Character
	team     *entity.Team
	deck     *encounter.Deck
	items    *encounter.Deck
	bossDeck *encounter.Deck
	boss     *entity.Boss
	tracker  *TurnTracker
	keys     int

	machine   *fsm.FSM
	session   Session
	playerWon bool
}

// New creates a game in roster selection.
func New(cfg Config, setup Setup, opts Options) (*Game, error) {
	if len(setup.Roster) < entity.TeamSize {
		return nil, ErrRosterTooSmall
	}
	if len(setup.Encounters) == 0 {
		return nil, ErrNoEncounters
	}
	if len(setup.BossCards) == 0 {
		return nil, ErrNoBossCards
	}
	if opts.Scheduler == nil {
		return nil, ErrNoScheduler
	}

	cfg = cfg.withDefaults()

	rng := opts.Rand
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}
	roller := opts.Roller
	if roller == nil {
		roller = combat.NewDie(rng)
	}
	ui := opts.Presenter
	if ui == nil {
		ui = NopPresenter{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	g := &Game{
		cfg:      cfg,
		ui:       ui,
		timers:   opts.Scheduler,
		rng:      rng,
		resolver: combat.NewResolver(roller),
		logger:   logger,
		runID:    uuid.NewString(),
		roster:   setup.Roster,
		team:     entity.NewTeam(),
		deck:     encounter.NewDeck(setup.Encounters),
		items:    encounter.NewDeck(setup.Items),
		bossDeck: encounter.NewDeck(setup.BossCards),
		boss:     entity.NewBoss(cfg.BossName, cfg.BossHealth),
		tracker:  NewTurnTracker(cfg.TurnTrackerCap, cfg.TurnIncrement),
		machine:  newStageMachine(),
	}
	g.session.reset()
	return g, nil
}

// Start pushes the initial roster selection state to the presenter.
func (g *Game) Start(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.start")
	span.SetAttributes(
		attribute.String("run.id", g.runID),
		attribute.Int("roster.size", len(g.roster)),
		attribute.Int("deck.size", g.deck.Remaining()),
	)
	span.End()

	for _, b := range []Button{
		ButtonConfirmTeam, ButtonDrawEncounter, ButtonRoll, ButtonConfirmItem,
		ButtonNextTurn, ButtonBossDraw, ButtonBossRoll, ButtonMainMenu,
	} {
		g.ui.SetButtonEnabled(b, false)
	}
	g.ui.UpdateRosterText("Select Your Four Characters")
	g.ui.ShowTurnTracker(g.tracker.Value(), g.tracker.Max())
	g.ui.ShowKeyCount(g.keys)
}

// =============================================================================
// Accessors
// =============================================================================

// Stage returns the current stage of the run.
func (g *Game) Stage() fsm.State { return g.machine.Current() }

// Config returns the settings the run was created with, defaults applied.
func (g *Game) Config() Config { return g.cfg }

// Session returns a copy of the current encounter session.
func (g *Game) Session() Session { return g.session.clone() }

// Roster returns every character available for selection.
func (g *Game) Roster() []*entity.Character { return g.roster }

// Team returns the team aggregate.
func (g *Game) Team() *entity.Team { return g.team }

// Boss returns the boss.
func (g *Game) Boss() *entity.Boss { return g.boss }

// Tracker returns the turn tracker.
func (g *Game) Tracker() *TurnTracker { return g.tracker }

// Keys returns the number of keys collected.
func (g *Game) Keys() int { return g.keys }

// RunID identifies this run in telemetry.
func (g *Game) RunID() string { return g.runID }

// GameOver reports whether the run has ended and whether the player won.
func (g *Game) GameOver() (over bool, playerWon bool) {
	return g.Stage() == StageGameOver, g.playerWon
}

// trigger fires a stage event. Refused events are out-of-phase calls and are
// ignored.
func (g *Game) trigger(ev fsm.Event) bool {
	if err := g.machine.Trigger(ev); err != nil {
		return false
	}
	return true
}

// addKeys changes the key count, never going below zero.
func (g *Game) addKeys(n int) {
	if n == 0 {
		return
	}
	g.keys += n
	if g.keys < 0 {
		g.keys = 0
	}
	g.ui.ShowKeyCount(g.keys)
}

// finish ends the run.
func (g *Game) finish(ctx context.Context, playerWon bool) {
	if !g.trigger(EventFinish) {
		return
	}
	g.playerWon = playerWon
	g.boss.Deactivate()

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.over")
	span.SetAttributes(
		attribute.String("run.id", g.runID),
		attribute.Bool("player_won", playerWon),
		attribute.Int("team.living", g.team.Count()),
		attribute.Int("boss.health", g.boss.GetHealth()),
		attribute.Int("keys", g.keys),
	)
	span.End()

	g.ui.SetButtonEnabled(ButtonDrawEncounter, false)
	g.ui.SetButtonEnabled(ButtonBossDraw, false)
	g.ui.SetButtonEnabled(ButtonMainMenu, true)
	g.ui.ShowGameOver(playerWon)
}
