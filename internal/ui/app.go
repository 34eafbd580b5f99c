package ui

import (
	"context"
	"io"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/sorcerer/internal/game"
	"github.com/samdwyer/sorcerer/internal/timer"
)

// NewGameFunc builds a fresh run wired to the given presenter and timers.
type NewGameFunc func(ui game.Presenter, timers timer.Scheduler) (*game.Game, error)

// keyButtons maps keyboard shortcuts to buttons.
var keyButtons = map[rune]game.Button{
	'c': game.ButtonConfirmTeam,
	'd': game.ButtonDrawEncounter,
	'r': game.ButtonRoll,
	'i': game.ButtonConfirmItem,
	'n': game.ButtonNextTurn,
	'b': game.ButtonBossDraw,
	'm': game.ButtonMainMenu,
}

// App runs the event loop: it renders, turns clicks and keys into
// controller calls, and runs timer callbacks posted back to the loop.
type App struct {
	screen   *Screen
	renderer *Renderer
	newGame  NewGameFunc
	logger   *log.Logger

	game    *game.Game
	view    *View
	layout  Layout
	running bool
	mouseDn bool
}

// NewApp creates an app on screen. A nil logger discards output.
func NewApp(screen *Screen, newGame NewGameFunc, logger *log.Logger) *App {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &App{
		screen:   screen,
		renderer: NewRenderer(screen),
		newGame:  newGame,
		logger:   logger,
	}
}

// Run executes the main loop until the player quits.
func (a *App) Run(ctx context.Context) error {
	if err := a.restart(ctx); err != nil {
		return err
	}

	a.running = true
	for a.running {
		a.render()
		a.handleEvent(ctx, a.screen.PollEvent())
	}

	a.screen.Close()
	return nil
}

// Game returns the current run.
func (a *App) Game() *game.Game { return a.game }

// View returns the current view.
func (a *App) View() *View { return a.view }

// restart throws the current run away and starts a new one at roster
// selection. Timers of the old run fire into the old game and are ignored.
func (a *App) restart(ctx context.Context) error {
	view := NewView()
	timers := timer.NewAfterFunc(a.post)
	g, err := a.newGame(view, timers)
	if err != nil {
		return err
	}
	a.game, a.view = g, view
	g.Start(ctx)
	a.relayout()
	return nil
}

// post hands a timer callback to the event loop.
func (a *App) post(fn func()) {
	if err := a.screen.Post(fn); err != nil {
		a.logger.Printf("dropping timer callback: %v", err)
	}
}

func (a *App) relayout() {
	w, h := a.screen.Size()
	a.layout = NewLayout(w, h, len(a.game.Roster()), a.view.Buttons(a.game.Config().ManualAdvance))
}

func (a *App) render() {
	a.relayout()
	a.renderer.Render(a.view, a.game, a.layout)
}

// handleEvent processes a single event.
func (a *App) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventInterrupt:
		if fn, ok := ev.Data().(func()); ok {
			fn()
		}
	case *tcell.EventMouse:
		a.handleMouse(ctx, ev)
	case *tcell.EventKey:
		a.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		a.screen.Sync()
	}
}

// handleMouse acts on the press edge of the primary button only.
func (a *App) handleMouse(ctx context.Context, ev *tcell.EventMouse) {
	down := ev.Buttons()&tcell.Button1 != 0
	pressed := down && !a.mouseDn
	a.mouseDn = down
	if !pressed {
		return
	}
	x, y := ev.Position()
	a.click(ctx, a.layout.HitTest(x, y, a.view.Board))
}

// handleKeyEvent processes keyboard input. Digits pick roster characters or
// team members, a and s pick between paired items.
func (a *App) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		a.running = false
		return
	case tcell.KeyRune:
	default:
		return
	}

	r := ev.Rune()
	switch {
	case r == 'q' || r == 'Q':
		a.running = false
	case r >= '1' && r <= '9':
		region := RegionRoster
		if a.view.Board {
			region = RegionTeam
		}
		a.click(ctx, Target{Region: region, Index: int(r - '1')})
	case r == 'a' || r == 'A':
		a.click(ctx, Target{Region: RegionCard, Index: 0})
	case r == 's' || r == 'S':
		a.click(ctx, Target{Region: RegionCard, Index: 1})
	default:
		if b, ok := keyButtons[r]; ok {
			if b == game.ButtonRoll && a.view.BossPanel {
				b = game.ButtonBossRoll
			}
			a.click(ctx, Target{Region: RegionButton, Button: b})
		}
	}
}

// click dispatches a hit to the controller.
func (a *App) click(ctx context.Context, t Target) {
	g := a.game
	switch t.Region {
	case RegionRoster:
		roster := g.Roster()
		if t.Index >= 0 && t.Index < len(roster) {
			g.ToggleCharacter(ctx, roster[t.Index])
		}
	case RegionTeam:
		if c := g.Team().Slot(t.Index); c != nil {
			g.SelectCharacter(ctx, c)
		}
	case RegionCard:
		g.SelectItem(ctx, t.Index)
	case RegionButton:
		if a.view.Enabled[t.Button] {
			a.press(ctx, t.Button)
		}
	}
}

func (a *App) press(ctx context.Context, b game.Button) {
	g := a.game
	switch b {
	case game.ButtonConfirmTeam:
		g.ConfirmTeam(ctx)
	case game.ButtonDrawEncounter:
		g.DrawEncounter(ctx)
	case game.ButtonRoll, game.ButtonBossRoll:
		g.Roll(ctx)
	case game.ButtonConfirmItem:
		g.ConfirmItem(ctx)
	case game.ButtonNextTurn:
		g.NextTurn(ctx)
	case game.ButtonBossDraw:
		g.DrawBossEncounter(ctx)
	case game.ButtonMainMenu:
		if err := a.restart(ctx); err != nil {
			a.logger.Printf("failed to start a new run: %v", err)
		}
	}
}
