package ui

import "github.com/samdwyer/sorcerer/internal/game"

// View holds what the controller last pushed for display. It implements
// game.Presenter; the renderer draws from it.
type View struct {
	RosterText      string
	Instruction     string
	Result          string
	BossInstruction string

	Enabled map[game.Button]bool

	Board      bool
	BossPanel  bool
	BossName   string
	BossHealth int
	Tracker    int
	TrackerMax int
	Keys       int

	Over      bool
	PlayerWon bool
}

// NewView creates a view with every button disabled.
func NewView() *View {
	return &View{Enabled: make(map[game.Button]bool)}
}

func (v *View) UpdateRosterText(text string)      { v.RosterText = text }
func (v *View) UpdateInstructionText(text string) { v.Instruction = text }
func (v *View) UpdateResultText(text string)      { v.Result = text }
func (v *View) UpdateBossInstructionText(text string) {
	v.BossInstruction = text
}

func (v *View) SetButtonEnabled(b game.Button, enabled bool) { v.Enabled[b] = enabled }

func (v *View) ShowBoard() { v.Board = true }

func (v *View) ShowBossPanel(name string) {
	v.BossPanel = true
	v.BossName = name
}

func (v *View) ShowBossHealthbar(health int) { v.BossHealth = health }

func (v *View) ShowTurnTracker(value, max int) {
	v.Tracker = value
	v.TrackerMax = max
}

func (v *View) ShowKeyCount(keys int) { v.Keys = keys }

func (v *View) ShowGameOver(playerWon bool) {
	v.Over = true
	v.PlayerWon = playerWon
}

// Buttons returns the buttons shown on the current screen, in display order.
func (v *View) Buttons(manualAdvance bool) []game.Button {
	switch {
	case v.Over:
		return []game.Button{game.ButtonMainMenu}
	case v.BossPanel:
		buttons := []game.Button{game.ButtonBossDraw, game.ButtonBossRoll}
		if manualAdvance {
			buttons = append(buttons, game.ButtonNextTurn)
		}
		return buttons
	case v.Board:
		buttons := []game.Button{game.ButtonDrawEncounter, game.ButtonRoll, game.ButtonConfirmItem}
		if manualAdvance {
			buttons = append(buttons, game.ButtonNextTurn)
		}
		return buttons
	default:
		return []game.Button{game.ButtonConfirmTeam}
	}
}

var _ game.Presenter = (*View)(nil)
