package game

// Button identifies a clickable control the controller enables or disables.
type Button int

const (
	ButtonConfirmTeam Button = iota
	ButtonDrawEncounter
	ButtonRoll
	ButtonConfirmItem
	ButtonNextTurn
	ButtonBossDraw
	ButtonBossRoll
	ButtonMainMenu
)

// String returns the button label.
func (b Button) String() string {
	switch b {
	case ButtonConfirmTeam:
		return "Confirm Team"
	case ButtonDrawEncounter:
		return "Draw Encounter"
	case ButtonRoll:
		return "Roll"
	case ButtonConfirmItem:
		return "Confirm Item"
	case ButtonNextTurn:
		return "Next Turn"
	case ButtonBossDraw:
		return "Boss Encounter"
	case ButtonBossRoll:
		return "Roll"
	case ButtonMainMenu:
		return "Main Menu"
	default:
		return "Unknown"
	}
}

// Presenter displays controller state. The controller never reads anything
// back from it.
type Presenter interface {
	UpdateRosterText(text string)
	UpdateInstructionText(text string)
	UpdateResultText(text string)
	UpdateBossInstructionText(text string)
	SetButtonEnabled(b Button, enabled bool)

	ShowBoard()
	ShowBossPanel(name string)
	ShowBossHealthbar(health int)
	ShowTurnTracker(value, max int)
	ShowKeyCount(keys int)
	ShowGameOver(playerWon bool)
}

// NopPresenter discards every update.
type NopPresenter struct{}

func (NopPresenter) UpdateRosterText(string)          {}
func (NopPresenter) UpdateInstructionText(string)     {}
func (NopPresenter) UpdateResultText(string)          {}
func (NopPresenter) UpdateBossInstructionText(string) {}
func (NopPresenter) SetButtonEnabled(Button, bool)    {}
func (NopPresenter) ShowBoard()                       {}
func (NopPresenter) ShowBossPanel(string)             {}
func (NopPresenter) ShowBossHealthbar(int)            {}
func (NopPresenter) ShowTurnTracker(int, int)         {}
func (NopPresenter) ShowKeyCount(int)                 {}
func (NopPresenter) ShowGameOver(bool)                {}

var _ Presenter = NopPresenter{}
