package game

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/sorcerer/internal/entity"
	"github.com/samdwyer/sorcerer/internal/telemetry"
)

// ToggleCharacter handles a click on a roster card: it picks the character,
// or drops it if it was already picked. Ignored outside roster selection.
func (g *Game) ToggleCharacter(ctx context.Context, c *entity.Character) {
	if g.Stage() != StageRosterSelection || !g.inRoster(c) {
		return
	}

	if c.InTeam {
		if g.team.Remove(c) {
			g.ui.SetButtonEnabled(ButtonConfirmTeam, false)
			g.ui.UpdateRosterText("Select Your Four Characters")
		}
		return
	}

	if g.team.Add(c) {
		g.ui.SetButtonEnabled(ButtonConfirmTeam, true)
		g.ui.UpdateRosterText("Confirm or Change Your Selection")
	}
}

// ConfirmTeam locks the four picked characters in and opens the board.
func (g *Game) ConfirmTeam(ctx context.Context) {
	if g.Stage() != StageRosterSelection || !g.team.IsFull() {
		return
	}
	if !g.team.Confirm() || !g.trigger(EventConfirmTeam) {
		return
	}

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "team.confirm")
	names := make([]string, 0, entity.TeamSize)
	for _, c := range g.team.Members() {
		names = append(names, c.ID)
	}
	span.SetAttributes(
		attribute.String("run.id", g.runID),
		attribute.StringSlice("team", names),
	)
	span.End()

	g.ui.SetButtonEnabled(ButtonConfirmTeam, false)
	g.ui.UpdateRosterText("")
	g.ui.ShowBoard()
	g.ui.UpdateInstructionText("Draw an Encounter")
	g.ui.SetButtonEnabled(ButtonDrawEncounter, true)
}

func (g *Game) inRoster(c *entity.Character) bool {
	if c == nil {
		return false
	}
	for _, r := range g.roster {
		if r == c {
			return true
		}
	}
	return false
}
