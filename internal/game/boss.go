package game

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/sorcerer/internal/telemetry"
)

// =============================================================================
// Boss phase
// =============================================================================

// summonBoss puts the boss on the board once the turn tracker saturates.
func (g *Game) summonBoss(ctx context.Context) {
	if !g.trigger(EventSummonBoss) {
		return
	}
	g.boss.Activate()

	tracer := telemetry.Tracer("boss")
	_, span := tracer.Start(ctx, "boss.summon")
	span.SetAttributes(
		attribute.String("run.id", g.runID),
		attribute.String("boss", g.boss.Name),
		attribute.Int("boss.health", g.boss.GetHealth()),
		attribute.Int("team.living", g.team.Count()),
	)
	span.End()

	g.ui.SetButtonEnabled(ButtonDrawEncounter, false)
	g.ui.ShowBossPanel(g.boss.Name)
	g.ui.ShowBossHealthbar(g.boss.GetHealth())
	g.ui.UpdateBossInstructionText("Draw a Boss Encounter")
	g.ui.SetButtonEnabled(ButtonBossDraw, true)
}

// DrawBossEncounter draws the next boss card. Only valid in the boss phase
// with no boss encounter in progress.
func (g *Game) DrawBossEncounter(ctx context.Context) {
	if g.Stage() != StageBossPhase || !g.boss.IsOnBoard() || g.session.Phase != PhaseIdle {
		return
	}
	card, ok := g.bossDeck.Draw(g.rng)
	if !ok {
		g.logger.Printf("boss deck exhausted, nothing to draw")
		return
	}

	tracer := telemetry.Tracer("boss")
	_, span := tracer.Start(ctx, "boss.draw")
	span.SetAttributes(
		attribute.String("run.id", g.runID),
		attribute.String("card", card.ID),
	)
	span.End()

	g.session.start(card, true)
	g.ui.SetButtonEnabled(ButtonBossDraw, false)
	g.ui.UpdateResultText("")
	g.ui.UpdateBossInstructionText(fmt.Sprintf("%s: Select a Character", card.Name))
}

// rollBoss resolves a boss encounter: the tier decides the boss damage and
// the character's penalty.
func (g *Game) rollBoss(ctx context.Context) {
	s := &g.session
	card := s.Card()

	tracer := telemetry.Tracer("boss")
	ctx, span := tracer.Start(ctx, "boss.roll")
	defer span.End()

	result := g.resolver.Roll(card, s.Character)
	effect := g.resolver.Apply(card, s.Character, result.Tier)
	s.HasRolled = true
	s.Phase = PhaseRolled
	s.Roll = result
	s.Effect = effect
	dealt := g.boss.TakeDamage(effect.BossDamage)

	span.SetAttributes(
		attribute.String("run.id", g.runID),
		attribute.String("card", card.ID),
		attribute.String("character", s.Character.ID),
		attribute.Int("total", result.Total),
		attribute.String("tier", result.Tier.String()),
		attribute.Int("boss.damage", dealt),
		attribute.Int("boss.health", g.boss.GetHealth()),
	)

	g.ui.SetButtonEnabled(ButtonBossRoll, false)
	g.ui.ShowBossHealthbar(g.boss.GetHealth())
	g.ui.UpdateResultText(rollText(result, effect))
	g.awaitEnd(ctx, keyEndBossEncounter)
}

// endBossEncounter clears a resolved boss card and checks for the end of
// the run. A boss brought to zero wins even if the same roll killed the last
// character.
func (g *Game) endBossEncounter(ctx context.Context) {
	s := &g.session
	if g.Stage() != StageBossPhase {
		return
	}

	for _, c := range s.Cards {
		g.bossDeck.Discard(c)
	}
	if s.Character != nil {
		s.Character.Selected = false
	}
	s.reset()
	g.ui.UpdateResultText("")

	switch {
	case !g.boss.IsAlive():
		g.finish(ctx, true)
	case !g.team.IsAlive():
		g.finish(ctx, false)
	default:
		g.ui.UpdateBossInstructionText("Draw a Boss Encounter")
		g.ui.SetButtonEnabled(ButtonBossDraw, true)
	}
}
