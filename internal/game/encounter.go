package game

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/sorcerer/internal/combat"
	"github.com/samdwyer/sorcerer/internal/encounter"
	"github.com/samdwyer/sorcerer/internal/entity"
	"github.com/samdwyer/sorcerer/internal/telemetry"
	"github.com/samdwyer/sorcerer/internal/timer"
)

// =============================================================================
// Board encounters
// =============================================================================

// DrawEncounter draws the next encounter card. Only valid on an idle board
// before the boss threshold.
func (g *Game) DrawEncounter(ctx context.Context) {
	if g.Stage() != StageBoardIdle || g.tracker.Saturated() || g.session.Phase != PhaseIdle {
		return
	}

	card, ok := g.deck.Draw(g.rng)
	if !ok {
		g.logger.Printf("encounter deck exhausted, nothing to draw")
		return
	}
	if !g.trigger(EventDraw) {
		g.deck.Discard(card)
		return
	}

	tracer := telemetry.Tracer("encounter")
	_, span := tracer.Start(ctx, "encounter.draw")
	defer span.End()

	g.session.start(card, false)
	span.SetAttributes(
		attribute.String("run.id", g.runID),
		attribute.String("card", card.ID),
		attribute.String("kind", card.Kind.String()),
		attribute.Int("deck.remaining", g.deck.Remaining()),
	)

	g.ui.SetButtonEnabled(ButtonDrawEncounter, false)
	g.ui.UpdateResultText("")

	if card.Kind == encounter.KindItem {
		pair, ok := g.items.Draw(g.rng)
		if ok {
			g.session.Cards = append(g.session.Cards, pair)
			span.SetAttributes(attribute.String("pair", pair.ID))
		} else {
			// Unresolved: there is no second item to offer.
			g.logger.Printf("item deck exhausted, offering %s alone", card.ID)
			span.SetAttributes(attribute.Bool("pair.missing", true))
		}
		g.ui.UpdateInstructionText("Choose an Item and a Character")
		return
	}

	g.ui.UpdateInstructionText(fmt.Sprintf("%s: Select a Character", card.Name))
}

// SelectItem chooses one of the paired items. The choice can change until
// the item is confirmed.
func (g *Game) SelectItem(ctx context.Context, index int) {
	s := &g.session
	if g.Stage() != StageEncounter || s.Kind != encounter.KindItem || s.HasRolled {
		return
	}
	if s.Phase != PhaseDrawn && s.Phase != PhaseCharacterSelected {
		return
	}
	if index < 0 || index >= len(s.Cards) {
		return
	}
	s.Chosen = index

	if s.Character != nil {
		g.ui.SetButtonEnabled(ButtonConfirmItem, true)
		g.ui.UpdateInstructionText("Confirm your Item")
	} else {
		g.ui.UpdateInstructionText("Select a Character")
	}
}

// SelectCharacter makes c the acting character of the current encounter,
// board or boss. Re-selection is ignored.
func (g *Game) SelectCharacter(ctx context.Context, c *entity.Character) {
	s := &g.session
	if !s.awaitingCharacter() || !g.team.Contains(c) || !c.IsAlive() {
		return
	}
	switch g.Stage() {
	case StageEncounter:
		if s.Boss {
			return
		}
	case StageBossPhase:
		if !s.Boss {
			return
		}
	default:
		return
	}

	s.Character = c
	s.Phase = PhaseCharacterSelected
	c.Selected = true

	switch {
	case s.Boss:
		g.ui.UpdateBossInstructionText("Roll the Dice")
		g.ui.SetButtonEnabled(ButtonBossRoll, true)
	case s.Kind == encounter.KindItem:
		if s.Chosen != NoItem {
			g.ui.UpdateInstructionText("Confirm your Item")
			g.ui.SetButtonEnabled(ButtonConfirmItem, true)
		} else {
			g.ui.UpdateInstructionText("Choose an Item")
		}
	default:
		g.ui.UpdateInstructionText("Roll the Dice")
		g.ui.SetButtonEnabled(ButtonRoll, true)
	}
}

// Roll resolves the current encounter for the selected character. It works
// once per encounter; repeated calls are ignored.
func (g *Game) Roll(ctx context.Context) {
	s := &g.session
	if s.Phase != PhaseCharacterSelected || s.HasRolled || s.Character == nil {
		return
	}
	switch {
	case g.Stage() == StageEncounter && !s.Boss && s.Kind != encounter.KindItem:
		g.rollBoard(ctx)
	case g.Stage() == StageBossPhase && s.Boss:
		g.rollBoss(ctx)
	}
}

func (g *Game) rollBoard(ctx context.Context) {
	s := &g.session
	card := s.Card()

	tracer := telemetry.Tracer("encounter")
	ctx, span := tracer.Start(ctx, "encounter.roll")
	defer span.End()

	result := g.resolver.Roll(card, s.Character)
	effect := g.resolver.Apply(card, s.Character, result.Tier)
	s.HasRolled = true
	s.Phase = PhaseRolled
	s.Roll = result
	s.Effect = effect
	g.addKeys(effect.KeyDelta)
	g.tracker.Advance()

	span.SetAttributes(
		attribute.String("run.id", g.runID),
		attribute.String("card", card.ID),
		attribute.String("character", s.Character.ID),
		attribute.Int("die", result.Die),
		attribute.Int("bonus", result.Bonus),
		attribute.Int("total", result.Total),
		attribute.String("tier", result.Tier.String()),
		attribute.Int("tracker", g.tracker.Value()),
	)

	g.ui.SetButtonEnabled(ButtonRoll, false)
	g.ui.ShowTurnTracker(g.tracker.Value(), g.tracker.Max())
	g.ui.UpdateResultText(rollText(result, effect))
	g.awaitEnd(ctx, keyEndEncounter)
}

// ConfirmItem takes the chosen item for the selected character.
func (g *Game) ConfirmItem(ctx context.Context) {
	s := &g.session
	if g.Stage() != StageEncounter || s.Kind != encounter.KindItem {
		return
	}
	if s.Phase != PhaseCharacterSelected || s.HasRolled || s.Character == nil {
		return
	}
	item := s.ChosenItem()
	if item == nil {
		return
	}

	tracer := telemetry.Tracer("encounter")
	ctx, span := tracer.Start(ctx, "encounter.item")
	defer span.End()

	effect := g.resolver.ApplyItem(item, s.Character)
	s.HasRolled = true
	s.Phase = PhaseRolled
	s.Effect = effect
	g.addKeys(effect.KeyDelta)
	g.tracker.Advance()

	span.SetAttributes(
		attribute.String("run.id", g.runID),
		attribute.String("item", item.ID),
		attribute.String("character", s.Character.ID),
		attribute.Int("tracker", g.tracker.Value()),
	)

	g.ui.SetButtonEnabled(ButtonConfirmItem, false)
	g.ui.ShowTurnTracker(g.tracker.Value(), g.tracker.Max())
	g.ui.UpdateResultText(effect.Message)
	g.awaitEnd(ctx, keyEndEncounter)
}

// NextTurn clears a resolved encounter when manual advance is configured.
func (g *Game) NextTurn(ctx context.Context) {
	if !g.cfg.ManualAdvance || g.session.Phase != PhaseRolled {
		return
	}
	g.ui.SetButtonEnabled(ButtonNextTurn, false)
	key := keyEndEncounter
	if g.session.Boss {
		key = keyEndBossEncounter
	}
	g.scheduleEnd(ctx, key)
}

// awaitEnd either waits for the Next Turn button or schedules the cleanup.
func (g *Game) awaitEnd(ctx context.Context, key timer.Key) {
	if g.cfg.ManualAdvance {
		g.ui.SetButtonEnabled(ButtonNextTurn, true)
		return
	}
	g.scheduleEnd(ctx, key)
}

// scheduleEnd moves to PhaseResolving and queues EndEncounter after the
// reveal delay.
func (g *Game) scheduleEnd(ctx context.Context, key timer.Key) {
	g.session.Phase = PhaseResolving
	g.timers.Schedule(key, g.cfg.RevealDelay, func() { g.EndEncounter(ctx) })
}

// EndEncounter clears the board after a resolved encounter: cards are
// discarded or consumed, the acting character returns to its slot, and the
// run moves on to the board, the boss or the end. It is normally run by
// the reveal timer.
func (g *Game) EndEncounter(ctx context.Context) {
	s := &g.session
	if s.Phase != PhaseResolving {
		return
	}
	if s.Boss {
		g.endBossEncounter(ctx)
		return
	}
	if g.Stage() != StageEncounter {
		return
	}

	tracer := telemetry.Tracer("encounter")
	ctx, span := tracer.Start(ctx, "encounter.end")
	defer span.End()

	g.discardSession()
	if s.Character != nil {
		s.Character.Selected = false
	}
	s.reset()

	span.SetAttributes(
		attribute.String("run.id", g.runID),
		attribute.Int("tracker", g.tracker.Value()),
		attribute.Int("team.living", g.team.Count()),
	)

	g.ui.UpdateResultText("")

	switch {
	case !g.team.IsAlive():
		span.SetAttributes(attribute.String("next", string(StageGameOver)))
		g.finish(ctx, false)
	case g.tracker.Saturated():
		span.SetAttributes(attribute.String("next", string(StageBossPhase)))
		g.summonBoss(ctx)
	default:
		if g.trigger(EventResolve) {
			g.ui.UpdateInstructionText("Draw an Encounter")
			g.ui.SetButtonEnabled(ButtonDrawEncounter, true)
		}
	}
}

// discardSession returns used cards to their decks. A chosen item is
// consumed; the unchosen one is discarded to the deck it came from.
func (g *Game) discardSession() {
	s := &g.session
	if s.Kind != encounter.KindItem {
		for _, c := range s.Cards {
			g.deck.Discard(c)
		}
		return
	}
	for i, c := range s.Cards {
		if i == s.Chosen {
			continue
		}
		if i == 0 {
			g.deck.Discard(c)
		} else {
			g.items.Discard(c)
		}
	}
}

func rollText(r combat.RollResult, e combat.Effect) string {
	verdict := "Lost"
	switch r.Tier {
	case combat.TierWin:
		verdict = "Won"
	case combat.TierBigWin:
		verdict = "Big Win"
	}
	return fmt.Sprintf("Rolled %d + %d = %d. %s! %s", r.Die, r.Bonus, r.Total, verdict, e.Message)
}
