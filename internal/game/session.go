package game

import (
	"github.com/samdwyer/sorcerer/internal/combat"
	"github.com/samdwyer/sorcerer/internal/encounter"
	"github.com/samdwyer/sorcerer/internal/entity"
)

// NoItem means no item has been chosen yet.
const NoItem = -1

// Session is the state of the encounter on the board. It is reset on every
// draw.
type Session struct {
	Phase Phase
	Kind  encounter.Kind
	Boss  bool // Boss encounter rather than a board encounter

	// Cards holds the drawn card; Item encounters add the paired item second.
	Cards  []*encounter.Card
	Chosen int // Index into Cards of the chosen item, or NoItem

	Character *entity.Character
	HasRolled bool

	Roll   combat.RollResult
	Effect combat.Effect
}

func (s *Session) reset() {
	*s = Session{Phase: PhaseIdle, Chosen: NoItem}
}

func (s *Session) start(card *encounter.Card, boss bool) {
	s.reset()
	s.Phase = PhaseDrawn
	s.Kind = card.Kind
	s.Boss = boss
	s.Cards = []*encounter.Card{card}
}

// Card returns the drawn card, or nil when idle.
func (s Session) Card() *encounter.Card {
	if len(s.Cards) == 0 {
		return nil
	}
	return s.Cards[0]
}

// ChosenItem returns the chosen item, or nil.
func (s Session) ChosenItem() *encounter.Card {
	if s.Chosen < 0 || s.Chosen >= len(s.Cards) {
		return nil
	}
	return s.Cards[s.Chosen]
}

// awaitingCharacter reports whether a character click is expected.
func (s *Session) awaitingCharacter() bool {
	return s.Phase == PhaseDrawn && s.Character == nil
}

func (s *Session) clone() Session {
	c := *s
	c.Cards = append([]*encounter.Card(nil), s.Cards...)
	return c
}
