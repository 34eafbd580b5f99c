// Package combat resolves encounter rolls and applies their outcomes.
package combat

import (
	"fmt"
	"math/rand"

	"github.com/samdwyer/sorcerer/internal/encounter"
	"github.com/samdwyer/sorcerer/internal/entity"
)

// DieSides is the size of the encounter die.
const DieSides = 6

// Roller produces a single die value in 1..DieSides.
type Roller interface {
	Roll() int
}

// RollerFunc adapts a function to the Roller interface.
type RollerFunc func() int

// Roll calls f.
func (f RollerFunc) Roll() int { return f() }

// Die is a d6 backed by a random source.
type Die struct {
	rng *rand.Rand
}

// NewDie creates a die that draws from rng.
func NewDie(rng *rand.Rand) *Die {
	return &Die{rng: rng}
}

// Roll returns a value in 1..DieSides.
func (d *Die) Roll() int {
	return d.rng.Intn(DieSides) + 1
}

// Tier is how well a roll went.
type Tier int

const (
	TierLoss Tier = iota
	TierWin
	TierBigWin
)

// String returns a human-readable tier name.
func (t Tier) String() string {
	switch t {
	case TierLoss:
		return "loss"
	case TierWin:
		return "win"
	case TierBigWin:
		return "big_win"
	default:
		return "unknown"
	}
}

// BossDamage is the damage each tier deals to the boss.
func (t Tier) BossDamage() int {
	switch t {
	case TierWin:
		return 1
	case TierBigWin:
		return 2
	default:
		return 0
	}
}

// RollResult is the outcome of a single roll.
type RollResult struct {
	Die   int
	Bonus int
	Total int
	Tier  Tier
}

// IsWin reports whether the roll won at any tier.
func (r RollResult) IsWin() bool { return r.Tier != TierLoss }

// Effect describes what resolving an encounter changed.
type Effect struct {
	Changes    []StatChange
	KeyDelta   int // Keys gained (positive) or lost (negative)
	BossDamage int
	Message    string
}

// StatChange is a single applied stat mutation.
type StatChange struct {
	Stat  entity.Stat
	Delta int
}

// Resolver rolls for encounters and applies the results.
type Resolver struct {
	roller Roller
}

// NewResolver creates a resolver using the given die.
func NewResolver(roller Roller) *Resolver {
	return &Resolver{roller: roller}
}

// =============================================================================
// Roll bonus
// =============================================================================

// bonusStat picks the single stat named by a win outcome.
func bonusStat(r encounter.Resource) entity.Stat {
	switch r {
	case encounter.ResourceStrength:
		return entity.StatStrength
	case encounter.ResourceAccuracy:
		return entity.StatAccuracy
	default:
		return entity.StatStealth
	}
}

// BossPair returns the two stats summed for a boss roll.
func BossPair(r encounter.Resource) (entity.Stat, entity.Stat) {
	switch r {
	case encounter.ResourceStrength:
		return entity.StatStrength, entity.StatAccuracy
	case encounter.ResourceAccuracy:
		return entity.StatAccuracy, entity.StatStealth
	default:
		return entity.StatStealth, entity.StatStrength
	}
}

// RollBonus returns the stat bonus a character adds to a roll against card.
func RollBonus(card *encounter.Card, c *entity.Character) int {
	if card.Kind == encounter.KindBoss {
		a, b := BossPair(card.Win.Resource)
		return c.Get(a) + c.Get(b)
	}
	return c.Get(bonusStat(card.Win.Resource))
}

// Roll throws the die for c against card and classifies the total.
func (r *Resolver) Roll(card *encounter.Card, c *entity.Character) RollResult {
	die := r.roller.Roll()
	bonus := RollBonus(card, c)
	total := die + bonus

	tier := TierLoss
	switch {
	case card.Kind == encounter.KindBoss && card.IsBigWin(total):
		tier = TierBigWin
	case card.IsWin(total):
		tier = TierWin
	}

	return RollResult{Die: die, Bonus: bonus, Total: total, Tier: tier}
}

// =============================================================================
// Outcome application
// =============================================================================

// Apply applies the outcome of a rolled encounter to c.
func (r *Resolver) Apply(card *encounter.Card, c *entity.Character, tier Tier) Effect {
	switch card.Kind {
	case encounter.KindBoss:
		return r.applyBoss(card, c, tier)
	case encounter.KindUnlockable:
		outcome := card.Result(tier != TierLoss)
		if tier == TierLoss {
			return lose(c, outcome)
		}
		return gain(c, outcome)
	default:
		// Enemies and traps always hurt; a win only hurts less.
		return lose(c, card.Result(tier != TierLoss))
	}
}

// ApplyItem grants a chosen item's win outcome to c.
func (r *Resolver) ApplyItem(item *encounter.Card, c *entity.Character) Effect {
	return gain(c, item.Win)
}

// applyBoss damages the boss by tier and applies the tier's stat-pair
// penalty: health and the outcome's stat each drop by the outcome amount.
func (r *Resolver) applyBoss(card *encounter.Card, c *entity.Character, tier Tier) Effect {
	var outcome encounter.Outcome
	switch tier {
	case TierBigWin:
		outcome = card.BigWin
	case TierWin:
		outcome = card.Win
	default:
		outcome = card.Loss
	}

	effect := Effect{BossDamage: tier.BossDamage()}
	if stat, ok := outcome.Resource.Stat(); ok && stat != entity.StatHealth {
		effect.Changes = append(effect.Changes, StatChange{Stat: stat, Delta: -c.Decrease(stat, outcome.Amount)})
	}
	effect.Changes = append(effect.Changes, StatChange{Stat: entity.StatHealth, Delta: -c.Decrease(entity.StatHealth, outcome.Amount)})
	effect.Message = fmt.Sprintf("%s deals %d damage and loses %s", c.Name, effect.BossDamage, describe(effect))
	return effect
}

func gain(c *entity.Character, o encounter.Outcome) Effect {
	stat, ok := o.Resource.Stat()
	if !ok {
		return Effect{KeyDelta: o.Amount, Message: fmt.Sprintf("%s finds %d key(s)", c.Name, o.Amount)}
	}
	delta := c.Increase(stat, o.Amount)
	effect := Effect{Changes: []StatChange{{Stat: stat, Delta: delta}}}
	effect.Message = fmt.Sprintf("%s gains %s", c.Name, describe(effect))
	return effect
}

func lose(c *entity.Character, o encounter.Outcome) Effect {
	stat, ok := o.Resource.Stat()
	if !ok {
		return Effect{KeyDelta: -o.Amount, Message: fmt.Sprintf("%s drops %d key(s)", c.Name, o.Amount)}
	}
	delta := c.Decrease(stat, o.Amount)
	effect := Effect{Changes: []StatChange{{Stat: stat, Delta: -delta}}}
	effect.Message = fmt.Sprintf("%s loses %s", c.Name, describe(effect))
	return effect
}

// describe lists the magnitudes of the changes, e.g. "1 Health, 2 Strength".
func describe(e Effect) string {
	s := ""
	for i, ch := range e.Changes {
		if i > 0 {
			s += ", "
		}
		d := ch.Delta
		if d < 0 {
			d = -d
		}
		s += fmt.Sprintf("%d %s", d, ch.Stat)
	}
	if s == "" {
		return "nothing"
	}
	return s
}
