// Package encounter provides encounter cards and the decks they are drawn from.
package encounter

import (
	"fmt"
	"strings"

	"github.com/samdwyer/sorcerer/internal/entity"
)

// Kind is the type of an encounter card.
type Kind int

const (
	KindEnemy Kind = iota
	KindItem
	KindTrap
	KindUnlockable
	KindBoss
)

var kindNames = map[Kind]string{
	KindEnemy:      "Enemy",
	KindItem:       "Item",
	KindTrap:       "Trap",
	KindUnlockable: "Unlockable",
	KindBoss:       "Boss",
}

// String returns the kind name.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}

// ParseKind converts a kind name (case-insensitive) to a Kind.
func ParseKind(name string) (Kind, error) {
	for k, s := range kindNames {
		if strings.EqualFold(name, s) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown encounter kind %q", name)
}

// Resource is what an outcome changes: one of the character stats, or keys.
type Resource int

const (
	ResourceHealth Resource = iota
	ResourceStrength
	ResourceAccuracy
	ResourceStealth
	ResourceKey
)

// String returns the resource name.
func (r Resource) String() string {
	if stat, ok := r.Stat(); ok {
		return stat.String()
	}
	if r == ResourceKey {
		return "Key"
	}
	return "Unknown"
}

// Stat maps the resource to a character stat. Keys are not a stat.
func (r Resource) Stat() (entity.Stat, bool) {
	switch r {
	case ResourceHealth:
		return entity.StatHealth, true
	case ResourceStrength:
		return entity.StatStrength, true
	case ResourceAccuracy:
		return entity.StatAccuracy, true
	case ResourceStealth:
		return entity.StatStealth, true
	default:
		return 0, false
	}
}

// ParseResource converts a resource name (case-insensitive) to a Resource.
func ParseResource(name string) (Resource, error) {
	if strings.EqualFold(name, "key") {
		return ResourceKey, nil
	}
	stat, err := entity.ParseStat(name)
	if err != nil {
		return 0, fmt.Errorf("unknown resource %q", name)
	}
	return Resource(stat), nil
}

// Outcome is a change to a stat or resource.
type Outcome struct {
	Resource Resource
	Amount   int // 1..2
}

// String returns a short description such as "Health 2".
func (o Outcome) String() string {
	return fmt.Sprintf("%s %d", o.Resource, o.Amount)
}

// Card is an immutable encounter definition.
type Card struct {
	ID   string
	Name string
	Kind Kind

	WinRolls []int
	Win      Outcome
	Loss     Outcome

	// Boss cards only.
	BigWinRolls []int
	BigWin      Outcome
}

// IsWin reports whether a roll total is in the win set.
func (c *Card) IsWin(total int) bool {
	return contains(c.WinRolls, total)
}

// IsBigWin reports whether a roll total is in the big-win set.
func (c *Card) IsBigWin(total int) bool {
	return contains(c.BigWinRolls, total)
}

// Result returns the outcome for a win or a loss.
func (c *Card) Result(isWin bool) Outcome {
	if isWin {
		return c.Win
	}
	return c.Loss
}

// Validate checks the authored values.
func (c *Card) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("card %q: missing id", c.Name)
	}
	if len(c.WinRolls) == 0 && c.Kind != KindItem {
		return fmt.Errorf("card %s: empty win rolls", c.ID)
	}
	outcomes := []Outcome{c.Win}
	if c.Kind != KindItem {
		outcomes = append(outcomes, c.Loss)
	}
	if c.Kind == KindBoss {
		outcomes = append(outcomes, c.BigWin)
	}
	for _, o := range outcomes {
		if o.Amount < 1 || o.Amount > 2 {
			return fmt.Errorf("card %s: outcome amount %d out of range 1..2", c.ID, o.Amount)
		}
	}
	return nil
}

func contains(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
