package entity

// DefaultBossHealth is the boss health pool when none is configured.
const DefaultBossHealth = 5

// Boss is the final opponent. It stays off the board until the turn
// tracker saturates.
type Boss struct {
	Name      string
	MaxHealth int

	health  int
	onBoard bool
}

// NewBoss creates an inactive boss.
func NewBoss(name string, maxHealth int) *Boss {
	if maxHealth <= 0 {
		maxHealth = DefaultBossHealth
	}
	return &Boss{Name: name, MaxHealth: maxHealth}
}

// Activate fills the health pool and puts the boss on the board.
func (b *Boss) Activate() {
	b.health = b.MaxHealth
	b.onBoard = true
}

// Deactivate removes the boss from the board.
func (b *Boss) Deactivate() {
	b.onBoard = false
}

// IsOnBoard reports whether the boss fight has started.
func (b *Boss) IsOnBoard() bool { return b.onBoard }

// GetHealth returns the current health.
func (b *Boss) GetHealth() int { return b.health }

// IsAlive reports whether the boss has health left.
func (b *Boss) IsAlive() bool { return b.health > 0 }

// TakeDamage reduces health, clamped at zero, and returns the damage dealt.
func (b *Boss) TakeDamage(amount int) int {
	if amount <= 0 || !b.onBoard {
		return 0
	}
	actual := amount
	if actual > b.health {
		actual = b.health
	}
	b.health -= actual
	return actual
}
