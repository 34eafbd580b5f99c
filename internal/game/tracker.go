package game

// TurnTracker is a saturating counter that gates the boss phase.
type TurnTracker struct {
	value     int
	max       int
	increment int
}

// NewTurnTracker creates a tracker at zero.
func NewTurnTracker(max, increment int) *TurnTracker {
	return &TurnTracker{max: max, increment: increment}
}

// Advance moves the tracker by its increment and reports whether it has
// reached the cap.
func (t *TurnTracker) Advance() bool {
	if t.value+t.increment < t.max {
		t.value += t.increment
		return false
	}
	t.value = t.max
	return true
}

// Value returns the current position.
func (t *TurnTracker) Value() int { return t.value }

// Max returns the cap.
func (t *TurnTracker) Max() int { return t.max }

// Saturated reports whether the cap has been reached.
func (t *TurnTracker) Saturated() bool { return t.value >= t.max }
