package entity

// TeamSize is the number of characters in a confirmed team.
const TeamSize = 4

// Team holds the characters picked from the roster.
// Before confirmation members can be added and removed freely; after
// confirmation only death removes a member.
type Team struct {
	picked    []*Character
	slots     [TeamSize]*Character
	confirmed bool
	living    int
}

// NewTeam creates an empty team with selection open.
func NewTeam() *Team {
	return &Team{picked: make([]*Character, 0, TeamSize)}
}

// Add picks a roster character. It returns true when the addition completes
// the team. Additions to a full or confirmed team are ignored.
func (t *Team) Add(c *Character) bool {
	if c == nil || t.confirmed || t.IsFull() || c.InTeam || !c.IsAlive() {
		return false
	}
	t.picked = append(t.picked, c)
	c.InTeam = true
	return t.IsFull()
}

// Remove drops an unconfirmed member. It returns false if the character
// was not picked or the team is already confirmed.
func (t *Team) Remove(c *Character) bool {
	if c == nil || t.confirmed {
		return false
	}
	for i, m := range t.picked {
		if m == c {
			t.picked = append(t.picked[:i], t.picked[i+1:]...)
			c.InTeam = false
			return true
		}
	}
	return false
}

// Confirm locks the picked characters into slots 0..3.
func (t *Team) Confirm() bool {
	if t.confirmed || !t.IsFull() {
		return false
	}
	for i, c := range t.picked {
		t.slots[i] = c
		c.TeamSlot = i
		c.Confirmed = true
		c.setDeathHook(t.removeDead)
	}
	t.living = len(t.picked)
	t.confirmed = true
	return true
}

// removeDead clears the slot of a dead member. TeamSlot is kept.
func (t *Team) removeDead(c *Character) {
	if c.TeamSlot < 0 || c.TeamSlot >= TeamSize || t.slots[c.TeamSlot] != c {
		return
	}
	t.slots[c.TeamSlot] = nil
	t.living--
}

// SelectionComplete reports whether four characters have been picked.
func (t *Team) SelectionComplete() bool { return t.IsFull() }

// IsFull reports whether the team has TeamSize picks.
func (t *Team) IsFull() bool { return len(t.picked) == TeamSize }

// IsConfirmed reports whether the team has been locked in.
func (t *Team) IsConfirmed() bool { return t.confirmed }

// Count returns the number of picked characters before confirmation, or the
// number of living members after it.
func (t *Team) Count() int {
	if t.confirmed {
		return t.living
	}
	return len(t.picked)
}

// IsAlive reports whether at least one confirmed member is alive.
func (t *Team) IsAlive() bool { return t.confirmed && t.living > 0 }

// Slot returns the member in a slot, or nil if empty.
func (t *Team) Slot(i int) *Character {
	if i < 0 || i >= TeamSize {
		return nil
	}
	return t.slots[i]
}

// Members returns the picked characters in pick order, including dead ones.
func (t *Team) Members() []*Character {
	return t.picked
}

// Contains reports whether c is a living confirmed member.
func (t *Team) Contains(c *Character) bool {
	if c == nil || !t.confirmed {
		return false
	}
	for _, m := range t.slots {
		if m == c {
			return true
		}
	}
	return false
}
