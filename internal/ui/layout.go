package ui

import "github.com/samdwyer/sorcerer/internal/game"

// Card and panel sizes in cells.
const (
	CardWidth  = 18
	CardHeight = 7
	cardGap    = 2
	margin     = 2
)

// Rect is a rectangular region of the screen.
type Rect struct {
	X, Y          int // Top-left corner position
	Width, Height int
}

// Contains returns true if the given point is inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Region is the kind of thing under the pointer.
type Region int

const (
	RegionNone Region = iota
	RegionRoster
	RegionTeam
	RegionCard
	RegionButton
)

// Target is the result of a hit test.
type Target struct {
	Region Region
	Index  int // Roster index, team slot or card index
	Button game.Button
}

// ButtonRect places a button on screen.
type ButtonRect struct {
	Button game.Button
	Rect   Rect
}

// Layout positions every element for one screen size.
type Layout struct {
	Width, Height int

	Header      int // Turn tracker and keys
	RosterText  int
	Roster      []Rect
	Team        [4]Rect
	Cards       [2]Rect
	BossPanel   Rect
	Instruction int
	Result      int
	Buttons     []ButtonRect
}

// NewLayout computes the layout for a screen of the given size. Roster
// cards wrap into as many rows as needed.
func NewLayout(width, height, rosterSize int, buttons []game.Button) Layout {
	l := Layout{Width: width, Height: height, Header: 0, RosterText: 1}

	perRow := (width - margin) / (CardWidth + cardGap)
	if perRow < 1 {
		perRow = 1
	}
	for i := 0; i < rosterSize; i++ {
		row, col := i/perRow, i%perRow
		l.Roster = append(l.Roster, Rect{
			X:      margin + col*(CardWidth+cardGap),
			Y:      3 + row*(CardHeight+1),
			Width:  CardWidth,
			Height: CardHeight,
		})
	}

	for i := range l.Team {
		l.Team[i] = Rect{X: margin + i*(CardWidth+cardGap), Y: 2, Width: CardWidth, Height: CardHeight}
	}
	cardsY := 2 + CardHeight + 2
	for i := range l.Cards {
		l.Cards[i] = Rect{X: margin + i*(CardWidth+cardGap), Y: cardsY, Width: CardWidth, Height: CardHeight}
	}
	l.BossPanel = Rect{X: margin + 2*(CardWidth+cardGap), Y: cardsY, Width: 2*CardWidth + cardGap, Height: CardHeight}

	l.Instruction = cardsY + CardHeight + 1
	l.Result = l.Instruction + 1

	x, y := margin, height-2
	if y <= l.Result {
		y = l.Result + 2
	}
	for _, b := range buttons {
		w := len(b.String()) + 4
		l.Buttons = append(l.Buttons, ButtonRect{Button: b, Rect: Rect{X: x, Y: y, Width: w, Height: 1}})
		x += w + cardGap
	}
	return l
}

// HitTest finds what is under (x, y). Roster cards are only live before the
// board is shown; team slots and encounter cards only after.
func (l Layout) HitTest(x, y int, board bool) Target {
	for _, b := range l.Buttons {
		if b.Rect.Contains(x, y) {
			return Target{Region: RegionButton, Button: b.Button}
		}
	}
	if !board {
		for i, r := range l.Roster {
			if r.Contains(x, y) {
				return Target{Region: RegionRoster, Index: i}
			}
		}
		return Target{}
	}
	for i, r := range l.Team {
		if r.Contains(x, y) {
			return Target{Region: RegionTeam, Index: i}
		}
	}
	for i, r := range l.Cards {
		if r.Contains(x, y) {
			return Target{Region: RegionCard, Index: i}
		}
	}
	return Target{}
}
