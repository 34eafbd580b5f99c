package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/sorcerer/internal/encounter"
	"github.com/samdwyer/sorcerer/internal/entity"
	"github.com/samdwyer/sorcerer/internal/game"
	"github.com/samdwyer/sorcerer/internal/gamedata"
)

var (
	styleText     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim      = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleTitle    = tcell.StyleDefault.Foreground(tcell.ColorPurple).Bold(true)
	styleSelected = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleResult   = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleButton   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	styleBossBar  = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the current view of g.
func (r *Renderer) Render(v *View, g *game.Game, l Layout) {
	r.screen.Clear()

	r.drawHeader(v, l)
	if v.Board {
		r.drawTeam(g, l)
		r.drawSession(g.Session(), l)
		if v.BossPanel {
			r.drawBoss(v, g.Boss(), l.BossPanel)
		}
		r.drawText(margin, l.Instruction, v.Instruction, styleText)
		r.drawText(margin, l.Result, v.Result, styleResult)
	} else {
		r.drawText(margin, l.RosterText, v.RosterText, styleText)
		for i, c := range g.Roster() {
			if i < len(l.Roster) {
				r.drawCharacter(c, l.Roster[i], c.InTeam)
			}
		}
	}
	if v.Over {
		msg, style := "DEFEAT: the team has fallen", styleBossBar.Bold(true)
		if v.PlayerWon {
			msg, style = fmt.Sprintf("VICTORY: %s is defeated", v.BossName), styleSelected
		}
		r.drawText(margin, l.Instruction, msg, style)
	}
	r.drawButtons(v, l)

	r.screen.Show()
}

func (r *Renderer) drawHeader(v *View, l Layout) {
	r.drawText(margin, l.Header, "SORCERER", styleTitle)

	x := margin + 10
	x = r.drawText(x, l.Header, "Turn ", styleText)
	for i := 0; i < v.TrackerMax; i++ {
		ch, style := '·', styleDim
		if i < v.Tracker {
			ch, style = '■', styleSelected
		}
		r.screen.SetContent(x, l.Header, ch, style)
		x++
	}
	x = r.drawText(x+1, l.Header, fmt.Sprintf("%d/%d", v.Tracker, v.TrackerMax), styleText)
	r.drawText(x+3, l.Header, fmt.Sprintf("Keys: %d", v.Keys), styleText)
}

func (r *Renderer) drawTeam(g *game.Game, l Layout) {
	if !g.Team().IsConfirmed() {
		return
	}
	for i, c := range g.Team().Members() {
		if i >= len(l.Team) {
			break
		}
		r.drawCharacter(c, l.Team[i], c.Selected)
	}
}

// drawCharacter draws a character card. Highlighted cards get a bold yellow
// border; fallen characters are dimmed.
func (r *Renderer) drawCharacter(c *entity.Character, rect Rect, highlight bool) {
	border := tcell.StyleDefault.Foreground(gamedata.ColorOr(c.Color, tcell.ColorWhite))
	text := styleText
	switch {
	case !c.IsAlive():
		border, text = styleDim, styleDim
	case highlight:
		border = styleSelected
	}
	r.drawBox(rect, border)

	name := c.Name
	if !c.IsAlive() {
		name += " (fallen)"
	}
	r.drawText(rect.X+2, rect.Y+1, clip(name, rect.Width-3), text.Bold(true))
	for i, stat := range entity.AllStats {
		line := fmt.Sprintf("%-9s %2d", stat.String(), c.Get(stat))
		r.drawText(rect.X+2, rect.Y+2+i, clip(line, rect.Width-3), text)
	}
}

func (r *Renderer) drawSession(s game.Session, l Layout) {
	for i, card := range s.Cards {
		if i >= len(l.Cards) {
			break
		}
		r.drawCard(card, l.Cards[i], s.Kind == encounter.KindItem && i == s.Chosen)
	}
}

func (r *Renderer) drawCard(card *encounter.Card, rect Rect, chosen bool) {
	border := styleText
	if chosen {
		border = styleSelected
	}
	r.drawBox(rect, border)
	r.drawText(rect.X+2, rect.Y+1, clip(card.Name, rect.Width-3), styleText.Bold(true))
	r.drawText(rect.X+2, rect.Y+2, clip(card.Kind.String(), rect.Width-3), styleDim)

	var lines []string
	if card.Kind == encounter.KindItem {
		lines = append(lines, "+"+card.Win.String())
	} else {
		lines = append(lines, "Win "+rollRange(card.WinRolls)+": "+card.Win.String())
		if card.Kind == encounter.KindBoss {
			lines = append(lines, "Big "+rollRange(card.BigWinRolls)+": "+card.BigWin.String())
		}
		lines = append(lines, "Loss: -"+card.Loss.String())
	}
	for i, line := range lines {
		r.drawText(rect.X+2, rect.Y+3+i, clip(line, rect.Width-3), styleText)
	}
}

func (r *Renderer) drawBoss(v *View, boss *entity.Boss, rect Rect) {
	r.drawBox(rect, styleBossBar)
	r.drawText(rect.X+2, rect.Y+1, clip(v.BossName, rect.Width-3), styleTitle)

	x := rect.X + 2
	for i := 0; i < boss.MaxHealth; i++ {
		ch, style := '░', styleDim
		if i < v.BossHealth {
			ch, style = '█', styleBossBar
		}
		r.screen.SetContent(x+i, rect.Y+3, ch, style)
	}
	r.drawText(rect.X+2, rect.Y+5, clip(v.BossInstruction, rect.Width-3), styleText)
}

func (r *Renderer) drawButtons(v *View, l Layout) {
	for _, b := range l.Buttons {
		style := styleDim
		if v.Enabled[b.Button] {
			style = styleButton
		}
		r.drawText(b.Rect.X, b.Rect.Y, "[ "+b.Button.String()+" ]", style)
	}
}

func (r *Renderer) drawBox(rect Rect, style tcell.Style) {
	right, bottom := rect.X+rect.Width-1, rect.Y+rect.Height-1
	for x := rect.X + 1; x < right; x++ {
		r.screen.SetContent(x, rect.Y, tcell.RuneHLine, style)
		r.screen.SetContent(x, bottom, tcell.RuneHLine, style)
	}
	for y := rect.Y + 1; y < bottom; y++ {
		r.screen.SetContent(rect.X, y, tcell.RuneVLine, style)
		r.screen.SetContent(right, y, tcell.RuneVLine, style)
	}
	r.screen.SetContent(rect.X, rect.Y, tcell.RuneULCorner, style)
	r.screen.SetContent(right, rect.Y, tcell.RuneURCorner, style)
	r.screen.SetContent(rect.X, bottom, tcell.RuneLLCorner, style)
	r.screen.SetContent(right, bottom, tcell.RuneLRCorner, style)
}

// drawText writes msg starting at (x, y) and returns the column after it.
func (r *Renderer) drawText(x, y int, msg string, style tcell.Style) int {
	for _, ch := range msg {
		r.screen.SetContent(x, y, ch, style)
		x++
	}
	return x
}

func clip(s string, width int) string {
	runes := []rune(s)
	if width <= 0 {
		return ""
	}
	if len(runes) > width {
		return string(runes[:width])
	}
	return s
}

// rollRange formats a roll set, collapsing a contiguous run to "7-12".
func rollRange(rolls []int) string {
	if len(rolls) == 0 {
		return "-"
	}
	contiguous := true
	for i := 1; i < len(rolls); i++ {
		if rolls[i] != rolls[i-1]+1 {
			contiguous = false
			break
		}
	}
	if contiguous && len(rolls) > 1 {
		return fmt.Sprintf("%d-%d", rolls[0], rolls[len(rolls)-1])
	}
	parts := make([]string, len(rolls))
	for i, v := range rolls {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
