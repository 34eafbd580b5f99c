package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseColor converts "#RRGGBB", "RRGGBB" or a tcell color name such as
// "crimson" to a tcell.Color.
func ParseColor(s string) (tcell.Color, error) {
	s = strings.TrimSpace(s)
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 6 {
		if v, err := strconv.ParseUint(hex, 16, 32); err == nil {
			return tcell.NewHexColor(int32(v)), nil
		}
	}
	if c, ok := tcell.ColorNames[strings.ToLower(s)]; ok {
		return c, nil
	}
	return tcell.ColorDefault, fmt.Errorf("invalid color %q", s)
}

// ColorOr parses s, returning fallback when it is empty or invalid.
func ColorOr(s string, fallback tcell.Color) tcell.Color {
	if s == "" {
		return fallback
	}
	c, err := ParseColor(s)
	if err != nil {
		return fallback
	}
	return c
}
