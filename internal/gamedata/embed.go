// Package gamedata holds the built-in roster and card decks and loads
// authored replacements for them.
package gamedata

import "embed"

// dataFS embeds the roster and deck files at build time.
//
//go:embed *.json
var dataFS embed.FS
