package defs

import "embed"

// dataFS embeds the default definitions shipped with the game.
//
//go:embed *.json
var dataFS embed.FS
