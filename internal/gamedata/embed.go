// Package gamedata provides the embedded JSON definitions for enemies, areas,
// maze profiles and NPCs, plus helpers for loading them.
package gamedata

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
