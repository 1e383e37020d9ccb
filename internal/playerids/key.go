// Package playerids derives the player-key to headshot-id table from roster records.
package playerids

import (
	"strings"

	"nba-player-ids/internal/domain/players"
)

// NameToKey lowercases a display name and joins its words with underscores:
// "Gary Payton II" becomes "gary_payton_ii". Punctuation is kept, so "Jr." stays
// "jr.". Blank names yield "".
func NameToKey(name string) players.Key {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return ""
	}
	first := strings.ToLower(parts[0])
	if len(parts) == 1 {
		return first
	}
	rest := make([]string, 0, len(parts)-1)
	for _, p := range parts[1:] {
		rest = append(rest, strings.ToLower(p))
	}
	return first + "_" + strings.Join(rest, "_")
}
