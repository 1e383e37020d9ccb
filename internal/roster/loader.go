// Package roster locates and decodes BasketBall-GM roster exports.
package roster

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"nba-player-ids/internal/domain/players"
)

// ResolvePath picks the roster file to read. An explicit path always wins;
// otherwise the first existing candidate is used, falling back to the first
// candidate so a missing file can be reported by name.
func ResolvePath(explicit string, candidates []string) string {
	if explicit != "" {
		return explicit
	}
	for _, c := range candidates {
		if exists(c) {
			return c
		}
	}
	if len(candidates) > 0 {
		return candidates[0]
	}
	return ""
}

// Load reads and decodes the roster at path. Players is never nil on success.
func Load(path string) (players.Roster, error) {
	if path == "" || !exists(path) {
		return players.Roster{}, &NotFoundError{Path: path}
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return players.Roster{}, &NotFoundError{Path: path}
		}
		return players.Roster{}, fmt.Errorf("open roster %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return players.Roster{}, fmt.Errorf("read roster %s: %w", path, err)
	}

	var payload players.Roster
	if err := json.Unmarshal(data, &payload); err != nil {
		return players.Roster{}, &ParseError{Path: path, Err: err}
	}
	if payload.Players == nil {
		payload.Players = []players.RosterPlayer{}
	}
	return payload, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
