package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"nba-player-ids/internal/domain/players"
)

// SampleRoster returns a small roster covering the kept and skipped paths.
func SampleRoster() players.Roster {
	return players.Roster{Players: []players.RosterPlayer{
		{Name: "LeBron James", ImgURL: "https://cdn.nba.com/headshots/nba/latest/260x190/2544.png"},
		{Name: "Gary Payton II", ImgURL: "https://cdn.nba.com/headshots/nba/latest/260x190/1627780.png"},
		{Name: "No Photo", ImgURL: "https://cdn/nophoto.jpg"},
		{Name: ""},
	}}
}

// WriteFile writes body to dir/name and returns the path.
func WriteFile(t testing.TB, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WriteRoster marshals roster into dir/name and returns the path.
func WriteRoster(t testing.TB, dir, name string, roster players.Roster) string {
	t.Helper()
	data, err := json.Marshal(roster)
	if err != nil {
		t.Fatalf("marshal roster: %v", err)
	}
	return WriteFile(t, dir, name, string(data))
}
