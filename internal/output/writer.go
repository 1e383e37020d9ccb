// Package output persists the player id table.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"nba-player-ids/internal/domain/players"
	"nba-player-ids/internal/timeutil"
)

// Writer persists the id table to a single JSON file.
type Writer struct {
	path string
	now  timeutil.Clock
}

// NewWriter constructs a writer targeting path. A nil clock uses time.Now.
func NewWriter(path string, now timeutil.Clock) *Writer {
	return &Writer{path: path, now: now}
}

// Path exposes the target file.
func (w *Writer) Path() string {
	if w == nil {
		return ""
	}
	return w.path
}

// Table wraps ids with the format version and today's date.
func (w *Writer) Table(ids map[players.Key]players.ID) players.IDTable {
	table := players.IDTable{
		Version:     players.FormatVersion,
		LastUpdated: timeutil.Today(w.now),
		Players:     make(map[players.Key]players.ID, len(ids)),
	}
	for k, v := range ids {
		table.Players[k] = v
	}
	return table
}

// Write replaces the target file with the table for ids. The previous file,
// if any, is overwritten through a rename so readers never see a partial table.
func (w *Writer) Write(ids map[players.Key]players.ID) (players.IDTable, error) {
	if w == nil || w.path == "" {
		return players.IDTable{}, fmt.Errorf("id table writer not configured")
	}
	table := w.Table(ids)
	data, err := Encode(table)
	if err != nil {
		return players.IDTable{}, fmt.Errorf("encode id table: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(w.path), 0o755); err != nil {
		return players.IDTable{}, fmt.Errorf("create output dir: %w", err)
	}
	tmp := w.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return players.IDTable{}, fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, w.path); err != nil {
		_ = os.Remove(tmp)
		return players.IDTable{}, fmt.Errorf("replace %s: %w", w.path, err)
	}
	return table, nil
}

// Encode renders the table as two-space indented JSON with keys in ascending order.
func Encode(table players.IDTable) ([]byte, error) {
	if table.Players == nil {
		table.Players = map[players.Key]players.ID{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(table); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
