package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"pgregory.net/rapid"
)

func fixedClock() time.Time {
	return time.Date(2025, 10, 21, 9, 30, 0, 0, time.Local)
}

func TestWriterWritesTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nba_player_ids.json")
	w := NewWriter(path, fixedClock)

	table, err := w.Write(map[string]uint64{"nene": 1629, "lebron_james": 2544})
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if table.Version != "1.0.0" || table.LastUpdated != "2025-10-21" {
		t.Fatalf("unexpected metadata %+v", table)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected output file, got %v", err)
	}
	want := `{
  "version": "1.0.0",
  "lastUpdated": "2025-10-21",
  "players": {
    "lebron_james": 2544,
    "nene": 1629
  }
}
`
	if string(data) != want {
		t.Fatalf("unexpected output:\n%s", data)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("expected temp file to be renamed away, got %v", err)
	}
}

func TestWriterEmptyTableWritesObject(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if _, err := NewWriter(path, fixedClock).Write(nil); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, _ := os.ReadFile(path)

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	players, ok := decoded["players"].(map[string]any)
	if !ok || len(players) != 0 {
		t.Fatalf("expected empty players object, got %v", decoded["players"])
	}
}

func TestWriterOverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := os.WriteFile(path, []byte("stale content that is longer than the new table"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := NewWriter(path, fixedClock).Write(map[string]uint64{"a": 1}); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "stale") {
		t.Fatalf("expected file to be replaced, got %s", data)
	}
}

func TestWriterCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "out.json")
	if _, err := NewWriter(path, fixedClock).Write(map[string]uint64{"a": 1}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected output in nested dir, got %v", err)
	}
}

func TestWriterIsByteStable(t *testing.T) {
	dir := t.TempDir()
	ids := map[string]uint64{"c": 3, "a": 1, "b": 2}

	first := filepath.Join(dir, "one.json")
	second := filepath.Join(dir, "two.json")
	if _, err := NewWriter(first, fixedClock).Write(ids); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := NewWriter(second, fixedClock).Write(ids); err != nil {
		t.Fatalf("write: %v", err)
	}
	a, _ := os.ReadFile(first)
	b, _ := os.ReadFile(second)
	if !bytes.Equal(a, b) {
		t.Fatalf("expected identical output, got\n%s\nvs\n%s", a, b)
	}
}

func TestWriterNotConfigured(t *testing.T) {
	var w *Writer
	if _, err := w.Write(nil); err == nil {
		t.Fatal("expected error from nil writer")
	}
	if w.Path() != "" {
		t.Fatal("expected empty path from nil writer")
	}
	if _, err := NewWriter("", nil).Write(nil); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestWriterFailsWhenTargetIsDirectory(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.json")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(target, "keep"), []byte("x"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := NewWriter(target, fixedClock).Write(map[string]uint64{"a": 1}); err == nil {
		t.Fatal("expected rename over a non-empty directory to fail")
	}
	if _, err := os.Stat(target + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("expected temp file cleanup, got %v", err)
	}
}

func TestEncodeDoesNotEscapeHTML(t *testing.T) {
	data, err := Encode(NewWriter("x", fixedClock).Table(map[string]uint64{"a&b<c>": 1}))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.Contains(string(data), `"a&b<c>": 1`) {
		t.Fatalf("expected raw key, got %s", data)
	}
}

func TestEncodeKeysAscending(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		ids := rapid.MapOf(rapid.StringMatching(`[a-z_.]{1,12}`), rapid.Uint64()).Draw(rt, "ids")
		data, err := Encode(NewWriter("x", fixedClock).Table(ids))
		if err != nil {
			rt.Fatalf("encode: %v", err)
		}

		dec := json.NewDecoder(bytes.NewReader(data))
		var keys []string
		depth := 0
		inPlayers := false
		for {
			tok, err := dec.Token()
			if err != nil {
				break
			}
			switch v := tok.(type) {
			case json.Delim:
				if v == '{' {
					depth++
				} else if v == '}' {
					depth--
					inPlayers = false
				}
			case string:
				if depth == 1 && v == "players" {
					inPlayers = true
				} else if depth == 2 && inPlayers {
					keys = append(keys, v)
				}
			}
		}

		if len(keys) != len(ids) {
			rt.Fatalf("expected %d keys, got %d", len(ids), len(keys))
		}
		if !sort.StringsAreSorted(keys) {
			rt.Fatalf("expected ascending keys, got %v", keys)
		}
		for i := 1; i < len(keys); i++ {
			if keys[i-1] == keys[i] {
				rt.Fatalf("duplicate key %s", keys[i])
			}
		}
	})
}
