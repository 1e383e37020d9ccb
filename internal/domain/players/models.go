package players

import "encoding/json"

// FormatVersion is stamped on every id table the converter writes.
const FormatVersion = "1.0.0"

// Key is the normalized lookup key derived from a display name, e.g. "gary_payton_ii".
type Key = string

// ID is the NBA.com headshot identifier.
type ID = uint64

// RosterPlayer is one record of a BasketBall-GM roster export.
// Only the fields the converter reads are decoded; null or missing values stay empty.
type RosterPlayer struct {
	Name   string `json:"name"`
	ImgURL string `json:"imgURL"`
}

// UnmarshalJSON matches "name" and "imgURL" exactly; encoding/json would
// otherwise bind case variants such as "imgUrl" to the same fields.
func (p *RosterPlayer) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*p = RosterPlayer{}
	if err := decodeField(fields, "name", &p.Name); err != nil {
		return err
	}
	return decodeField(fields, "imgURL", &p.ImgURL)
}

// Roster is the top-level roster export document.
type Roster struct {
	Players []RosterPlayer `json:"players"`
}

// UnmarshalJSON reads only the exact "players" key.
func (r *Roster) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*r = Roster{}
	return decodeField(fields, "players", &r.Players)
}

func decodeField(fields map[string]json.RawMessage, key string, dst any) error {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	return json.Unmarshal(raw, dst)
}

// IDTable is the persisted player id lookup document.
// encoding/json writes map keys in ascending order, which keeps the file diff-friendly.
type IDTable struct {
	Version     string     `json:"version"`
	LastUpdated string     `json:"lastUpdated"`
	Players     map[Key]ID `json:"players"`
}
