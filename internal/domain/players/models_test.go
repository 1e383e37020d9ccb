package players

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestJSONTags(t *testing.T) {
	cases := []struct {
		typ   reflect.Type
		field string
		tag   string
	}{
		{reflect.TypeOf(RosterPlayer{}), "Name", "name"},
		{reflect.TypeOf(RosterPlayer{}), "ImgURL", "imgURL"},
		{reflect.TypeOf(Roster{}), "Players", "players"},
		{reflect.TypeOf(IDTable{}), "Version", "version"},
		{reflect.TypeOf(IDTable{}), "LastUpdated", "lastUpdated"},
		{reflect.TypeOf(IDTable{}), "Players", "players"},
	}
	for _, tc := range cases {
		f, ok := tc.typ.FieldByName(tc.field)
		if !ok {
			t.Fatalf("%s missing field %s", tc.typ.Name(), tc.field)
		}
		if tag := f.Tag.Get("json"); tag != tc.tag {
			t.Fatalf("%s.%s expected tag %s, got %s", tc.typ.Name(), tc.field, tc.tag, tag)
		}
	}
}

func TestRosterDecodeToleratesMissingAndNullFields(t *testing.T) {
	raw := `{"players":[{"name":null,"tid":3},{"imgURL":"https://cdn/1.png"},{"name":"A B","imgURL":null}]}`
	var roster Roster
	if err := json.Unmarshal([]byte(raw), &roster); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(roster.Players) != 3 {
		t.Fatalf("expected 3 players, got %d", len(roster.Players))
	}
	if roster.Players[0].Name != "" || roster.Players[1].Name != "" {
		t.Fatalf("expected empty names, got %+v", roster.Players)
	}
	if roster.Players[2].ImgURL != "" {
		t.Fatalf("expected empty imgURL for null, got %q", roster.Players[2].ImgURL)
	}
}

func TestRosterDecodeMatchesKeysExactly(t *testing.T) {
	raw := `{"Players":[{"name":"Ghost Player","imgURL":"https://cdn/42.png"}]}`
	var roster Roster
	if err := json.Unmarshal([]byte(raw), &roster); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(roster.Players) != 0 {
		t.Fatalf("expected no players for a differently cased key, got %+v", roster.Players)
	}
}

func TestRosterPlayerDecodeIgnoresCaseVariants(t *testing.T) {
	raw := `[
		{"NAME":"Ghost Player","IMGURL":"https://cdn/42.png"},
		{"name":"Real Guy","imgURL":"https://cdn/nophoto.jpg","imgUrl":"https://cdn/7.png"}
	]`
	var records []RosterPlayer
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if records[0] != (RosterPlayer{}) {
		t.Fatalf("expected upper-case keys to be ignored, got %+v", records[0])
	}
	if records[1].ImgURL != "https://cdn/nophoto.jpg" {
		t.Fatalf("expected imgURL to survive a later imgUrl, got %q", records[1].ImgURL)
	}
}

func TestRosterPlayerDecodeRejectsWrongType(t *testing.T) {
	var p RosterPlayer
	if err := json.Unmarshal([]byte(`{"name": 42}`), &p); err == nil {
		t.Fatal("expected error for non-string name")
	}
}

func TestRosterDecodeNullDocument(t *testing.T) {
	roster := Roster{Players: []RosterPlayer{{Name: "stale"}}}
	if err := json.Unmarshal([]byte(`null`), &roster); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(roster.Players) != 0 {
		t.Fatalf("expected null document to clear players, got %+v", roster.Players)
	}
}
