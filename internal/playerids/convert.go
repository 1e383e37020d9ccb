package playerids

import (
	"nba-player-ids/internal/domain/players"
)

// Outcome classifies what happened to a single roster record.
type Outcome int

const (
	// OutcomeKept means the record was added to the table under a new key.
	OutcomeKept Outcome = iota
	// OutcomeReplaced means the record was kept and overwrote an earlier record with the same key.
	OutcomeReplaced
	// OutcomeMissingName means the record had no name and was dropped.
	OutcomeMissingName
	// OutcomeMissingHeadshot means no id could be read from imgURL. Only these count as skipped.
	OutcomeMissingHeadshot
	// OutcomeEmptyKey means the name was whitespace only and was dropped.
	OutcomeEmptyKey
)

func (o Outcome) String() string {
	switch o {
	case OutcomeKept:
		return "kept"
	case OutcomeReplaced:
		return "replaced"
	case OutcomeMissingName:
		return "missing_name"
	case OutcomeMissingHeadshot:
		return "missing_headshot"
	case OutcomeEmptyKey:
		return "empty_key"
	default:
		return "unknown"
	}
}

// Included reports whether the record made it into the table.
func (o Outcome) Included() bool {
	return o == OutcomeKept || o == OutcomeReplaced
}

// Result records the classification of one roster record.
type Result struct {
	Index   int
	Name    string
	Key     players.Key
	ID      players.ID
	Outcome Outcome
}

// Conversion is the outcome of a full pass over a roster.
type Conversion struct {
	Players map[players.Key]players.ID
	// Skipped counts records dropped for lacking a recognizable headshot URL.
	Skipped int
	Results []Result
}

// Count returns how many outcomes of kind o were recorded.
func (c Conversion) Count(o Outcome) int {
	n := 0
	for _, r := range c.Results {
		if r.Outcome == o {
			n++
		}
	}
	return n
}

// Convert walks records in order and builds the key to id table. Later records
// overwrite earlier ones that normalize to the same key.
func Convert(records []players.RosterPlayer) Conversion {
	conv := Conversion{
		Players: make(map[players.Key]players.ID, len(records)),
		Results: make([]Result, 0, len(records)),
	}
	for i, rec := range records {
		res := classify(i, rec)
		if _, dup := conv.Players[res.Key]; dup && res.Outcome == OutcomeKept {
			res.Outcome = OutcomeReplaced
		}
		if res.Outcome.Included() {
			conv.Players[res.Key] = res.ID
		}
		if res.Outcome == OutcomeMissingHeadshot {
			conv.Skipped++
		}
		conv.Results = append(conv.Results, res)
	}
	return conv
}

func classify(index int, rec players.RosterPlayer) Result {
	res := Result{Index: index, Name: rec.Name}
	if rec.Name == "" {
		res.Outcome = OutcomeMissingName
		return res
	}
	id, ok := IDFromImageURL(rec.ImgURL)
	if !ok {
		res.Outcome = OutcomeMissingHeadshot
		return res
	}
	res.ID = id
	res.Key = NameToKey(rec.Name)
	if res.Key == "" {
		res.Outcome = OutcomeEmptyKey
		return res
	}
	res.Outcome = OutcomeKept
	return res
}
