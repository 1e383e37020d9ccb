package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrOutcome = "outcome"
	AttrResult  = "result"
)

// Run results reported on roster_runs_total.
const (
	ResultOK         = "ok"
	ResultNotFound   = "not_found"
	ResultParseError = "parse_error"
	ResultError      = "error"
)
