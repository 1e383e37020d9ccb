package metrics

import (
	"errors"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ErrTextfileUnavailable is returned when a textfile is requested but no
// Prometheus registry backs the recorder.
var ErrTextfileUnavailable = errors.New("metrics textfile requires telemetry to be enabled")

type runStats struct {
	runs         int
	failures     int
	written      int
	outcomes     map[string]int
	lastDuration time.Duration
	lastSuccess  time.Time
}

// Recorder captures in-memory counters for converter runs and forwards them
// to OpenTelemetry instruments when telemetry is enabled.
type Recorder struct {
	mu       sync.Mutex
	stats    runStats
	otel     *otelInstruments
	gatherer prometheus.Gatherer
}

func NewRecorder() *Recorder {
	return newRecorder(nil, nil)
}

func newRecorder(otel *otelInstruments, gatherer prometheus.Gatherer) *Recorder {
	return &Recorder{
		stats:    runStats{outcomes: make(map[string]int)},
		otel:     otel,
		gatherer: gatherer,
	}
}

// RecordOutcome counts one roster record classified as outcome.
func (r *Recorder) RecordOutcome(outcome string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.stats.outcomes[outcome]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordOutcome(outcome)
	}
}

// RecordRun tracks a finished converter run. written is the number of players
// persisted and only matters for successful runs.
func (r *Recorder) RecordRun(duration time.Duration, result string, written int) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.stats.runs++
	r.stats.lastDuration = duration
	if result == ResultOK {
		r.stats.written += written
		r.stats.lastSuccess = time.Now()
	} else {
		r.stats.failures++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRun(duration, result, written)
	}
}

// Snapshot is a copy of the current run stats.
type Snapshot struct {
	Runs         int
	Failures     int
	Written      int
	Outcomes     map[string]int
	LastDuration time.Duration
	LastSuccess  time.Time
}

func (r *Recorder) Snapshot() Snapshot {
	if r == nil {
		return Snapshot{Outcomes: map[string]int{}}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	outcomes := make(map[string]int, len(r.stats.outcomes))
	for k, v := range r.stats.outcomes {
		outcomes[k] = v
	}
	return Snapshot{
		Runs:         r.stats.runs,
		Failures:     r.stats.failures,
		Written:      r.stats.written,
		Outcomes:     outcomes,
		LastDuration: r.stats.lastDuration,
		LastSuccess:  r.stats.lastSuccess,
	}
}

// Outcome returns how many records were classified as outcome.
func (r *Recorder) Outcome(outcome string) int {
	return r.Snapshot().Outcomes[outcome]
}

// WriteTextfile dumps the Prometheus registry in text exposition format for
// the node_exporter textfile collector. The file is replaced atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil || r.gatherer == nil {
		return ErrTextfileUnavailable
	}
	return prometheus.WriteToTextfile(path, r.gatherer)
}

func (r *Recorder) lastSuccessUnix() (float64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stats.lastSuccess.IsZero() {
		return 0, false
	}
	return float64(r.stats.lastSuccess.UnixNano()) / 1e9, true
}
