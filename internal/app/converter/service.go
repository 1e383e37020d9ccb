// Package converter runs the roster to player id table conversion end to end.
package converter

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"nba-player-ids/internal/domain/players"
	"nba-player-ids/internal/logging"
	"nba-player-ids/internal/metrics"
	"nba-player-ids/internal/playerids"
	"nba-player-ids/internal/roster"
)

// TableWriter persists the finished id table.
type TableWriter interface {
	Write(ids map[players.Key]players.ID) (players.IDTable, error)
	Path() string
}

// Summary describes a completed run.
type Summary struct {
	RosterPath string
	OutputPath string
	Records    int
	Written    int
	Skipped    int
	Replaced   int
	Table      players.IDTable
}

// String renders the one-line run summary.
func (s Summary) String() string {
	return fmt.Sprintf("Wrote %d players to %s (skipped %d without NBA headshot URL)", s.Written, s.OutputPath, s.Skipped)
}

// Service loads a roster, converts it and writes the id table.
type Service struct {
	writer     TableWriter
	candidates []string
	logger     *slog.Logger
	metrics    *metrics.Recorder
	now        func() time.Time
}

// NewService constructs a Service. candidates are the default roster
// locations tried when Run gets no explicit path.
func NewService(writer TableWriter, candidates []string, logger *slog.Logger, rec *metrics.Recorder) *Service {
	return &Service{
		writer:     writer,
		candidates: candidates,
		logger:     logger,
		metrics:    rec,
		now:        time.Now,
	}
}

// Run performs one conversion. Load failures are terminal and leave the
// output untouched; per-record problems only drop that record.
func (s *Service) Run(ctx context.Context, explicitPath string) (Summary, error) {
	start := s.now()
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}

	path := roster.ResolvePath(explicitPath, s.candidates)
	doc, err := roster.Load(path)
	if err != nil {
		s.finish(start, loadResult(err), 0)
		logging.Error(s.logger, "roster load failed", err, logging.FieldPath, path)
		return Summary{}, err
	}
	logging.Info(s.logger, "roster loaded", logging.FieldPath, path, logging.FieldRecords, len(doc.Players))

	conv := playerids.Convert(doc.Players)
	s.report(conv)

	table, err := s.writer.Write(conv.Players)
	if err != nil {
		s.finish(start, metrics.ResultError, 0)
		logging.Error(s.logger, "write id table failed", err, logging.FieldPath, s.writer.Path())
		return Summary{}, fmt.Errorf("write id table: %w", err)
	}

	summary := Summary{
		RosterPath: path,
		OutputPath: s.writer.Path(),
		Records:    len(doc.Players),
		Written:    len(conv.Players),
		Skipped:    conv.Skipped,
		Replaced:   conv.Count(playerids.OutcomeReplaced),
		Table:      table,
	}
	elapsed := s.finish(start, metrics.ResultOK, summary.Written)
	logging.Info(s.logger, "id table written",
		logging.FieldPath, summary.OutputPath,
		logging.FieldDate, table.LastUpdated,
		logging.FieldCount, summary.Written,
		logging.FieldSkipped, summary.Skipped,
		logging.FieldReplaced, summary.Replaced,
		logging.FieldDurationMS, elapsed.Milliseconds(),
	)
	return summary, nil
}

func (s *Service) report(conv playerids.Conversion) {
	for _, r := range conv.Results {
		s.metrics.RecordOutcome(r.Outcome.String())
		switch r.Outcome {
		case playerids.OutcomeKept:
			logging.Debug(s.logger, "player mapped",
				logging.FieldKey, r.Key,
				logging.FieldPlayerID, r.ID,
				logging.FieldHeadshot, playerids.HeadshotURL(r.ID),
			)
		case playerids.OutcomeReplaced:
			logging.Warn(s.logger, "duplicate player key, later record wins",
				logging.FieldIndex, r.Index,
				logging.FieldName, r.Name,
				logging.FieldKey, r.Key,
				logging.FieldPlayerID, r.ID,
			)
		default:
			logging.Debug(s.logger, "roster record skipped",
				logging.FieldIndex, r.Index,
				logging.FieldName, r.Name,
				logging.FieldReason, r.Outcome.String(),
			)
		}
	}
}

func (s *Service) finish(start time.Time, result string, written int) time.Duration {
	elapsed := s.now().Sub(start)
	s.metrics.RecordRun(elapsed, result, written)
	return elapsed
}

func loadResult(err error) string {
	if _, ok := roster.AsNotFound(err); ok {
		return metrics.ResultNotFound
	}
	if _, ok := roster.AsParseError(err); ok {
		return metrics.ResultParseError
	}
	return metrics.ResultError
}
