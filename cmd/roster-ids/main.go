package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"nba-player-ids/internal/app/converter"
	"nba-player-ids/internal/config"
	"nba-player-ids/internal/logging"
	"nba-player-ids/internal/metrics"
	"nba-player-ids/internal/output"
	"nba-player-ids/internal/roster"
)

const (
	appVersion = "dev"
	usage      = "Usage: roster-ids [path_to_roster.json]"

	telemetryFlushTimeout = 5 * time.Second
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) > 1 {
		fmt.Fprintln(stderr, usage)
		return 1
	}
	var rosterPath string
	if len(args) == 1 {
		rosterPath = args[0]
	}

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: cfg.Metrics.ServiceName,
		Version: appVersion,
		Output:  stderr,
	})

	ctx := context.Background()
	rec, shutdown, err := metrics.Setup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		logging.Warn(logger, "telemetry disabled", "error", err)
		rec, shutdown = metrics.NewRecorder(), func(context.Context) error { return nil }
	}

	svc := converter.NewService(
		output.NewWriter(cfg.OutputPath(), time.Now),
		cfg.RosterCandidates(),
		logger,
		rec,
	)

	code := 0
	summary, err := svc.Run(ctx, rosterPath)
	if err != nil {
		if nf, ok := roster.AsNotFound(err); ok {
			fmt.Fprintln(stderr, nf.Error())
			fmt.Fprintln(stderr, usage)
		} else {
			fmt.Fprintf(stderr, "error: %v\n", err)
		}
		code = 1
	} else {
		fmt.Fprintln(stdout, summary.String())
	}

	exportTelemetry(logger, rec, shutdown, cfg.Metrics.Textfile)
	return code
}

func exportTelemetry(logger *slog.Logger, rec *metrics.Recorder, shutdown func(context.Context) error, textfile string) {
	if textfile != "" {
		if err := rec.WriteTextfile(textfile); err != nil {
			logging.Warn(logger, "metrics textfile not written", logging.FieldPath, textfile, "error", err)
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), telemetryFlushTimeout)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		logging.Warn(logger, "telemetry shutdown failed", "error", err)
	}
}
