package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how run metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup configures OpenTelemetry metrics backed by a private Prometheus
// registry and an optional OTLP exporter. The returned shutdown flushes the
// OTLP reader, so it must run before the process exits.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }
	if !cfg.Enabled {
		return NewRecorder(), noop, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = "nba-player-ids"
	}

	promReader, gatherer, err := promReaderFactory()
	if err != nil {
		return nil, nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, err
	}

	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	rec := newRecorder(nil, gatherer)
	otelInst, err := instrumentFactory(provider, rec)
	if err != nil {
		_ = provider.Shutdown(ctx)
		return nil, nil, err
	}
	rec.otel = otelInst

	shutdown := func(c context.Context) error {
		return provider.Shutdown(c)
	}

	return rec, shutdown, nil
}

// A batch run exits long before any periodic interval elapses; shutdown
// performs the only export that matters.
func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	otlpExp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(otlpExp, sdkmetric.WithInterval(time.Minute)), nil
}

func prometheusComponents() (sdkmetric.Reader, prometheus.Gatherer, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, reg, nil
}

type otelInstruments struct {
	ctx          context.Context
	meter        metric.Meter
	runs         metric.Int64Counter
	records      metric.Int64Counter
	written      metric.Int64Counter
	runLatencyMs metric.Float64Histogram
	lastSuccess  metric.Float64ObservableGauge
}

func newOtelInstruments(provider metric.MeterProvider, rec *Recorder) (*otelInstruments, error) {
	meter := provider.Meter("nba-player-ids")
	ctx := context.Background()

	runs, err := meter.Int64Counter("roster_runs_total",
		metric.WithDescription("Converter runs by result."))
	if err != nil {
		return nil, err
	}
	records, err := meter.Int64Counter("roster_records_total",
		metric.WithDescription("Roster records by classification outcome."))
	if err != nil {
		return nil, err
	}
	written, err := meter.Int64Counter("roster_players_written_total",
		metric.WithDescription("Players written to the id table."))
	if err != nil {
		return nil, err
	}
	runLatency, err := meter.Float64Histogram("roster_run_duration_ms",
		metric.WithDescription("Wall time of a converter run in milliseconds."))
	if err != nil {
		return nil, err
	}
	lastSuccess, err := meter.Float64ObservableGauge("roster_last_success_timestamp_seconds",
		metric.WithDescription("Unix time of the last successful run."),
		metric.WithFloat64Callback(func(_ context.Context, o metric.Float64Observer) error {
			if ts, ok := rec.lastSuccessUnix(); ok {
				o.Observe(ts)
			}
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	return &otelInstruments{
		ctx:          ctx,
		meter:        meter,
		runs:         runs,
		records:      records,
		written:      written,
		runLatencyMs: runLatency,
		lastSuccess:  lastSuccess,
	}, nil
}

func (o *otelInstruments) recordOutcome(outcome string) {
	if o == nil {
		return
	}
	o.records.Add(o.ctx, 1, metric.WithAttributes(attribute.String(AttrOutcome, outcome)))
}

func (o *otelInstruments) recordRun(duration time.Duration, result string, written int) {
	if o == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String(AttrResult, result))
	o.runs.Add(o.ctx, 1, attrs)
	o.runLatencyMs.Record(o.ctx, float64(duration.Milliseconds()), attrs)
	if result == ResultOK && written > 0 {
		o.written.Add(o.ctx, int64(written))
	}
}
