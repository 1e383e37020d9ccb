package config

const (
	envProjectRoot     = "PROJECT_ROOT"
	envLogLevel        = "LOG_LEVEL"
	envLogFormat       = "LOG_FORMAT"
	envMetricsOn       = "METRICS_ENABLED"
	envMetricsTextfile = "METRICS_TEXTFILE"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultProjectRoot = "."
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
	defaultServiceName = "nba-player-ids"

	// RosterFileName is the BasketBall-GM roster export looked up when no path is given.
	RosterFileName = "2025-26.NBA.Roster.json"
	// OutputFileName is written under the project root on every successful run.
	OutputFileName = "nba_player_ids.json"
)
