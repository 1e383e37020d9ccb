package config

// MetricsConfig controls telemetry export for a converter run.
type MetricsConfig struct {
	Enabled      bool
	Textfile     string
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

func loadMetrics() MetricsConfig {
	textfile := envOrDefault(envMetricsTextfile, "")
	endpoint := envOrDefault(envOtelEndpoint, "")
	return MetricsConfig{
		// Asking for an export target implies metrics are wanted.
		Enabled:      boolEnvOrDefault(envMetricsOn, textfile != "" || endpoint != ""),
		Textfile:     textfile,
		OtlpEndpoint: endpoint,
		ServiceName:  envOrDefault(envOtelService, defaultServiceName),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, true),
	}
}
