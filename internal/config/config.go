package config

import "github.com/joho/godotenv"

// Config holds runtime configuration for the converter.
type Config struct {
	ProjectRoot string
	LogLevel    string
	LogFormat   string
	Metrics     MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is applied first when present; variables
// already set in the environment win.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		ProjectRoot: envOrDefault(envProjectRoot, defaultProjectRoot),
		LogLevel:    envOrDefault(envLogLevel, defaultLogLevel),
		LogFormat:   envOrDefault(envLogFormat, defaultLogFormat),
		Metrics:     loadMetrics(),
	}
}
