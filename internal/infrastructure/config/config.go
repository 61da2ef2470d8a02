package config

import "github.com/kelseyhightower/envconfig"

// History holds run-history database configuration. An empty path leaves
// history recording disabled.
type History struct {
	Path string `envconfig:"FISHDATA_DB_PATH"`
}

// Telemetry holds OTLP metrics exporter configuration.
type Telemetry struct {
	Enabled  bool   `envconfig:"FISHDATA_OTEL_ENABLED"`
	Endpoint string `envconfig:"FISHDATA_OTEL_ENDPOINT"`
	Insecure bool   `envconfig:"FISHDATA_OTEL_INSECURE"`
}

// Settings groups everything fishdata reads from the environment.
// Generation parameters never come from here; they are command flags.
type Settings struct {
	History   History
	Telemetry Telemetry
}

// Load reads settings from environment variables.
func Load() (*Settings, error) {
	var s Settings
	if err := envconfig.Process("", &s.History); err != nil {
		return nil, err
	}
	if err := envconfig.Process("", &s.Telemetry); err != nil {
		return nil, err
	}
	return &s, nil
}
