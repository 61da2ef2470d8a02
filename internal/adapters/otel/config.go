package otel

import "github.com/rtreharne/fishdata/internal/infrastructure/config"

// Config holds OTEL exporter configuration.
type Config struct {
	Endpoint string
	Enabled  bool
	Insecure bool
}

// ConfigFromSettings maps environment settings onto exporter configuration.
func ConfigFromSettings(t config.Telemetry) Config {
	return Config{
		Endpoint: t.Endpoint,
		Enabled:  t.Enabled,
		Insecure: t.Insecure,
	}
}
