package ports

import (
	"context"
	"time"
)

// MetricsExporter exports generation metrics to an external observability system.
type MetricsExporter interface {
	// ExportGeneration exports metrics for one completed dataset generation.
	ExportGeneration(ctx context.Context, m *GenerationMetrics) error
	// Close shuts down the exporter and flushes any pending metrics.
	Close(ctx context.Context) error
}

// GenerationMetrics describes one completed dataset generation.
type GenerationMetrics struct {
	Distribution string
	Groups       int
	Observations int64
	Duration     time.Duration
}
