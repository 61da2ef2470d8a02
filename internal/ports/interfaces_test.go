package ports_test

import (
	"testing"

	"github.com/rtreharne/fishdata/internal/adapters/libsql"
	"github.com/rtreharne/fishdata/internal/adapters/otel"
	"github.com/rtreharne/fishdata/internal/idgen"
	"github.com/rtreharne/fishdata/internal/ports"
)

// Compile-time interface conformance checks.
// These verify that concrete adapters properly implement their port interfaces.

func TestRunRepositoryConformance(t *testing.T) {
	var _ ports.RunRepository = (*libsql.RunRepository)(nil)
}

func TestMetricsExporterConformance(t *testing.T) {
	var _ ports.MetricsExporter = (*otel.Exporter)(nil)
	var _ ports.MetricsExporter = (*otel.NoOpExporter)(nil)
}

func TestIDGeneratorConformance(t *testing.T) {
	var _ ports.IDGenerator = (*idgen.Token)(nil)
	var _ ports.IDGenerator = (*idgen.Sequential)(nil)
}
