package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rtreharne/fishdata/internal/adapters/libsql"
	"github.com/rtreharne/fishdata/internal/adapters/otel"
	"github.com/rtreharne/fishdata/internal/infrastructure/config"
	"github.com/rtreharne/fishdata/internal/ports"
)

// parseBoolString treats exactly "true" (case-insensitive) as true and any
// other value as false, matching how the significant flag has always been
// read.
func parseBoolString(s string) bool {
	return strings.EqualFold(s, "true")
}

// resolveSeed returns the seed unchanged when set and derives one from the
// clock otherwise, so every run has a concrete seed that can be echoed and
// replayed.
func resolveSeed(seed uint64) uint64 {
	if seed != 0 {
		return seed
	}
	return uint64(time.Now().UnixNano())
}

// services holds the optional recording backends for a generation command.
// Both degrade gracefully: history to nil, metrics to a no-op exporter.
type services struct {
	runs    ports.RunRepository
	metrics ports.MetricsExporter
	close   func()
}

func openServices(ctx context.Context) *services {
	s := &services{metrics: otel.NewNoOpExporter(), close: func() {}}

	settings, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load settings: %v\n", err)
		return s
	}

	var closers []func()

	if settings.History.Path != "" {
		db, err := libsql.Open(ctx, settings.History.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: run history unavailable: %v\n", err)
		} else {
			s.runs = libsql.NewRunRepository(db)
			closers = append(closers, func() { _ = db.Close() })
		}
	}

	if settings.Telemetry.Enabled {
		exporter, err := otel.NewExporter(ctx, otel.ConfigFromSettings(settings.Telemetry))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: metrics exporter unavailable: %v\n", err)
		} else {
			s.metrics = exporter
			closers = append(closers, func() { _ = exporter.Close(ctx) })
		}
	}

	s.close = func() {
		for _, c := range closers {
			c()
		}
	}
	return s
}

// openRunRepo connects to the run-history database for the runs commands,
// where a missing configuration is an error rather than a degradation.
func openRunRepo(ctx context.Context) (ports.RunRepository, func(), error) {
	settings, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if settings.History.Path == "" {
		return nil, nil, fmt.Errorf("run history is not configured; set FISHDATA_DB_PATH to a database file")
	}

	db, err := libsql.Open(ctx, settings.History.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open run history: %w", err)
	}
	return libsql.NewRunRepository(db), func() { _ = db.Close() }, nil
}
