package otel

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/rtreharne/fishdata/internal/ports"
)

const (
	serviceName    = "fishdata"
	serviceVersion = "1.0.0"
)

// Exporter exports generation metrics to an OTEL Collector.
type Exporter struct {
	provider          *sdkmetric.MeterProvider
	meter             metric.Meter
	datasetsTotal     metric.Int64Counter
	observationsTotal metric.Int64Counter
	durationHist      metric.Float64Histogram
}

// NewExporter creates a new OTEL metrics exporter.
func NewExporter(ctx context.Context, cfg Config) (*Exporter, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil, fmt.Errorf("OTEL exporter is disabled or endpoint not configured")
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	datasetsTotal, err := meter.Int64Counter(
		"fishdata_datasets_total",
		metric.WithDescription("Total number of datasets generated"),
		metric.WithUnit("{dataset}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating datasets counter: %w", err)
	}

	observationsTotal, err := meter.Int64Counter(
		"fishdata_observations_total",
		metric.WithDescription("Total number of observations generated"),
		metric.WithUnit("{observation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating observations counter: %w", err)
	}

	durationHist, err := meter.Float64Histogram(
		"fishdata_generation_duration_seconds",
		metric.WithDescription("Dataset generation duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration histogram: %w", err)
	}

	return &Exporter{
		provider:          provider,
		meter:             meter,
		datasetsTotal:     datasetsTotal,
		observationsTotal: observationsTotal,
		durationHist:      durationHist,
	}, nil
}

// ExportGeneration exports metrics for a completed generation run.
func (e *Exporter) ExportGeneration(ctx context.Context, m *ports.GenerationMetrics) error {
	opt := metric.WithAttributes(
		attribute.String("distribution", m.Distribution),
		attribute.Int("groups", m.Groups),
	)

	e.datasetsTotal.Add(ctx, 1, opt)
	e.observationsTotal.Add(ctx, m.Observations, opt)
	e.durationHist.Record(ctx, m.Duration.Seconds(), opt)

	return nil
}

// Close shuts down the exporter and flushes any pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}
