package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

const defaultMeterName = "github.com/restkit/restkit/observability"

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ClientName identifies this client in metric resources.
	ClientName string
	// Version is the client version.
	Version string
	// Environment is the deployment environment.
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port.
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(clientName string) MeterConfig {
	return MeterConfig{
		ClientName:  clientName,
		Version:     "1.0.0",
		Environment: "development",
		Endpoint:    "localhost:4318",
		Insecure:    true,
		Interval:    15 * time.Second,
	}
}

// InitMeter initializes the global OpenTelemetry meter provider.
// The returned provider should be shut down on exit.
func InitMeter(ctx context.Context, config MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ClientName, config.Version, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	if name == "" {
		name = defaultMeterName
	}
	return otel.Meter(name)
}

// Metrics bundles the instruments recorded per store operation.
type Metrics struct {
	operations metric.Int64Counter
	opErrors   metric.Int64Counter
	opDuration metric.Float64Histogram
}

// NewMetrics creates the standard restkit operation instruments.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	operations, err := meter.Int64Counter(
		"restkit.operations",
		metric.WithDescription("Number of store operations by type and status"),
	)
	if err != nil {
		return nil, err
	}

	opErrors, err := meter.Int64Counter(
		"restkit.operation.errors",
		metric.WithDescription("Number of failed store operations"),
	)
	if err != nil {
		return nil, err
	}

	opDuration, err := meter.Float64Histogram(
		"restkit.operation.duration",
		metric.WithDescription("Store operation duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		operations: operations,
		opErrors:   opErrors,
		opDuration: opDuration,
	}, nil
}

// RecordOperation records a completed store operation.
func (m *Metrics) RecordOperation(ctx context.Context, modelType, operation, status string, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("model_type", modelType),
		attribute.String("operation", operation),
		attribute.String("status", status),
	)
	m.operations.Add(ctx, 1, attrs)
	m.opDuration.Record(ctx, float64(duration.Milliseconds()), attrs)
}

// RecordError records a failed store operation.
func (m *Metrics) RecordError(ctx context.Context, modelType, operation string) {
	m.opErrors.Add(ctx, 1, metric.WithAttributes(
		attribute.String("model_type", modelType),
		attribute.String("operation", operation),
	))
}
