// Package observability sets up OpenTelemetry tracing and metrics for
// restkit clients. InitTracer and InitMeter install global providers with
// OTLP HTTP exporters; until they are called the helpers are no-ops, so
// library code can record spans and metrics unconditionally.
package observability
