package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/attribute"
)

func TestStartSpanWithoutProviderIsNoop(t *testing.T) {
	ctx, span := StartSpan(context.Background(), "store.find")
	defer span.End()

	if ctx == nil {
		t.Fatal("context must not be nil")
	}
	// No provider installed: span must not record.
	if span.IsRecording() {
		t.Error("expected non-recording span without a provider")
	}

	// These must be safe no-ops.
	SetSpanAttributes(ctx, attribute.String("model_type", "dog"))
	SetSpanError(ctx, errors.New("boom"))
	SetSpanError(ctx, nil)
}

func TestNewMetrics(t *testing.T) {
	m, err := NewMetrics(Meter("test"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Recording against the no-op global meter must not panic.
	m.RecordOperation(context.Background(), "dog", "find", "ok", 5*time.Millisecond)
	m.RecordError(context.Background(), "dog", "find")
}

func TestDefaultConfigs(t *testing.T) {
	tc := DefaultTracerConfig("petstore")
	if tc.ClientName != "petstore" || tc.SampleRate != 1.0 {
		t.Errorf("unexpected tracer defaults: %+v", tc)
	}

	mc := DefaultMeterConfig("petstore")
	if mc.Interval <= 0 {
		t.Errorf("expected positive export interval, got %v", mc.Interval)
	}
}
