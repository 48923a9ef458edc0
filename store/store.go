package store

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/restkit/restkit/errors"
	"github.com/restkit/restkit/httpclient"
	"github.com/restkit/restkit/logger"
	"github.com/restkit/restkit/observability"
	"github.com/restkit/restkit/serializer"
)

// Config configures a Store.
type Config struct {
	// HTTP configures the underlying HTTP adapter.
	HTTP httpclient.Config
	// Profile injects the API-convention hooks. Zero value means the
	// default plain-JSON profile.
	Profile Profile
	// AssignClientIDs assigns a generated uuid to records created without
	// an id, so callers can reference the record before the server replies.
	AssignClientIDs bool
	// ValidateRecords runs struct validation on records before create and
	// update requests, failing locally instead of round-tripping a 422.
	ValidateRecords bool
	// Logger receives per-operation logs. Defaults to a no-op logger.
	Logger *logger.Logger
	// Metrics records operation counters and latency when set.
	Metrics *observability.Metrics
}

// Store performs record lifecycle operations against a REST API.
// It is safe for concurrent use.
type Store struct {
	client    *httpclient.Client
	profile   Profile
	ser       serializer.Serializer
	assignIDs bool
	validate  bool
	log       *logger.Logger
	metrics   *observability.Metrics
}

// New creates a Store. The profile's serializer must already be registered;
// an unknown serializer name is a construction error, not a request error.
func New(cfg Config) (*Store, error) {
	profile := cfg.Profile.applyDefaults()

	ser, err := serializer.Lookup(profile.SerializerName)
	if err != nil {
		return nil, err
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}
	if cfg.HTTP.Logger == nil {
		cfg.HTTP.Logger = log
	}

	client, err := httpclient.New(cfg.HTTP)
	if err != nil {
		return nil, err
	}

	return &Store{
		client:    client,
		profile:   profile,
		ser:       ser,
		assignIDs: cfg.AssignClientIDs,
		validate:  cfg.ValidateRecords,
		log:       log.WithComponent("store"),
		metrics:   cfg.Metrics,
	}, nil
}

// Client returns the underlying HTTP adapter for requests that fall outside
// the record lifecycle.
func (s *Store) Client() *httpclient.Client {
	return s.client
}

// pathFor resolves the URL path segment for a record type.
func (s *Store) pathFor(typeName string) string {
	return s.profile.PathForType(typeName)
}

// do executes a request and runs the profile's error classification over
// failures that carry a response. Transport-level failures (no response)
// have no status or body to classify and map straight to the structured
// timeout and connection errors.
func (s *Store) do(ctx context.Context, op, typeName string, req httpclient.Request) (*httpclient.Response, error) {
	ctx, span := observability.StartSpan(ctx, "store."+op)
	defer span.End()
	observability.SetSpanAttributes(ctx,
		attribute.String("record.type", typeName),
		attribute.String("http.method", req.Method),
	)

	start := time.Now()
	resp, err := s.client.Do(ctx, req)
	switch {
	case err != nil && resp != nil:
		err = s.profile.ClassifyError(resp.StatusCode, resp.Body, err)
	case httpclient.IsTimeout(err):
		err = errors.Timeout(op).WithCause(err)
	case httpclient.IsConnection(err):
		err = errors.ConnectionFailed(err)
	}
	duration := time.Since(start)

	status := "ok"
	if err != nil {
		status = "error"
		observability.SetSpanError(ctx, err)
		s.log.WithError(err).Debug("operation failed", logger.Fields(
			logger.FieldOperation, op,
			logger.FieldModelType, typeName,
			logger.FieldDuration, duration.Milliseconds(),
		))
	} else {
		s.log.Debug("operation completed", logger.Fields(
			logger.FieldOperation, op,
			logger.FieldModelType, typeName,
			logger.FieldDuration, duration.Milliseconds(),
		))
	}
	if s.metrics != nil {
		s.metrics.RecordOperation(ctx, typeName, op, status, duration)
	}

	return resp, err
}
