package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/restkit/restkit/resilience"
)

type testRecord struct {
	Name string `json:"name"`
}

func newTestClient(t *testing.T, handler http.HandlerFunc, cfg Config) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg.BaseURL = srv.URL
	c, err := New(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c, srv
}

func TestDoSendsJSONBody(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected application/json, got %s", ct)
		}
		var rec testRecord
		if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
			t.Fatal(err)
		}
		if rec.Name != "Rex" {
			t.Errorf("expected Rex, got %s", rec.Name)
		}
		w.WriteHeader(http.StatusCreated)
	}, Config{})

	resp, err := c.Do(context.Background(), Request{
		Method: http.MethodPost,
		Path:   "/dogs",
		Body:   testRecord{Name: "Rex"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Errorf("expected 201, got %d", resp.StatusCode)
	}
}

func TestDoAppliesQueryAndHeaders(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("page"); got != "2" {
			t.Errorf("expected page=2, got %q", got)
		}
		if got := r.Header.Get("X-Custom"); got != "yes" {
			t.Errorf("expected X-Custom header, got %q", got)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("expected generated X-Request-ID header")
		}
		w.WriteHeader(http.StatusOK)
	}, Config{})

	_, err := c.Do(context.Background(), Request{
		Method:  http.MethodGet,
		Path:    "/dogs",
		Query:   map[string]string{"page": "2"},
		Headers: map[string]string{"X-Custom": "yes"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDoReturnsClassifiedErrorWithResponse(t *testing.T) {
	body := `{"errors":{"name":["can't be blank"]}}`
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(body))
	}, Config{})

	resp, err := c.Do(context.Background(), Request{Method: http.MethodPost, Path: "/dogs"})
	if err == nil {
		t.Fatal("expected classified error")
	}
	if resp == nil {
		t.Fatal("expected response alongside error")
	}
	if resp.StatusCode != 422 {
		t.Errorf("expected 422, got %d", resp.StatusCode)
	}
	if string(resp.Body) != body {
		t.Errorf("body not preserved: %s", resp.Body)
	}

	var clientErr *Error
	if !errors.As(err, &clientErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if clientErr.Code != ErrCodeRequest {
		t.Errorf("expected request code for generic 4xx, got %s", clientErr.Code)
	}
}

func TestDoRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	retry := resilience.RetryConfig{MaxAttempts: 3, InitialBackoff: 1, RetryIf: IsRetryable}
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}, Config{Retry: &retry})

	_, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/dogs"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls.Load() != 3 {
		t.Errorf("expected 3 calls, got %d", calls.Load())
	}
}

func TestDoDoesNotRetryNotFound(t *testing.T) {
	var calls atomic.Int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}, Config{Retry: DefaultRetryConfig()})

	_, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/dogs/1"})
	if !IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if calls.Load() != 1 {
		t.Errorf("expected 1 call, got %d", calls.Load())
	}
}

func TestDoCircuitBreakerOpens(t *testing.T) {
	cb := resilience.DefaultCircuitBreakerConfig("api")
	cb.MaxFailures = 2
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, Config{CircuitBreaker: &cb})

	req := Request{Method: http.MethodGet, Path: "/dogs"}
	for range 2 {
		_, _ = c.Do(context.Background(), req)
	}

	_, err := c.Do(context.Background(), req)
	if !errors.Is(err, resilience.ErrCircuitOpen) {
		t.Errorf("expected ErrCircuitOpen, got %v", err)
	}
}

func TestConnectionError(t *testing.T) {
	c, err := New(Config{BaseURL: "http://127.0.0.1:1"})
	if err != nil {
		t.Fatal(err)
	}

	_, err = c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/"})
	if !IsConnection(err) {
		t.Errorf("expected connection error, got %v", err)
	}
	if !IsRetryable(err) {
		t.Error("connection errors must be retryable")
	}
}

func TestTypedGet(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(testRecord{Name: "Rex"})
	}, Config{})

	resp, err := Get[testRecord](context.Background(), c, "/dogs/1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Data.Name != "Rex" {
		t.Errorf("expected Rex, got %s", resp.Data.Name)
	}
}

func TestTypedPostDecodesErrorBody(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(testRecord{Name: "duplicate"})
	}, Config{})

	resp, err := Post[testRecord](context.Background(), c, "/dogs", testRecord{Name: "Rex"})
	if err == nil {
		t.Fatal("expected error")
	}
	if resp == nil || resp.Data.Name != "duplicate" {
		t.Errorf("expected decoded error body, got %+v", resp)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{Timeout: -1}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative timeout")
	}

	cfg = Config{TLS: &TLSConfig{CertFile: "cert.pem"}}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for cert without key")
	}
}
