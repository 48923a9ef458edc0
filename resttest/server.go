package resttest

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/restkit/restkit/inflect"
	"github.com/restkit/restkit/logger"
	"github.com/restkit/restkit/testutil"
)

var _ testutil.TestComponent = (*Server)(nil)

// ValidateFunc inspects a record's wire attributes (snake_case keys) and
// returns field-level messages; an empty or nil map means the record is
// valid.
type ValidateFunc func(attrs map[string]any) map[string][]string

// resource is one record collection served by the stub.
type resource struct {
	singular string
	plural   string
	validate ValidateFunc
	records  map[string]map[string]any
	nextID   int
}

// Server is an in-memory stub REST API. Register resources before Start;
// records can be seeded and inspected at any time.
type Server struct {
	engine     *gin.Engine
	httpServer *http.Server
	log        *logger.Logger

	mu        sync.RWMutex
	resources map[string]*resource
	url       string
}

// NewServer creates a stub API server. A nil log disables logging.
func NewServer(log *logger.Logger) *Server {
	if log == nil {
		log = logger.Nop()
	}
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		engine:    engine,
		log:       log.WithComponent("resttest"),
		resources: make(map[string]*resource),
	}

	engine.GET("/:resource", s.handleList)
	engine.POST("/:resource", s.handleCreate)
	engine.GET("/:resource/:id", s.handleFind)
	engine.PUT("/:resource/:id", s.handleUpdate)
	engine.DELETE("/:resource/:id", s.handleDelete)

	return s
}

// AddResource registers a record type. The URL segment and document keys are
// derived from the type name ("famousPerson" is served at /famous_people).
// validate may be nil for resources that accept anything.
func (s *Server) AddResource(typeName string, validate ValidateFunc) {
	singular := inflect.Underscore(typeName)
	plural := inflect.Pluralize(singular)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.resources[plural] = &resource{
		singular: singular,
		plural:   plural,
		validate: validate,
		records:  make(map[string]map[string]any),
		nextID:   1,
	}
}

// Seed inserts records for a registered type. Attribute keys must already be
// in wire form (snake_case); records without an "id" get one assigned.
func (s *Server) Seed(typeName string, records ...map[string]any) {
	plural := inflect.Pluralize(inflect.Underscore(typeName))

	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.resources[plural]
	if !ok {
		panic(fmt.Sprintf("resttest: Seed before AddResource for %q", typeName))
	}
	for _, record := range records {
		res.insert(copyRecord(record))
	}
}

// Records returns a copy of the stored records for a type, for assertions.
func (s *Server) Records(typeName string) []map[string]any {
	plural := inflect.Pluralize(inflect.Underscore(typeName))

	s.mu.RLock()
	defer s.mu.RUnlock()
	res, ok := s.resources[plural]
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(res.records))
	for _, record := range res.records {
		out = append(out, copyRecord(record))
	}
	return out
}

// URL returns the server's base URL. Empty until Start.
func (s *Server) URL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.url
}

// Name implements testutil.Component.
func (s *Server) Name() string { return "resttest" }

// Start binds an ephemeral localhost port and begins serving. It returns
// once the listener is bound so URL is immediately usable.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return fmt.Errorf("resttest: bind: %w", err)
	}

	handler := h2c.NewHandler(s.engine, &http2.Server{})
	srv := &http.Server{Handler: handler}

	s.mu.Lock()
	s.httpServer = srv
	s.url = "http://" + listener.Addr().String()
	s.mu.Unlock()

	go func() {
		if err := srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.log.Error("serve error", logger.Fields(logger.FieldError, err.Error()))
		}
	}()

	s.log.Debug("stub API started", logger.Fields("url", s.URL()))
	return nil
}

// Stop gracefully shuts the server down with a 5-second deadline.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	srv := s.httpServer
	s.httpServer = nil
	s.url = ""
	s.mu.Unlock()

	if srv == nil {
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// Reset clears all records while keeping registered resources.
func (s *Server) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, res := range s.resources {
		res.records = make(map[string]map[string]any)
		res.nextID = 1
	}
	return nil
}

// Snapshot captures all stored records.
func (s *Server) Snapshot(ctx context.Context) (interface{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make(map[string]map[string]map[string]any, len(s.resources))
	for plural, res := range s.resources {
		records := make(map[string]map[string]any, len(res.records))
		for id, record := range res.records {
			records[id] = copyRecord(record)
		}
		snapshot[plural] = records
	}
	return snapshot, nil
}

// Restore replaces all stored records with a snapshot taken earlier.
func (s *Server) Restore(ctx context.Context, snapshot interface{}) error {
	data, ok := snapshot.(map[string]map[string]map[string]any)
	if !ok {
		return fmt.Errorf("resttest: unexpected snapshot type %T", snapshot)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for plural, res := range s.resources {
		res.records = make(map[string]map[string]any)
		for id, record := range data[plural] {
			res.records[id] = copyRecord(record)
		}
	}
	return nil
}

// insert stores a record, assigning a sequential id when absent.
// Caller holds the lock.
func (r *resource) insert(record map[string]any) string {
	id, ok := record["id"].(string)
	if !ok || id == "" {
		id = strconv.Itoa(r.nextID)
		record["id"] = id
	}
	r.nextID++
	r.records[id] = record
	return id
}

func copyRecord(record map[string]any) map[string]any {
	out := make(map[string]any, len(record))
	for k, v := range record {
		out[k] = v
	}
	return out
}
