package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/S4ng4/winery-resolver/internal/domain"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ReadyFunc adapts a plain function to sharedobs.ReadinessChecker.
type ReadyFunc func(ctx context.Context) error

func (f ReadyFunc) CheckReadiness(ctx context.Context) error { return f(ctx) }

// AlwaysReady reports ready unconditionally. Used when enrichment is disabled
// and the catalog is the only dependency.
var AlwaysReady = ReadyFunc(func(context.Context) error { return nil })

// Server exposes the winery lookup API alongside health, readiness, and metrics endpoints.
type Server struct {
	httpServer *http.Server
	table      *domain.Table
	resolver   domain.Resolver
	logger     *slog.Logger
}

// NewServer creates an HTTP server. The resolver answers fuzzy lookups; the
// table answers listing and canonical-key requests.
func NewServer(addr string, table *domain.Table, resolver domain.Resolver, ready sharedobs.ReadinessChecker, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		table:    table,
		resolver: resolver,
		logger:   logger,
	}

	mux.HandleFunc("GET /wineries", s.handleList)
	mux.HandleFunc("GET /wineries/lookup", s.handleLookup)
	mux.HandleFunc("GET /wineries/{key}", s.handleGet)
	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(ready))
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}
