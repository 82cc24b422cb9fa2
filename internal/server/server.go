package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	apperrors "github.com/namelens/domainideas/internal/errors"
	"github.com/namelens/domainideas/internal/observability"
	"github.com/namelens/domainideas/internal/server/handlers"
	servermw "github.com/namelens/domainideas/internal/server/middleware"
)

// Options configures the HTTP server. Zero timeouts select the defaults.
type Options struct {
	Host string
	Port int

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// MetricsPort is the Prometheus exporter port proxied at /metrics.
	MetricsPort int

	// DisableHealth leaves the /health probes unregistered.
	DisableHealth bool

	// API serves /api/*; nil leaves those routes unregistered.
	API *handlers.API

	CORSOrigins []string
	RateLimit   float64
	RateBurst   int
}

// Server represents the HTTP server
type Server struct {
	router  *chi.Mux
	server  *http.Server
	options Options
}

// New creates a new HTTP server instance
func New(opts Options) *Server {
	r := chi.NewRouter()

	// Standard chi middleware
	r.Use(middleware.RealIP)

	// RequestID → Metrics → Recovery
	r.Use(servermw.RequestID)
	r.Use(servermw.RequestMetrics)
	r.Use(servermw.Recovery)

	// Router-level misses use the same JSON error body as handlers
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		apperrors.RespondWithError(w, req, apperrors.NewNotFoundError("The requested resource was not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		apperrors.RespondWithError(w, req, apperrors.NewMethodNotAllowedError("The requested method is not allowed for this resource"))
	})

	s := &Server{
		router:  r,
		options: opts,
	}

	s.registerRoutes()

	return s
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := net.JoinHostPort(s.options.Host, strconv.Itoa(s.options.Port))

	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadTimeout:       durationOr(s.options.ReadTimeout, 30*time.Second),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      durationOr(s.options.WriteTimeout, 180*time.Second),
		IdleTimeout:       durationOr(s.options.IdleTimeout, 120*time.Second),
	}

	if logger := observability.Logger(); logger != nil {
		logger.Info("Starting HTTP server",
			zap.String("host", s.options.Host),
			zap.Int("port", s.options.Port),
			zap.String("addr", addr),
			zap.Duration("write_timeout", s.server.WriteTimeout))
	}

	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	if logger := observability.Logger(); logger != nil {
		logger.Info("Shutting down HTTP server")
	}
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}

// Handler exposes the underlying router for testing and instrumentation
func (s *Server) Handler() http.Handler {
	return s.router
}

// Port returns the configured port
func (s *Server) Port() int {
	return s.options.Port
}

func durationOr(value, fallback time.Duration) time.Duration {
	if value > 0 {
		return value
	}
	return fallback
}
