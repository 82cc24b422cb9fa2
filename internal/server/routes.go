package server

import (
	"context"
	"net/http"
	"os"

	"github.com/fulmenhq/gofulmen/signals"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/namelens/domainideas/internal/appid"
	apperrors "github.com/namelens/domainideas/internal/errors"
	"github.com/namelens/domainideas/internal/observability"
	"github.com/namelens/domainideas/internal/server/handlers"
	servermw "github.com/namelens/domainideas/internal/server/middleware"
)

// registerRoutes registers all HTTP routes
func (s *Server) registerRoutes() {
	if !s.options.DisableHealth {
		s.router.Get("/health", handlers.HealthHandler)
		s.router.Get("/health/live", handlers.LivenessHandler)
		s.router.Get("/health/ready", handlers.ReadinessHandler)
		s.router.Get("/health/startup", handlers.StartupHandler)
	}

	s.router.Get("/version", handlers.VersionHandler)

	// Prometheus exporter proxied onto the main port
	s.router.Get("/metrics", newMetricsHandler(s.options.MetricsPort))

	s.registerAPI()

	// Admin signal endpoint (optional, requires {PREFIX}ADMIN_TOKEN)
	s.registerAdminEndpoint()
}

// registerAPI mounts the suggestion endpoints behind CORS and per-client
// rate limiting.
func (s *Server) registerAPI() {
	api := s.options.API
	if api == nil {
		return
	}

	limiter := servermw.NewClientRateLimiter(s.options.RateLimit, s.options.RateBurst)
	s.router.Route("/api", func(r chi.Router) {
		r.Use(servermw.CORS(s.options.CORSOrigins))

		// status and ip endpoints stay unlimited
		r.Get("/health", api.StatusHandler)
		r.Get("/server-ip", api.ServerIPHandler)

		r.With(limiter.Middleware(rejectRateLimited)).Get("/domains", api.DomainsHandler)

		// CORS answers preflights; bare OPTIONS land here
		r.Options("/*", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
	})
}

func rejectRateLimited(w http.ResponseWriter, r *http.Request) {
	envelope := apperrors.NewRateLimitedError("Too many requests; slow down and retry shortly")
	envelope = envelope.WithDetails(map[string]interface{}{
		"hint": "each lookup makes several registrar calls; wait a moment before retrying",
	})
	apperrors.RespondWithError(w, r, envelope)
}

// registerAdminEndpoint optionally registers the admin signal endpoint
func (s *Server) registerAdminEndpoint() {
	envPrefix := appid.EnvPrefix(context.Background())

	adminToken := os.Getenv(envPrefix + "ADMIN_TOKEN")
	logger := observability.Logger()

	if adminToken == "" {
		if logger != nil {
			logger.Debug("Admin signal endpoint disabled (no " + envPrefix + "ADMIN_TOKEN set)")
		}
		return
	}

	handler := signals.NewHTTPHandler(signals.HTTPConfig{
		TokenAuth: adminToken,
		RateLimit: 10, // requests per minute
		RateBurst: 5,
		Manager:   nil, // default global manager
	})

	s.router.Post("/admin/signal", handler.ServeHTTP)

	if logger != nil {
		logger.Info("Admin signal endpoint enabled",
			zap.String("path", "/admin/signal"),
			zap.String("auth", "bearer token"),
			zap.String("rate_limit", "10/min, burst 5"))
		logger.Warn("Admin endpoint enabled - ensure this server is not exposed to public internet")
	}
}
