package cmd

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/fulmenhq/gofulmen/signals"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/namelens/domainideas/internal/config"
	"github.com/namelens/domainideas/internal/core"
	"github.com/namelens/domainideas/internal/core/engine"
	errwrap "github.com/namelens/domainideas/internal/errors"
	"github.com/namelens/domainideas/internal/metrics"
	"github.com/namelens/domainideas/internal/observability"
	"github.com/namelens/domainideas/internal/server"
	"github.com/namelens/domainideas/internal/server/handlers"
)

// signalHealthChecker implements HealthChecker for signal system
type signalHealthChecker struct{}

func (s signalHealthChecker) CheckHealth(ctx context.Context) error {
	return nil // Signal handlers are registered and ready
}

// telemetryHealthChecker ensures telemetry system and exporter are available
type telemetryHealthChecker struct{}

func (telemetryHealthChecker) CheckHealth(ctx context.Context) error {
	if observability.TelemetrySystem == nil || observability.PrometheusExporter == nil {
		return errwrap.NewInternalError("telemetry system not initialized")
	}
	return nil
}

// identityHealthChecker validates app identity metadata
type identityHealthChecker struct {
	binaryName string
	envPrefix  string
	configName string
}

func (i identityHealthChecker) CheckHealth(ctx context.Context) error {
	switch {
	case i.binaryName == "":
		return errwrap.NewConfigInvalidError("app identity missing binary name")
	case i.envPrefix == "":
		return errwrap.NewConfigInvalidError("app identity missing env prefix")
	case i.configName == "":
		return errwrap.NewConfigInvalidError("app identity missing config name")
	}
	return nil
}

// liveSuggester holds the registrar wiring built from the current config.
// SIGHUP swaps it without restarting the listener.
type liveSuggester struct {
	cfg       atomic.Pointer[config.Config]
	suggester atomic.Pointer[engine.Suggester]
}

func newLiveSuggester(cfg *config.Config) *liveSuggester {
	live := &liveSuggester{}
	live.store(cfg)
	return live
}

func (l *liveSuggester) store(cfg *config.Config) {
	l.suggester.Store(cfg.NewSuggester(observability.ServerLogger, versionInfo.Version))
	l.cfg.Store(cfg)
	metrics.SetCredentialsConfigured(cfg.Registrar.HasCredentials())
}

func (l *liveSuggester) Suggest(ctx context.Context, req core.SuggestRequest) (*core.SuggestResult, error) {
	return l.suggester.Load().Suggest(ctx, req)
}

func (l *liveSuggester) HasCredentials() bool {
	return l.cfg.Load().Registrar.HasCredentials()
}

// CheckHealth reports degraded, not down, while the registrar account is
// missing so the process stays in rotation for /api/server-ip.
func (l *liveSuggester) CheckHealth(ctx context.Context) error {
	cfg := l.cfg.Load()
	if cfg.Registrar.HasCredentials() {
		return nil
	}
	if err := cfg.Registrar.Credentials().Validate(); err != nil {
		return fmt.Errorf("%w: %v", handlers.ErrDegraded, err)
	}
	return fmt.Errorf("%w: registrar credentials not configured", handlers.ErrDegraded)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the HTTP API server with graceful shutdown support.

Endpoints:
  GET /api/domains?keyword=&tld=[&max=]  Available domain suggestions
  GET /api/server-ip                     Egress IP for the registrar allow-list
  GET /api/health                        Credential and port status

Signal Handling:
  • Ctrl+C (SIGINT) or SIGTERM: Graceful shutdown
  • Ctrl+C twice within 2s: Force quit
  • SIGHUP: Reload registrar and generator settings

The server will cleanly shut down the HTTP server and flush logs on shutdown.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("host", "localhost", "server host")
	serveCmd.Flags().IntP("port", "p", config.DefaultPort, "server port")

	_ = viper.BindPFlag("server.host", serveCmd.Flags().Lookup("host"))
	_ = viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
}

func runServe(cmd *cobra.Command, args []string) error {
	identity := GetAppIdentity()
	namespace := identity.TelemetryNamespace()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	observability.InitServerLogger(observability.ServerLoggerOptions{
		Service:   identity.BinaryName,
		Level:     cfg.Logging.Level,
		Profile:   cfg.Logging.Profile,
		Namespace: namespace,
	})
	logger := observability.ServerLogger

	metricsPort := cfg.Metrics.Port
	if cfg.Metrics.Enabled {
		if err := observability.InitMetrics(identity.BinaryName, metricsPort, namespace); err != nil {
			logger.Error("Failed to initialize metrics", zap.Error(err))
			return errwrap.WrapInternal(cmd.Context(), err, "metrics initialization failed")
		}
	}

	logger.Info("Initializing server",
		zap.String("service", identity.BinaryName),
		zap.String("namespace", namespace),
		zap.String("version", versionInfo.Version),
		zap.String("provider", cfg.Registrar.Provider),
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
		zap.Int("metrics_port", metricsPort))

	live := newLiveSuggester(cfg)
	if !live.HasCredentials() {
		logger.Warn("Registrar credentials not configured; /api/domains will fail until they are set",
			zap.String("provider", cfg.Registrar.Provider))
	}

	handlers.SetVersionInfo(versionInfo.Version, versionInfo.Commit, versionInfo.BuildDate)
	handlers.SetAppIdentity(identity)

	hm := handlers.InitHealthManager(versionInfo.Version)
	hm.RegisterChecker("signal_handlers", signalHealthChecker{})
	if cfg.Metrics.Enabled {
		hm.RegisterChecker("telemetry", telemetryHealthChecker{})
	}
	hm.RegisterChecker("app_identity", identityHealthChecker{
		binaryName: identity.BinaryName,
		envPrefix:  identity.EnvPrefix,
		configName: identity.ConfigName,
	})
	hm.RegisterChecker("registrar_credentials", live)

	srv := server.New(server.Options{
		Host:          cfg.Server.Host,
		Port:          cfg.Server.Port,
		ReadTimeout:   cfg.Server.ReadTimeout,
		WriteTimeout:  cfg.Server.WriteTimeout,
		IdleTimeout:   cfg.Server.IdleTimeout,
		MetricsPort:   metricsPort,
		DisableHealth: !cfg.Health.Enabled,
		API: &handlers.API{
			Suggester:      live,
			IPResolver:     cfg.NewIPResolver(),
			HasCredentials: live.HasCredentials,
			Port:           cfg.Server.Port,
		},
		CORSOrigins: cfg.API.CORSOrigins,
		RateLimit:   cfg.API.RateLimit,
		RateBurst:   cfg.API.RateBurst,
	})

	shutdownTimeout := cfg.Server.ShutdownTimeout
	if shutdownTimeout == 0 {
		shutdownTimeout = 10 * time.Second
	}

	// Register graceful shutdown handlers (LIFO order - last registered, first executed)
	// Handler 1: Flush logger (executed last)
	signals.OnShutdown(func(ctx context.Context) error {
		logger.Info("Flushing logger...")
		if err := logger.Sync(); err != nil {
			// Sync errors are often benign (stdout/stderr already closed)
			logger.Warn("Logger sync returned error (may be benign)", zap.Error(err))
		}
		return nil
	})

	// Handler 2: Stop the metrics exporter
	signals.OnShutdown(func(ctx context.Context) error {
		if err := observability.StopMetrics(); err != nil {
			logger.Warn("Metrics exporter did not stop cleanly", zap.Error(err))
		}
		return nil
	})

	// Handler 3: Shutdown HTTP server (executed first)
	signals.OnShutdown(func(ctx context.Context) error {
		logger.Info("Shutting down HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return errwrap.WrapInternal(ctx, err, "server shutdown failed")
		}

		logger.Info("HTTP server stopped gracefully")
		return nil
	})

	// SIGHUP rebuilds the suggester; listener settings need a restart.
	signals.OnReload(func(ctx context.Context) error {
		logger.Info("Received SIGHUP: attempting config reload")

		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				logger.Error("Failed to reload config file",
					zap.String("file", viper.ConfigFileUsed()),
					zap.Error(err))
				return errwrap.WrapConfigInvalid(ctx, err, "config reload failed")
			}
		}

		next, err := loadConfig()
		if err != nil {
			logger.Error("Reloaded configuration is invalid; keeping previous settings", zap.Error(err))
			return errwrap.WrapConfigInvalid(ctx, err, "config reload failed")
		}

		previous := live.cfg.Load()
		if next.Server != previous.Server || next.Metrics != previous.Metrics {
			logger.Warn("Server and metrics settings changed; restart to apply them")
		}
		live.store(next)

		logger.Info("Configuration reloaded",
			zap.String("file", viper.ConfigFileUsed()),
			zap.String("provider", next.Registrar.Provider),
			zap.Bool("has_credentials", next.Registrar.HasCredentials()))
		return nil
	})

	// Enable double-tap force quit (Ctrl+C within 2 seconds)
	if err := signals.EnableDoubleTap(signals.DoubleTapConfig{
		Window:  2 * time.Second,
		Message: "Press Ctrl+C again within 2 seconds to force quit",
	}); err != nil {
		logger.Warn("Failed to enable double-tap force quit", zap.Error(err))
	}

	metrics.SetServerStartTime(time.Now().Unix())

	// Start server in background goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	// Start signal listener in background
	go func() {
		if err := signals.Listen(cmd.Context()); err != nil {
			logger.Error("Signal handler error", zap.Error(err))
			errChan <- err
		}
	}()

	// Wait for error or shutdown completion
	if err := <-errChan; err != nil {
		return errwrap.WrapInternal(cmd.Context(), err, "server error")
	}

	return nil
}
