package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/namelens/domainideas/internal/observability"
)

// responseWriter wraps http.ResponseWriter to capture status code and response size
type responseWriter struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int64
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.bytesWritten += int64(n)
	return n, err
}

// knownEndpoints are the fixed paths reported as themselves when no chi
// route pattern is available.
var knownEndpoints = map[string]string{
	"/":               "/",
	"/version":        "/version",
	"/metrics":        "/metrics",
	"/api/domains":    "/api/domains",
	"/api/server-ip":  "/api/server-ip",
	"/api/health":     "/api/health",
	"/health":         "/health/*",
	"/health/live":    "/health/*",
	"/health/ready":   "/health/*",
	"/health/startup": "/health/*",
}

// getEndpointPattern extracts chi route pattern to avoid high-cardinality paths
func getEndpointPattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}

	path := strings.TrimRight(r.URL.Path, "/")
	if path == "" {
		path = "/"
	}
	if endpoint, ok := knownEndpoints[path]; ok {
		return endpoint
	}
	if strings.HasPrefix(path, "/api/") {
		return "/api/unknown"
	}
	return "/unknown"
}

// RequestMetrics records request counters, latency and sizes, then logs the
// completed request with its request ID.
func RequestMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		duration := time.Since(start)
		endpoint := getEndpointPattern(r)
		requestSize := contentLength(r)

		emitRequestMetrics(r.Method, endpoint, wrapped.statusCode, duration, requestSize, wrapped.bytesWritten)

		logger := observability.Logger()
		if logger == nil {
			return
		}
		fields := []zap.Field{
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("endpoint", endpoint),
			zap.Int("status", wrapped.statusCode),
			zap.Duration("duration", duration),
			zap.Int64("request_size", requestSize),
			zap.Int64("response_size", wrapped.bytesWritten),
			zap.String("requestID", GetRequestID(r.Context())),
		}
		// probes are polled constantly
		if strings.HasPrefix(endpoint, "/health") {
			logger.Debug("HTTP request completed", fields...)
			return
		}
		logger.Info("HTTP request completed", fields...)
	})
}

func contentLength(r *http.Request) int64 {
	if value := r.Header.Get("Content-Length"); value != "" {
		if size, err := strconv.ParseInt(value, 10, 64); err == nil {
			return size
		}
	}
	return 0
}

func emitRequestMetrics(method, endpoint string, status int, duration time.Duration, requestSize, responseSize int64) {
	telemetry := observability.TelemetrySystem
	if telemetry == nil {
		return
	}

	labels := map[string]string{
		"method":   method,
		"endpoint": endpoint,
		"status":   strconv.Itoa(status),
	}
	sizeLabels := map[string]string{
		"method":   method,
		"endpoint": endpoint,
	}

	_ = telemetry.Counter("http_requests_total", 1, labels)
	_ = telemetry.Histogram("http_request_duration_ms", duration, labels)
	_ = telemetry.Gauge("http_request_size_bytes", float64(requestSize), sizeLabels)
	_ = telemetry.Gauge("http_response_size_bytes", float64(responseSize), sizeLabels)

	if status < 400 {
		return
	}
	errorType := "client_error"
	if status >= 500 {
		errorType = "server_error"
	}
	_ = telemetry.Counter("http_errors_total", 1, map[string]string{
		"method":     method,
		"endpoint":   endpoint,
		"status":     strconv.Itoa(status),
		"error_type": errorType,
	})
}
