package server

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fulmenhq/gofulmen/errors"
	"go.uber.org/zap"

	apperrors "github.com/namelens/domainideas/internal/errors"
	"github.com/namelens/domainideas/internal/observability"
)

const defaultMetricsPort = 9090

var metricsProxyClient = &http.Client{
	Timeout: 5 * time.Second,
}

// hopByHopHeaders are not forwarded from the exporter response.
var hopByHopHeaders = map[string]struct{}{
	"Connection":          {},
	"Keep-Alive":          {},
	"Proxy-Authenticate":  {},
	"Proxy-Authorization": {},
	"Te":                  {},
	"Trailer":             {},
	"Transfer-Encoding":   {},
	"Upgrade":             {},
}

// newMetricsHandler proxies Prometheus metrics from the internal exporter so
// callers can scrape /metrics on the main HTTP port. configuredPort is used
// when the exporter has not reported the port it bound.
func newMetricsHandler(configuredPort int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if observability.PrometheusExporter == nil {
			apperrors.RespondWithError(w, r, errors.NewErrorEnvelope(apperrors.CodeServiceUnavailable, "Metrics exporter not initialized"))
			return
		}

		port := observability.GetMetricsPort()
		if port == 0 {
			port = configuredPort
		}
		if port == 0 {
			port = defaultMetricsPort
		}
		metricsURL := fmt.Sprintf("http://127.0.0.1:%d/metrics", port)

		req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, metricsURL, nil)
		if err != nil {
			apperrors.RespondWithError(w, r, apperrors.WrapInternal(r.Context(), err, "Unable to construct metrics request"))
			return
		}
		if accept := r.Header.Get("Accept"); accept != "" {
			req.Header.Set("Accept", accept)
		}

		resp, err := metricsProxyClient.Do(req)
		if err != nil {
			apperrors.RespondWithError(w, r, apperrors.WrapExternalService(r.Context(), err, "Prometheus exporter unavailable"))
			return
		}
		defer func() {
			if err := resp.Body.Close(); err != nil {
				if logger := observability.Logger(); logger != nil {
					logger.Warn("Failed to close metrics response body", zap.Error(err))
				}
			}
		}()

		for key, values := range resp.Header {
			if _, skip := hopByHopHeaders[http.CanonicalHeaderKey(key)]; skip {
				continue
			}
			for _, v := range values {
				w.Header().Add(key, v)
			}
		}
		if resp.Header.Get("Content-Type") == "" {
			w.Header().Set("Content-Type", "text/plain; version=0.0.4")
		}

		w.WriteHeader(resp.StatusCode)
		if _, err := io.Copy(w, resp.Body); err != nil {
			if logger := observability.Logger(); logger != nil {
				logger.Warn("Failed to write metrics response", zap.Error(err))
			}
		}
	}
}
