package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fulmenhq/gofulmen/telemetry/exporters"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/namelens/domainideas/internal/errors"
	"github.com/namelens/domainideas/internal/observability"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func stubMetricsProxy(t *testing.T, transport roundTripFunc) {
	t.Helper()
	originalClient := metricsProxyClient
	metricsProxyClient = &http.Client{Transport: transport}

	originalExporter := observability.PrometheusExporter
	observability.PrometheusExporter = exporters.NewPrometheusExporter("test", ":9090")

	t.Cleanup(func() {
		metricsProxyClient = originalClient
		observability.PrometheusExporter = originalExporter
	})
}

func TestMetricsHandlerProxiesPrometheusOutput(t *testing.T) {
	var requested string
	stubMetricsProxy(t, func(req *http.Request) (*http.Response, error) {
		requested = req.URL.String()
		body := "# HELP domainideas_domain_suggestions_total Suggestions served\ndomainideas_domain_suggestions_total 3\n"
		resp := &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     make(http.Header),
		}
		resp.Header.Set("Content-Type", "text/plain; version=0.0.4")
		resp.Header.Set("Connection", "keep-alive")
		return resp, nil
	})

	rec := httptest.NewRecorder()
	newMetricsHandler(9555)(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	if observability.GetMetricsPort() == 0 {
		assert.Equal(t, "http://127.0.0.1:9555/metrics", requested)
	}
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
	assert.Empty(t, rec.Header().Get("Connection"))
	assert.Contains(t, rec.Body.String(), "domainideas_domain_suggestions_total 3")
}

func TestMetricsHandlerReportsUnreachableExporter(t *testing.T) {
	stubMetricsProxy(t, func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})

	rec := httptest.NewRecorder()
	newMetricsHandler(0)(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusBadGateway, rec.Code)
	var body apperrors.HTTPErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, apperrors.CodeExternalService, body.Error.Code)
}

func TestMetricsHandlerReturnsServiceUnavailableWithoutExporter(t *testing.T) {
	original := observability.PrometheusExporter
	observability.PrometheusExporter = nil
	t.Cleanup(func() { observability.PrometheusExporter = original })

	rec := httptest.NewRecorder()
	newMetricsHandler(0)(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var body apperrors.HTTPErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, apperrors.CodeServiceUnavailable, body.Error.Code)
}
