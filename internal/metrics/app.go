package metrics

import (
	"time"

	"github.com/namelens/domainideas/internal/observability"
)

// Suggestion pipeline metrics following Prometheus conventions
var (
	SuggestionsTotal          = "domain_suggestions_total"
	SuggestionDuration        = "domain_suggestion_duration_ms"
	CandidatesGenerated       = "domain_candidates_generated"
	AvailableDomainsFound     = "domain_available_found"
	RegistrarBatchesTotal     = "registrar_batches_total"
	RegistrarBatchDuration    = "registrar_batch_duration_ms"
	ClientIPLookupsTotal      = "client_ip_lookups_total"
	HealthCheckTotal          = "app_health_check_total"
	HealthCheckDuration       = "app_health_check_duration_ms"
	ServerStartTime           = "app_server_start_time_seconds"
	RegistrarCredentialsState = "registrar_credentials_configured"
)

// RecordSuggestion records one keyword lookup end to end.
func RecordSuggestion(provider string, outcome string, generated int, available int, duration time.Duration) {
	if observability.TelemetrySystem == nil {
		return
	}

	labels := map[string]string{
		"provider": provider,
		"outcome":  outcome,
	}

	_ = observability.TelemetrySystem.Counter(SuggestionsTotal, 1, labels)
	_ = observability.TelemetrySystem.Histogram(SuggestionDuration, duration, labels)
	_ = observability.TelemetrySystem.Gauge(CandidatesGenerated, float64(generated), map[string]string{"provider": provider})
	_ = observability.TelemetrySystem.Gauge(AvailableDomainsFound, float64(available), map[string]string{"provider": provider})
}

// RecordRegistrarBatch records one registrar batch call. Outcome is "ok",
// "skipped" or "aborted".
func RecordRegistrarBatch(provider string, outcome string, duration time.Duration) {
	if observability.TelemetrySystem == nil {
		return
	}

	labels := map[string]string{
		"provider": provider,
		"outcome":  outcome,
	}

	_ = observability.TelemetrySystem.Counter(RegistrarBatchesTotal, 1, labels)
	_ = observability.TelemetrySystem.Histogram(RegistrarBatchDuration, duration, labels)
}

// RecordClientIPLookup records an outbound caller IP discovery.
func RecordClientIPLookup(success bool) {
	if observability.TelemetrySystem == nil {
		return
	}

	status := "success"
	if !success {
		status = "failure"
	}
	_ = observability.TelemetrySystem.Counter(ClientIPLookupsTotal, 1, map[string]string{"status": status})
}

// SetCredentialsConfigured exposes whether registrar credentials look usable.
func SetCredentialsConfigured(configured bool) {
	if observability.TelemetrySystem == nil {
		return
	}

	value := 0.0
	if configured {
		value = 1
	}
	_ = observability.TelemetrySystem.Gauge(RegistrarCredentialsState, value, nil)
}

// RecordHealthCheck records a health check execution
func RecordHealthCheck(checkName string, healthy bool, duration time.Duration) {
	status := "healthy"
	if !healthy {
		status = "unhealthy"
	}

	if observability.TelemetrySystem != nil {
		_ = observability.TelemetrySystem.Counter(
			HealthCheckTotal,
			1,
			map[string]string{
				"check":  checkName,
				"status": status,
			},
		)

		_ = observability.TelemetrySystem.Histogram(
			HealthCheckDuration,
			duration,
			map[string]string{
				"check": checkName,
			},
		)
	}
}

// SetServerStartTime records the server start time (Unix timestamp)
func SetServerStartTime(timestamp int64) {
	if observability.TelemetrySystem != nil {
		_ = observability.TelemetrySystem.Gauge(ServerStartTime, float64(timestamp), nil)
	}
}
