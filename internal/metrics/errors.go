package metrics

import (
	"strconv"

	"github.com/namelens/domainideas/internal/observability"
)

// Error metric names
const (
	ErrorsTotalName      = "errors_total"
	ErrorsByKindName     = "errors_by_kind"
	PanicsTotalName      = "panics_total"
	unclassifiedKindName = "unclassified"
)

// RecordError counts an error response by its code and HTTP status.
func RecordError(errorCode string, httpStatus int) {
	if observability.TelemetrySystem == nil {
		return
	}
	_ = observability.TelemetrySystem.Counter(ErrorsTotalName, 1, map[string]string{
		"error_code":  errorCode,
		"http_status": strconv.Itoa(httpStatus),
	})
}

// RecordErrorKind counts failures by domain error kind (invalid_input,
// configuration, protocol, upstream, transient_batch). An empty kind is
// recorded as unclassified.
func RecordErrorKind(kind string) {
	if observability.TelemetrySystem == nil {
		return
	}
	if kind == "" {
		kind = unclassifiedKindName
	}
	_ = observability.TelemetrySystem.Counter(ErrorsByKindName, 1, map[string]string{"kind": kind})
}

// RecordPanic records a panic recovery
func RecordPanic() {
	if observability.TelemetrySystem == nil {
		return
	}
	_ = observability.TelemetrySystem.Counter(PanicsTotalName, 1, nil)
}
