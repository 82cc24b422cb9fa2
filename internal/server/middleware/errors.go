package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/fulmenhq/gofulmen/errors"
	"go.uber.org/zap"

	"github.com/namelens/domainideas/internal/metrics"
	"github.com/namelens/domainideas/internal/observability"
)

// PanicCode is the error code written for a recovered panic.
const PanicCode = "INTERNAL_ERROR"

// PanicResponse mirrors the API error body. It lives here because the
// errors package depends on this one for request IDs.
type PanicResponse struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id,omitempty"`
	} `json:"error"`
}

// Recovery turns a panic into a 500 with a PanicCode body. The panic value
// and stack are logged, never returned.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}
			if recovered == http.ErrAbortHandler {
				panic(recovered)
			}
			recoverPanic(w, r, recovered)
		}()

		next.ServeHTTP(w, r)
	})
}

func recoverPanic(w http.ResponseWriter, r *http.Request, recovered any) {
	requestID := GetRequestID(r.Context())
	envelope := errors.NewErrorEnvelope(PanicCode, "internal server error").
		WithCorrelationID(requestID)
	envelope, _ = envelope.WithSeverity(errors.SeverityCritical)

	metrics.RecordPanic()
	if logger := observability.Logger(); logger != nil {
		logger.Error("Recovered from panic",
			zap.String("panic", fmt.Sprint(recovered)),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("request_id", requestID),
			zap.String("severity", string(envelope.Severity)),
			zap.ByteString("stack_trace", debug.Stack()))
	}

	var body PanicResponse
	body.Error.Code = envelope.Code
	body.Error.Message = envelope.Message
	body.Error.RequestID = envelope.CorrelationID

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(body)
}
