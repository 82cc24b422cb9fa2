package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func corsRequest(method, origin string) *http.Request {
	req := httptest.NewRequest(method, "/api/domains", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	if method == http.MethodOptions {
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	}
	return req
}

func TestCORS_WildcardAllowsAnyOrigin(t *testing.T) {
	rec := httptest.NewRecorder()
	CORS([]string{"*"})(okHandler()).ServeHTTP(rec, corsRequest(http.MethodGet, "https://ideas.example"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, http.CanonicalHeaderKey(RequestIDHeader), http.CanonicalHeaderKey(rec.Header().Get("Access-Control-Expose-Headers")))
}

func TestCORS_AllowListEchoesOrigin(t *testing.T) {
	handler := CORS([]string{" https://ideas.example/ "})(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, corsRequest(http.MethodGet, "https://ideas.example"))
	assert.Equal(t, "https://ideas.example", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Values("Vary"), "Origin")

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, corsRequest(http.MethodGet, "https://other.example"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Preflight(t *testing.T) {
	reached := false
	handler := CORS([]string{"https://ideas.example"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, corsRequest(http.MethodOptions, "https://ideas.example"))
	require.Less(t, rec.Code, http.StatusMultipleChoices)
	assert.False(t, reached, "preflight must not reach the handler")
	assert.Equal(t, "https://ideas.example", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodGet)
	assert.Equal(t, strconv.Itoa(CORSMaxAge), rec.Header().Get("Access-Control-Max-Age"))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, corsRequest(http.MethodOptions, "https://other.example"))
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.False(t, reached)
}

func TestCORS_EmptyListAdmitsAnyOrigin(t *testing.T) {
	opts := corsOptions([]string{"", "  "})
	assert.Equal(t, []string{"*"}, opts.AllowedOrigins)

	rec := httptest.NewRecorder()
	CORS(nil)(okHandler()).ServeHTTP(rec, corsRequest(http.MethodGet, ""))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
