package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientRateLimiter_PerClientBuckets(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewClientRateLimiter(1, 2)
	limiter.now = func() time.Time { return now }

	assert.True(t, limiter.Allow("198.51.100.1"))
	assert.True(t, limiter.Allow("198.51.100.1"))
	assert.False(t, limiter.Allow("198.51.100.1"))
	assert.True(t, limiter.Allow("198.51.100.2"))

	now = now.Add(time.Second)
	assert.True(t, limiter.Allow("198.51.100.1"))
}

func TestClientRateLimiter_DisabledAllowsEverything(t *testing.T) {
	limiter := NewClientRateLimiter(0, 0)
	for i := 0; i < 100; i++ {
		require.True(t, limiter.Allow("198.51.100.1"))
	}

	var nilLimiter *ClientRateLimiter
	assert.True(t, nilLimiter.Allow("anyone"))
}

func TestClientRateLimiter_SweepsIdleClients(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewClientRateLimiter(1, 1)
	limiter.now = func() time.Time { return now }

	limiter.Allow("198.51.100.1")
	now = now.Add(2 * clientIdleTTL)
	limiter.Allow("198.51.100.2")

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	assert.Len(t, limiter.clients, 1)
	assert.Contains(t, limiter.clients, "198.51.100.2")
}

func TestClientRateLimiter_MiddlewareRejects(t *testing.T) {
	limiter := NewClientRateLimiter(0.001, 1)
	rejected := 0
	handler := limiter.Middleware(func(w http.ResponseWriter, r *http.Request) {
		rejected++
		w.WriteHeader(http.StatusTooManyRequests)
	})(okHandler())

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/domains", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/domains", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "1", second.Header().Get("Retry-After"))
	assert.Equal(t, 1, rejected)

	preflight := httptest.NewRecorder()
	handler.ServeHTTP(preflight, httptest.NewRequest(http.MethodOptions, "/api/domains", nil))
	assert.Equal(t, http.StatusOK, preflight.Code)
}
