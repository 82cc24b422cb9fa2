package checker

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimit represents a request budget over a window.
type RateLimit struct {
	RequestsPerWindow int
	WindowDuration    time.Duration
}

// DefaultLimits provides conservative defaults per endpoint host.
var DefaultLimits = map[string]RateLimit{
	"api.namecheap.com":         {RequestsPerWindow: 50, WindowDuration: time.Minute},
	"api.sandbox.namecheap.com": {RequestsPerWindow: 50, WindowDuration: time.Minute},
	"rdap.verisign.com":         {RequestsPerWindow: 30, WindowDuration: time.Minute},
	"pubapi.registry.google":    {RequestsPerWindow: 30, WindowDuration: time.Minute},
	"www.rdap.net":              {RequestsPerWindow: 30, WindowDuration: time.Minute},
}

var fallbackLimit = RateLimit{RequestsPerWindow: 30, WindowDuration: time.Minute}

// EndpointLimiter throttles outbound calls per endpoint host. The zero value
// uses DefaultLimits.
type EndpointLimiter struct {
	Limits map[string]RateLimit

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// Wait blocks until a call to endpoint is allowed or ctx ends.
func (l *EndpointLimiter) Wait(ctx context.Context, endpoint string) error {
	if l == nil {
		return nil
	}
	return l.limiter(endpoint).Wait(ctx)
}

func (l *EndpointLimiter) limiter(endpoint string) *rate.Limiter {
	key := strings.ToLower(strings.TrimSpace(endpoint))

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.limiters == nil {
		l.limiters = make(map[string]*rate.Limiter)
	}
	if limiter, ok := l.limiters[key]; ok {
		return limiter
	}

	limit := l.limitFor(key)
	every := limit.WindowDuration / time.Duration(limit.RequestsPerWindow)
	limiter := rate.NewLimiter(rate.Every(every), limit.RequestsPerWindow)
	l.limiters[key] = limiter
	return limiter
}

func (l *EndpointLimiter) limitFor(endpoint string) RateLimit {
	limits := l.Limits
	if limits == nil {
		limits = DefaultLimits
	}
	if limit, ok := limits[endpoint]; ok && limit.RequestsPerWindow > 0 && limit.WindowDuration > 0 {
		return limit
	}
	return fallbackLimit
}
