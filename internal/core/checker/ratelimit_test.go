package checker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEndpointLimiterBurstThenBlocks(t *testing.T) {
	limiter := &EndpointLimiter{
		Limits: map[string]RateLimit{
			"registrar.test": {RequestsPerWindow: 2, WindowDuration: time.Hour},
		},
	}

	require.NoError(t, limiter.Wait(context.Background(), "registrar.test"))
	require.NoError(t, limiter.Wait(context.Background(), "Registrar.Test"))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	require.Error(t, limiter.Wait(ctx, "registrar.test"))
}

func TestEndpointLimiterSeparatesHosts(t *testing.T) {
	limiter := &EndpointLimiter{
		Limits: map[string]RateLimit{
			"a.test": {RequestsPerWindow: 1, WindowDuration: time.Hour},
			"b.test": {RequestsPerWindow: 1, WindowDuration: time.Hour},
		},
	}

	require.NoError(t, limiter.Wait(context.Background(), "a.test"))
	require.NoError(t, limiter.Wait(context.Background(), "b.test"))
}

func TestEndpointLimiterNilIsNoop(t *testing.T) {
	var limiter *EndpointLimiter
	require.NoError(t, limiter.Wait(context.Background(), "anything"))
}

func TestEndpointLimiterFallsBackForUnknownHosts(t *testing.T) {
	limiter := &EndpointLimiter{}
	require.Equal(t, fallbackLimit, limiter.limitFor("unknown.example"))
	require.Equal(t, DefaultLimits["api.namecheap.com"], limiter.limitFor("api.namecheap.com"))
}
