package engine

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/namelens/domainideas/internal/core"
	"github.com/namelens/domainideas/internal/core/checker"
)

type stubLookup struct {
	validateErr error
	seen        [][]string
	available   map[string]bool
}

func (s *stubLookup) Name() string { return "stub" }

func (s *stubLookup) Validate() error { return s.validateErr }

func (s *stubLookup) CheckBatch(ctx context.Context, domains []string) ([]core.DomainStatus, error) {
	s.seen = append(s.seen, domains)
	statuses := make([]core.DomainStatus, 0, len(domains))
	for _, domain := range domains {
		statuses = append(statuses, core.DomainStatus{Domain: domain, Available: s.available[domain]})
	}
	return statuses, nil
}

type stubResolver struct {
	ip    string
	err   error
	calls int
}

func (s *stubResolver) Lookup(ctx context.Context) (string, error) {
	s.calls++
	return s.ip, s.err
}

func noSleep(ctx context.Context, d time.Duration) error { return nil }

func TestSuggestReturnsAvailableDomains(t *testing.T) {
	lookup := &stubLookup{available: map[string]bool{"ourhomewarranty.com": true, "myhomewarranty.com": true}}
	clock := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	suggester := &Suggester{
		Lookup:      lookup,
		Sleep:       noSleep,
		ToolVersion: "1.2.3",
		Clock:       func() time.Time { return clock },
	}

	result, err := suggester.Suggest(context.Background(), core.SuggestRequest{Keyword: "Home Warranty", TLD: ".com", MaxCount: 5})
	require.NoError(t, err)
	require.Equal(t, "Home Warranty", result.Keyword)
	require.Equal(t, "com", result.TLD)
	require.Equal(t, 5, result.TotalGenerated)
	require.Equal(t, 2, result.Available)
	require.Equal(t, []string{"myhomewarranty.com", "ourhomewarranty.com"}, result.Domains)
	require.Equal(t, "stub", result.Provenance.Source)
	require.Equal(t, 1, result.Provenance.Batches)
	require.Equal(t, clock, result.Provenance.RequestedAt)
	require.Equal(t, "1.2.3", result.Provenance.ToolVersion)
	require.NotEmpty(t, result.Provenance.CheckID)
}

func TestSuggestDefaultCountAndBatches(t *testing.T) {
	lookup := &stubLookup{}
	suggester := &Suggester{Lookup: lookup, Sleep: noSleep}

	result, err := suggester.Suggest(context.Background(), core.SuggestRequest{Keyword: "garden", TLD: "com"})
	require.NoError(t, err)
	require.Equal(t, core.DefaultSuggestionCount, result.TotalGenerated)
	require.Len(t, lookup.seen, 5)
	require.NotNil(t, result.Domains)
	require.Empty(t, result.Domains)
}

func TestSuggestClampsMaxCount(t *testing.T) {
	suggester := &Suggester{Lookup: &stubLookup{}, Sleep: noSleep, MaxCount: 20, DefaultCount: 10}

	result, err := suggester.Suggest(context.Background(), core.SuggestRequest{Keyword: "garden", TLD: "com", MaxCount: 900})
	require.NoError(t, err)
	require.Equal(t, 20, result.TotalGenerated)

	result, err = suggester.Suggest(context.Background(), core.SuggestRequest{Keyword: "garden", TLD: "com"})
	require.NoError(t, err)
	require.Equal(t, 10, result.TotalGenerated)
}

func TestSuggestInvalidInput(t *testing.T) {
	lookup := &stubLookup{}
	suggester := &Suggester{Lookup: lookup, Sleep: noSleep}

	for _, req := range []core.SuggestRequest{
		{Keyword: "", TLD: "com"},
		{Keyword: "home", TLD: ""},
		{Keyword: "home", TLD: "c om"},
		{Keyword: "home", TLD: "com", MaxCount: -1},
		{Keyword: "***", TLD: "com"},
		{Keyword: strings.Repeat("x", 60), TLD: "com"},
	} {
		_, err := suggester.Suggest(context.Background(), req)
		require.Error(t, err)
		require.Equal(t, core.KindInvalidInput, core.KindOf(err), "%+v", req)
	}
	require.Empty(t, lookup.seen)
}

func TestSuggestConfigurationErrorBeforeNetwork(t *testing.T) {
	resolver := &stubResolver{ip: "203.0.113.1"}
	lookup := &stubLookup{validateErr: core.ConfigurationError("validate", "placeholder", nil)}
	suggester := &Suggester{Lookup: lookup, IPResolver: resolver}

	_, err := suggester.Suggest(context.Background(), core.SuggestRequest{Keyword: "home", TLD: "com"})
	require.Equal(t, core.KindConfiguration, core.KindOf(err))
	require.Empty(t, lookup.seen)
	require.Zero(t, resolver.calls)

	_, err = (&Suggester{}).Suggest(context.Background(), core.SuggestRequest{Keyword: "home", TLD: "com"})
	require.Equal(t, core.KindConfiguration, core.KindOf(err))
}

func TestSuggestResolvesClientIPForNamecheap(t *testing.T) {
	var seenIP atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenIP.Store(r.URL.Query().Get("ClientIp"))
		_, _ = w.Write([]byte(`<ApiResponse Status="OK"><Errors/><CommandResponse>` +
			`<DomainCheckResult Domain="myhome.com" Available="true" IsPremiumName="false"/>` +
			`</CommandResponse></ApiResponse>`))
	}))
	defer server.Close()

	resolver := &stubResolver{ip: "198.51.100.9"}
	lookup := &checker.NamecheapLookup{
		Credentials: checker.Credentials{APIUser: "u", APIKey: "k", Username: "n"},
		Endpoint:    server.URL,
	}
	suggester := &Suggester{Lookup: lookup, IPResolver: resolver, Sleep: noSleep}

	result, err := suggester.Suggest(context.Background(), core.SuggestRequest{Keyword: "home", TLD: "com", MaxCount: 3})
	require.NoError(t, err)
	require.Equal(t, []string{"myhome.com"}, result.Domains)
	require.Equal(t, "198.51.100.9", result.Provenance.ClientIP)
	require.Equal(t, "198.51.100.9", seenIP.Load())
	require.Equal(t, 1, resolver.calls)
	require.Empty(t, lookup.Credentials.ClientIP)
}

func TestSuggestConfiguredClientIPSkipsLookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<ApiResponse Status="OK"><Errors/><CommandResponse/></ApiResponse>`))
	}))
	defer server.Close()

	resolver := &stubResolver{ip: "198.51.100.9"}
	lookup := &checker.NamecheapLookup{
		Credentials: checker.Credentials{APIUser: "u", APIKey: "k", Username: "n", ClientIP: "192.0.2.10"},
		Endpoint:    server.URL,
	}
	suggester := &Suggester{Lookup: lookup, IPResolver: resolver, Sleep: noSleep}

	result, err := suggester.Suggest(context.Background(), core.SuggestRequest{Keyword: "home", TLD: "com", MaxCount: 3})
	require.NoError(t, err)
	require.Zero(t, resolver.calls)
	require.Equal(t, "192.0.2.10", result.Provenance.ClientIP)
}

func TestSuggestClientIPFailureIsConfigurationError(t *testing.T) {
	resolver := &stubResolver{err: errors.New("network unreachable")}
	lookup := &checker.NamecheapLookup{
		Credentials: checker.Credentials{APIUser: "u", APIKey: "k", Username: "n"},
		Endpoint:    "http://127.0.0.1:1",
	}
	suggester := &Suggester{Lookup: lookup, IPResolver: resolver}

	_, err := suggester.Suggest(context.Background(), core.SuggestRequest{Keyword: "home", TLD: "com"})
	require.Equal(t, core.KindConfiguration, core.KindOf(err))
	require.Contains(t, core.HintOf(err), "client_ip")
}

func TestIdeasMakesNoLookup(t *testing.T) {
	lookup := &stubLookup{}
	suggester := &Suggester{Lookup: lookup}

	ideas, tld, err := suggester.Ideas(core.SuggestRequest{Keyword: "tea", TLD: "IO", MaxCount: 2})
	require.NoError(t, err)
	require.Equal(t, "io", tld)
	require.Equal(t, []string{"mytea.io", "minetea.io"}, ideas)
	require.Empty(t, lookup.seen)
}
