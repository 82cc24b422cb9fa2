package checker

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/namelens/domainideas/internal/core"
)

const namecheapOK = `<?xml version="1.0" encoding="utf-8"?>
<ApiResponse Status="OK" xmlns="http://api.namecheap.com/xml.response">
  <Errors />
  <Warnings />
  <RequestedCommand>namecheap.domains.check</RequestedCommand>
  <CommandResponse Type="namecheap.domains.check">
    <DomainCheckResult Domain="myhome.com" Available="false" ErrorNo="0" Description="" IsPremiumName="false" />
    <DomainCheckResult Domain="ourhome.com" Available="true" ErrorNo="0" Description="" IsPremiumName="false" />
    <DomainCheckResult Domain="yourhome.com" Available="true" ErrorNo="0" Description="" IsPremiumName="true" />
  </CommandResponse>
  <Server>PHX01APIEXT03</Server>
  <ExecutionTime>0.2</ExecutionTime>
</ApiResponse>`

const namecheapAPIError = `<?xml version="1.0" encoding="utf-8"?>
<ApiResponse Status="ERROR" xmlns="http://api.namecheap.com/xml.response">
  <Errors>
    <Error Number="1011102">Parameter APIKey is invalid</Error>
  </Errors>
  <CommandResponse />
</ApiResponse>`

const namecheapNoResults = `<?xml version="1.0" encoding="utf-8"?>
<ApiResponse Status="OK" xmlns="http://api.namecheap.com/xml.response">
  <Errors />
  <CommandResponse Type="namecheap.domains.check"></CommandResponse>
</ApiResponse>`

const namecheapNoCommand = `<?xml version="1.0" encoding="utf-8"?>
<ApiResponse Status="OK" xmlns="http://api.namecheap.com/xml.response">
  <Errors />
</ApiResponse>`

func testCredentials() Credentials {
	return Credentials{APIUser: "alice", APIKey: "secret", Username: "alice", ClientIP: "203.0.113.7"}
}

func namecheapServer(t *testing.T, status int, body string, calls *int32) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			atomic.AddInt32(calls, 1)
		}
		w.Header().Set("Content-Type", "text/xml")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestNamecheapLookupParsesResults(t *testing.T) {
	var captured *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Clone(context.Background())
		_, _ = w.Write([]byte(namecheapOK))
	}))
	defer server.Close()

	lookup := &NamecheapLookup{Credentials: testCredentials(), Endpoint: server.URL, Client: server.Client()}

	statuses, err := lookup.CheckBatch(context.Background(), []string{"myhome.com", "ourhome.com", "yourhome.com"})
	require.NoError(t, err)
	require.Equal(t, []core.DomainStatus{
		{Domain: "myhome.com", Available: false},
		{Domain: "ourhome.com", Available: true},
		{Domain: "yourhome.com", Available: true, Premium: true},
	}, statuses)

	require.NotNil(t, captured)
	query := captured.URL.Query()
	require.Equal(t, "alice", query.Get("ApiUser"))
	require.Equal(t, "secret", query.Get("ApiKey"))
	require.Equal(t, "alice", query.Get("UserName"))
	require.Equal(t, "namecheap.domains.check", query.Get("Command"))
	require.Equal(t, "203.0.113.7", query.Get("ClientIp"))
	require.Equal(t, "myhome.com,ourhome.com,yourhome.com", query.Get("DomainList"))
	require.Equal(t, "application/xml", captured.Header.Get("Accept"))
}

func TestNamecheapLookupAPIErrorIsUpstream(t *testing.T) {
	server := namecheapServer(t, http.StatusOK, namecheapAPIError, nil)
	lookup := &NamecheapLookup{Credentials: testCredentials(), Endpoint: server.URL}

	_, err := lookup.CheckBatch(context.Background(), []string{"a.com"})
	require.Error(t, err)
	require.Equal(t, core.KindUpstream, core.KindOf(err))
	require.Contains(t, err.Error(), "Parameter APIKey is invalid")
	require.Contains(t, err.Error(), "1011102")
}

func TestNamecheapLookupProtocolErrors(t *testing.T) {
	for name, body := range map[string]string{
		"empty":      "  \n",
		"malformed":  "<ApiResponse><CommandResponse>",
		"no command": namecheapNoCommand,
		"not xml":    "Service Unavailable",
	} {
		t.Run(name, func(t *testing.T) {
			server := namecheapServer(t, http.StatusOK, body, nil)
			lookup := &NamecheapLookup{Credentials: testCredentials(), Endpoint: server.URL}

			_, err := lookup.CheckBatch(context.Background(), []string{"a.com"})
			require.Error(t, err)
			require.Equal(t, core.KindProtocol, core.KindOf(err))
		})
	}
}

func TestNamecheapLookupMissingResultsIsEmpty(t *testing.T) {
	server := namecheapServer(t, http.StatusOK, namecheapNoResults, nil)
	lookup := &NamecheapLookup{Credentials: testCredentials(), Endpoint: server.URL}

	statuses, err := lookup.CheckBatch(context.Background(), []string{"a.com"})
	require.NoError(t, err)
	require.Empty(t, statuses)
}

func TestNamecheapLookupHTTPStatusIsTransient(t *testing.T) {
	server := namecheapServer(t, http.StatusBadGateway, "bad gateway", nil)
	lookup := &NamecheapLookup{Credentials: testCredentials(), Endpoint: server.URL}

	_, err := lookup.CheckBatch(context.Background(), []string{"a.com"})
	require.Error(t, err)
	require.Equal(t, core.KindTransientBatch, core.KindOf(err))
	require.False(t, core.IsFatal(err))
}

func TestNamecheapLookupTimeoutIsTransient(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	lookup := &NamecheapLookup{Credentials: testCredentials(), Endpoint: server.URL, Timeout: 50 * time.Millisecond}

	_, err := lookup.CheckBatch(context.Background(), []string{"a.com"})
	require.Error(t, err)
	require.Equal(t, core.KindTransientBatch, core.KindOf(err))
}

func TestNamecheapLookupPlaceholderMakesNoRequest(t *testing.T) {
	var calls int32
	server := namecheapServer(t, http.StatusOK, namecheapOK, &calls)

	creds := testCredentials()
	creds.APIKey = PlaceholderAPIKey
	lookup := &NamecheapLookup{Credentials: creds, Endpoint: server.URL}

	_, err := lookup.CheckBatch(context.Background(), []string{"a.com"})
	require.Error(t, err)
	require.Equal(t, core.KindConfiguration, core.KindOf(err))
	require.Equal(t, int32(0), atomic.LoadInt32(&calls))

	checker := &AvailabilityChecker{Lookup: lookup}
	_, err = checker.CheckAvailability(context.Background(), []string{"a.com", "b.com"})
	require.Equal(t, core.KindConfiguration, core.KindOf(err))
	require.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestNamecheapLookupRequiresClientIP(t *testing.T) {
	var calls int32
	server := namecheapServer(t, http.StatusOK, namecheapOK, &calls)

	creds := testCredentials()
	creds.ClientIP = ""
	lookup := &NamecheapLookup{Credentials: creds, Endpoint: server.URL}
	require.True(t, lookup.NeedsClientIP())
	require.NoError(t, lookup.Validate())

	_, err := lookup.CheckBatch(context.Background(), []string{"a.com"})
	require.Equal(t, core.KindConfiguration, core.KindOf(err))
	require.Equal(t, int32(0), atomic.LoadInt32(&calls))

	bound := lookup.WithClientIP("198.51.100.4")
	_, err = bound.CheckBatch(context.Background(), []string{"ourhome.com"})
	require.NoError(t, err)
	require.Equal(t, int32(1), atomic.LoadInt32(&calls))
	require.Empty(t, lookup.Credentials.ClientIP)
}

func TestNamecheapLookupWithEmptyClientIPKeepsConfigured(t *testing.T) {
	lookup := &NamecheapLookup{Credentials: testCredentials()}
	bound := lookup.WithClientIP("").(*NamecheapLookup)
	require.Equal(t, "203.0.113.7", bound.Credentials.ClientIP)
	require.NotSame(t, lookup, bound)
}

func TestNamecheapLookupRejectsOversizedBatch(t *testing.T) {
	lookup := &NamecheapLookup{Credentials: testCredentials(), Endpoint: "http://127.0.0.1:1"}
	_, err := lookup.CheckBatch(context.Background(), candidates(NamecheapMaxBatch+1))
	require.Equal(t, core.KindInvalidInput, core.KindOf(err))
}

func TestNamecheapLookupEndpointSelection(t *testing.T) {
	lookup := &NamecheapLookup{Credentials: testCredentials()}
	u, err := lookup.requestURL([]string{"a.com"})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(u, NamecheapEndpoint+"?"))

	lookup.Sandbox = true
	u, err = lookup.requestURL([]string{"a.com"})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(u, NamecheapSandboxEndpoint+"?"))

	lookup.Endpoint = "not a url"
	_, err = lookup.requestURL([]string{"a.com"})
	require.Error(t, err)
}

func TestOneTimedOutBatchOfThree(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		call := atomic.AddInt32(&calls, 1)
		if call == 2 {
			w.WriteHeader(http.StatusGatewayTimeout)
			return
		}
		first := strings.Split(r.URL.Query().Get("DomainList"), ",")[0]
		_, _ = w.Write([]byte(`<ApiResponse Status="OK"><Errors/><CommandResponse>` +
			`<DomainCheckResult Domain="` + first + `" Available="true" IsPremiumName="false"/>` +
			`</CommandResponse></ApiResponse>`))
	}))
	defer server.Close()

	lookup := &NamecheapLookup{Credentials: testCredentials(), Endpoint: server.URL}
	checker := &AvailabilityChecker{Lookup: lookup, Sleep: (&recordingSleeper{}).Sleep}

	result, err := checker.CheckAvailability(context.Background(), candidates(150))
	require.NoError(t, err)
	require.Equal(t, []string{"name000.com", "name100.com"}, result)
	require.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestCredentialsConfigured(t *testing.T) {
	require.True(t, testCredentials().Configured())

	creds := testCredentials()
	creds.ClientIP = ""
	require.True(t, creds.Configured(), "client IP is discovered when unset")

	creds.ClientIP = PlaceholderClientIP
	require.False(t, creds.Configured())

	creds = testCredentials()
	creds.Username = PlaceholderUsername
	require.False(t, creds.Configured())
	require.Equal(t, core.KindConfiguration, core.KindOf(creds.Validate()))

	require.Equal(t, core.KindConfiguration, core.KindOf(Credentials{}.Validate()))
}

func TestRedactURLDropsCredentials(t *testing.T) {
	lookup := &NamecheapLookup{Credentials: testCredentials(), Endpoint: "http://127.0.0.1:1/xml.response", Timeout: time.Second}

	_, err := lookup.CheckBatch(context.Background(), []string{"a.com"})
	require.Error(t, err)
	require.Equal(t, core.KindTransientBatch, core.KindOf(err))
	require.NotContains(t, err.Error(), "secret")
	require.Contains(t, err.Error(), "127.0.0.1:1/xml.response")
}
