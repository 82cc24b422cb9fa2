package checker

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fulmenhq/gofulmen/logging"
	"go.uber.org/zap"

	"github.com/namelens/domainideas/internal/core"
)

const (
	namecheapSource = "namecheap"

	// NamecheapEndpoint and NamecheapSandboxEndpoint are the XML API roots.
	NamecheapEndpoint        = "https://api.namecheap.com/xml.response"
	NamecheapSandboxEndpoint = "https://api.sandbox.namecheap.com/xml.response"

	// NamecheapMaxBatch is the most names one domains.check call accepts.
	NamecheapMaxBatch = 50

	namecheapCheckCommand   = "namecheap.domains.check"
	defaultNamecheapTimeout = 30 * time.Second
	responseExcerptBytes    = 500
)

// NamecheapLookup checks availability through the Namecheap XML API.
type NamecheapLookup struct {
	Credentials Credentials
	Endpoint    string
	Sandbox     bool
	Client      *http.Client
	Timeout     time.Duration
	Limiter     *EndpointLimiter
	Logger      *logging.Logger

	excerptLogged bool
}

type namecheapResponse struct {
	XMLName         xml.Name          `xml:"ApiResponse"`
	Status          string            `xml:"Status,attr"`
	Errors          []namecheapError  `xml:"Errors>Error"`
	CommandResponse *namecheapCommand `xml:"CommandResponse"`
}

type namecheapError struct {
	Number  string `xml:"Number,attr"`
	Message string `xml:",chardata"`
}

type namecheapCommand struct {
	Type    string                 `xml:"Type,attr"`
	Results []namecheapCheckResult `xml:"DomainCheckResult"`
}

type namecheapCheckResult struct {
	Domain        string `xml:"Domain,attr"`
	Available     string `xml:"Available,attr"`
	IsPremiumName string `xml:"IsPremiumName,attr"`
}

// Name returns the provider name.
func (n *NamecheapLookup) Name() string {
	return namecheapSource
}

// Validate rejects missing or placeholder credentials.
func (n *NamecheapLookup) Validate() error {
	if n == nil {
		return core.ConfigurationError("validate credentials", "registrar lookup is not configured", nil)
	}
	return n.Credentials.Validate()
}

// NeedsClientIP reports whether the client IP must be discovered.
func (n *NamecheapLookup) NeedsClientIP() bool {
	return n != nil && strings.TrimSpace(n.Credentials.ClientIP) == ""
}

// ClientIP returns the configured client IP.
func (n *NamecheapLookup) ClientIP() string {
	if n == nil {
		return ""
	}
	return strings.TrimSpace(n.Credentials.ClientIP)
}

// WithClientIP returns a copy bound to ip for the duration of one request.
func (n *NamecheapLookup) WithClientIP(ip string) Lookup {
	bound := *n
	bound.excerptLogged = false
	if value := strings.TrimSpace(ip); value != "" {
		bound.Credentials.ClientIP = value
	}
	return &bound
}

// CheckBatch issues one namecheap.domains.check call for up to 50 names.
func (n *NamecheapLookup) CheckBatch(ctx context.Context, domains []string) ([]core.DomainStatus, error) {
	const op = "namecheap check"

	if err := n.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(n.Credentials.ClientIP) == "" {
		return nil, core.ConfigurationError(op, "client ip is not set", nil)
	}
	if len(domains) == 0 {
		return nil, nil
	}
	if len(domains) > NamecheapMaxBatch {
		return nil, core.InvalidInput(op, fmt.Sprintf("batch of %d exceeds the limit of %d names", len(domains), NamecheapMaxBatch))
	}
	if ctx == nil {
		ctx = context.Background()
	}

	requestURL, err := n.requestURL(domains)
	if err != nil {
		return nil, core.ConfigurationError(op, "invalid registrar endpoint", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, core.ConfigurationError(op, "build registrar request", err)
	}
	req.Header.Set("Accept", "application/xml")

	if err := n.Limiter.Wait(ctx, req.URL.Hostname()); err != nil {
		if ctxErr := contextErr(ctx, err); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, core.TransientBatchError(op, err)
	}

	resp, err := httpClient(n.Client, n.timeout()).Do(req)
	if err != nil {
		if ctxErr := contextErr(ctx, err); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, core.TransientBatchError(op, redactURL(err))
	}

	body, err := readBody(resp)
	if err != nil {
		if ctxErr := contextErr(ctx, err); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, core.TransientBatchError(op, fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		n.logger(func(l *logging.Logger) {
			l.Warn("Registrar returned non-success status",
				zap.Int("status", resp.StatusCode),
				zap.String("body", excerpt(body, responseExcerptBytes)))
		})
		return nil, core.TransientBatchError(op, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	if !n.excerptLogged {
		n.excerptLogged = true
		n.logger(func(l *logging.Logger) {
			l.Debug("Registrar response excerpt",
				zap.Int("batch_size", len(domains)),
				zap.String("body", excerpt(body, responseExcerptBytes)))
		})
	}

	return n.parse(body)
}

func (n *NamecheapLookup) parse(body []byte) ([]core.DomainStatus, error) {
	const op = "namecheap parse"

	if len(bytes.TrimSpace(body)) == 0 {
		return nil, core.ProtocolError(op, "empty response from registrar", nil)
	}

	var doc namecheapResponse
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, core.ProtocolError(op, "failed to parse registrar XML", err)
	}

	if len(doc.Errors) > 0 {
		messages := make([]string, 0, len(doc.Errors))
		for _, e := range doc.Errors {
			msg := strings.TrimSpace(e.Message)
			if e.Number != "" {
				msg = fmt.Sprintf("%s (%s)", msg, e.Number)
			}
			messages = append(messages, msg)
		}
		return nil, core.UpstreamError(op, "registrar API error: "+strings.Join(messages, ", "))
	}

	if doc.CommandResponse == nil {
		return nil, core.ProtocolError(op, "unexpected registrar response structure", nil)
	}

	if len(doc.CommandResponse.Results) == 0 {
		n.logger(func(l *logging.Logger) {
			l.Warn("Registrar response carried no domain check results")
		})
		return nil, nil
	}

	statuses := make([]core.DomainStatus, 0, len(doc.CommandResponse.Results))
	for _, result := range doc.CommandResponse.Results {
		domain := strings.ToLower(strings.TrimSpace(result.Domain))
		if domain == "" {
			continue
		}
		statuses = append(statuses, core.DomainStatus{
			Domain:    domain,
			Available: strings.EqualFold(strings.TrimSpace(result.Available), "true"),
			Premium:   strings.EqualFold(strings.TrimSpace(result.IsPremiumName), "true"),
		})
	}
	return statuses, nil
}

func (n *NamecheapLookup) requestURL(domains []string) (string, error) {
	endpoint := strings.TrimSpace(n.Endpoint)
	if endpoint == "" {
		endpoint = NamecheapEndpoint
		if n.Sandbox {
			endpoint = NamecheapSandboxEndpoint
		}
	}

	base, err := url.Parse(endpoint)
	if err != nil {
		return "", err
	}
	if base.Scheme == "" || base.Host == "" {
		return "", fmt.Errorf("endpoint %q must be an absolute URL", endpoint)
	}

	query := url.Values{}
	query.Set("ApiUser", n.Credentials.APIUser)
	query.Set("ApiKey", n.Credentials.APIKey)
	query.Set("UserName", n.Credentials.Username)
	query.Set("Command", namecheapCheckCommand)
	query.Set("ClientIp", n.Credentials.ClientIP)
	query.Set("DomainList", strings.Join(domains, ","))
	base.RawQuery = query.Encode()

	return base.String(), nil
}

// redactURL drops the query string, which carries the API key, from
// transport errors before they reach logs.
func redactURL(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}
	redacted := *urlErr
	if parsed, parseErr := url.Parse(urlErr.URL); parseErr == nil {
		parsed.RawQuery = ""
		redacted.URL = parsed.String()
	} else {
		redacted.URL = ""
	}
	return &redacted
}

func (n *NamecheapLookup) timeout() time.Duration {
	if n.Timeout > 0 {
		return n.Timeout
	}
	return defaultNamecheapTimeout
}

func (n *NamecheapLookup) logger(fn func(*logging.Logger)) {
	if n.Logger != nil {
		fn(n.Logger)
	}
}
