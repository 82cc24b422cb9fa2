package checker

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/fulmenhq/gofulmen/logging"
	"github.com/openrdap/rdap"
	"go.uber.org/zap"

	"github.com/namelens/domainideas/internal/core"
)

const (
	rdapSource = "rdap"

	// RDAPMaxBatch caps how many names one batch sends, one query per name.
	RDAPMaxBatch = 50

	defaultRDAPTimeout = 10 * time.Second
)

var defaultRDAPOverrides = map[string][]string{
	"app": {"https://pubapi.registry.google/rdap", "https://www.rdap.net/rdap"},
	"dev": {"https://pubapi.registry.google/rdap", "https://www.rdap.net/rdap"},
}

// RDAPLookup answers availability from registry RDAP servers. It needs no
// credentials; servers come from the IANA bootstrap registry unless a TLD
// override applies.
type RDAPLookup struct {
	Client  *rdap.Client
	Timeout time.Duration
	Limiter *EndpointLimiter
	Logger  *logging.Logger

	// Overrides routes specific TLDs to known-good RDAP servers. Keys are
	// TLDs without a leading dot.
	Overrides map[string][]string
}

type rdapVerdict int

const (
	rdapUnknown rdapVerdict = iota
	rdapAvailable
	rdapTaken
)

// Name returns the provider name.
func (r *RDAPLookup) Name() string {
	return rdapSource
}

// Validate always succeeds; RDAP is anonymous.
func (r *RDAPLookup) Validate() error {
	return nil
}

// CheckBatch queries each domain in turn. Names whose lookup fails are left
// out; a batch where every lookup failed is a transient batch error.
func (r *RDAPLookup) CheckBatch(ctx context.Context, domains []string) ([]core.DomainStatus, error) {
	const op = "rdap check"

	if len(domains) == 0 {
		return nil, nil
	}
	if len(domains) > RDAPMaxBatch {
		return nil, core.InvalidInput(op, fmt.Sprintf("batch of %d exceeds the limit of %d names", len(domains), RDAPMaxBatch))
	}
	if ctx == nil {
		ctx = context.Background()
	}

	statuses := make([]core.DomainStatus, 0, len(domains))
	var lastErr error
	for _, domain := range domains {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		verdict, err := r.checkOne(ctx, domain)
		if err != nil {
			if ctxErr := contextErr(ctx, err); ctxErr != nil {
				return nil, ctxErr
			}
			lastErr = err
			if r.Logger != nil {
				r.Logger.Debug("RDAP lookup failed",
					zap.String("domain", domain),
					zap.Error(err))
			}
			continue
		}
		if verdict == rdapUnknown {
			continue
		}
		statuses = append(statuses, core.DomainStatus{
			Domain:    domain,
			Available: verdict == rdapAvailable,
		})
	}

	if len(statuses) == 0 && lastErr != nil {
		return nil, core.TransientBatchError(op, lastErr)
	}
	return statuses, nil
}

func (r *RDAPLookup) checkOne(ctx context.Context, domain string) (rdapVerdict, error) {
	client := r.Client
	if client == nil {
		client = &rdap.Client{}
	}

	servers := r.overrideServers(domain)
	if len(servers) == 0 {
		// no server selects the IANA bootstrap registry
		servers = []string{""}
	}

	var lastErr error
	for _, server := range servers {
		req := rdap.NewDomainRequest(domain)
		endpoint := rdapSource
		if server != "" {
			serverURL, err := url.Parse(server)
			if err != nil {
				return rdapUnknown, fmt.Errorf("invalid rdap server url: %w", err)
			}
			req = req.WithServer(serverURL)
			endpoint = serverURL.Hostname()
		}
		if err := r.Limiter.Wait(ctx, endpoint); err != nil {
			return rdapUnknown, err
		}
		req.Timeout = r.timeout()
		req = req.WithContext(ctx)

		resp, err := client.Do(req)
		statusCode := responseStatus(resp)
		if err != nil {
			if isNotFound(err) || statusCode == 404 {
				return rdapAvailable, nil
			}
			lastErr = err
			continue
		}

		if _, ok := resp.Object.(*rdap.Domain); ok {
			return rdapTaken, nil
		}
		lastErr = fmt.Errorf("unexpected rdap response for %s", domain)
	}

	return rdapUnknown, lastErr
}

func (r *RDAPLookup) overrideServers(domain string) []string {
	idx := strings.LastIndex(domain, ".")
	if idx < 0 {
		return nil
	}
	tld := strings.ToLower(domain[idx+1:])

	overrides := defaultRDAPOverrides
	if r.Overrides != nil {
		overrides = r.Overrides
	}
	return overrides[tld]
}

func (r *RDAPLookup) timeout() time.Duration {
	if r.Timeout > 0 {
		return r.Timeout
	}
	return defaultRDAPTimeout
}

func responseStatus(resp *rdap.Response) int {
	if resp == nil || len(resp.HTTP) == 0 || resp.HTTP[0] == nil || resp.HTTP[0].Response == nil {
		return 0
	}
	return resp.HTTP[0].Response.StatusCode
}

func isNotFound(err error) bool {
	if err == nil {
		return false
	}

	clientErr, ok := err.(*rdap.ClientError)
	if !ok {
		return false
	}

	return clientErr.Type == rdap.ObjectDoesNotExist
}
