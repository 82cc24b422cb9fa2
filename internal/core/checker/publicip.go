package checker

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/namelens/domainideas/internal/metrics"
)

// DefaultIPLookupURL is an ipify-compatible endpoint returning {"ip": "..."}.
const DefaultIPLookupURL = "https://api.ipify.org?format=json"

const defaultIPLookupTimeout = 10 * time.Second

// IPResolver discovers the public IP address this process egresses from.
type IPResolver struct {
	URL     string
	Client  *http.Client
	Timeout time.Duration
}

type ipLookupResponse struct {
	IP string `json:"ip"`
}

// Lookup performs a single GET with no retry.
func (r *IPResolver) Lookup(ctx context.Context) (string, error) {
	ip, err := r.lookup(ctx)
	metrics.RecordClientIPLookup(err == nil)
	return ip, err
}

func (r *IPResolver) lookup(ctx context.Context) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	endpoint := DefaultIPLookupURL
	timeout := defaultIPLookupTimeout
	var client *http.Client
	if r != nil {
		if value := strings.TrimSpace(r.URL); value != "" {
			endpoint = value
		}
		if r.Timeout > 0 {
			timeout = r.Timeout
		}
		client = r.Client
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("build ip lookup request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := httpClient(client, timeout).Do(req)
	if err != nil {
		return "", fmt.Errorf("ip lookup request failed: %w", err)
	}

	body, err := readBody(resp)
	if err != nil {
		return "", fmt.Errorf("read ip lookup response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("ip lookup failed: status %d", resp.StatusCode)
	}

	var payload ipLookupResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("decode ip lookup response: %w", err)
	}

	ip := strings.TrimSpace(payload.IP)
	if net.ParseIP(ip) == nil {
		return "", fmt.Errorf("ip lookup returned an invalid address %q", payload.IP)
	}
	return ip, nil
}
