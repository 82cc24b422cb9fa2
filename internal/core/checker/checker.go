package checker

import (
	"context"

	"github.com/namelens/domainideas/internal/core"
)

// Lookup is a registrar availability endpoint that answers for a batch of
// fully-qualified domain names.
type Lookup interface {
	// Name identifies the provider in logs and provenance.
	Name() string

	// Validate reports configuration problems without touching the network.
	Validate() error

	// CheckBatch returns one status per domain the provider answered for,
	// in provider order. The batch must not exceed the provider limit.
	CheckBatch(ctx context.Context, domains []string) ([]core.DomainStatus, error)
}

// IPBinder is implemented by lookups that must present the caller's
// allow-listed IP address on every request.
type IPBinder interface {
	// NeedsClientIP is true when no client IP has been configured.
	NeedsClientIP() bool

	// ClientIP returns the configured address, if any.
	ClientIP() string

	// WithClientIP returns a per-request copy bound to ip. An empty ip keeps
	// the configured address.
	WithClientIP(ip string) Lookup
}
