package config

import (
	"strings"

	"github.com/fulmenhq/gofulmen/logging"

	"github.com/namelens/domainideas/internal/core/checker"
	"github.com/namelens/domainideas/internal/core/engine"
	"github.com/namelens/domainideas/internal/core/generator"
)

// Credentials returns the registrar account fields.
func (r RegistrarConfig) Credentials() checker.Credentials {
	return checker.Credentials{
		APIUser:  strings.TrimSpace(r.APIUser),
		APIKey:   strings.TrimSpace(r.APIKey),
		Username: strings.TrimSpace(r.Username),
		ClientIP: strings.TrimSpace(r.ClientIP),
	}
}

// HasCredentials reports whether the selected provider can run. RDAP needs
// none; Namecheap needs a non-placeholder account.
func (r RegistrarConfig) HasCredentials() bool {
	if r.Provider == ProviderRDAP {
		return true
	}
	return r.Credentials().Configured()
}

// NewLookup builds the availability provider selected by registrar.provider.
// Both providers share one outbound limiter.
func (c *Config) NewLookup(logger *logging.Logger) checker.Lookup {
	limiter := &checker.EndpointLimiter{}

	if c.Registrar.Provider == ProviderRDAP {
		return &checker.RDAPLookup{
			Timeout: c.RDAP.Timeout,
			Limiter: limiter,
			Logger:  logger,
		}
	}

	return &checker.NamecheapLookup{
		Credentials: c.Registrar.Credentials(),
		Endpoint:    strings.TrimSpace(c.Registrar.Endpoint),
		Sandbox:     c.Registrar.Sandbox,
		Timeout:     c.Registrar.Timeout,
		Limiter:     limiter,
		Logger:      logger,
	}
}

// NewIPResolver builds the caller IP discovery client.
func (c *Config) NewIPResolver() *checker.IPResolver {
	return &checker.IPResolver{
		URL:     strings.TrimSpace(c.IPLookup.URL),
		Timeout: c.IPLookup.Timeout,
	}
}

// NewSuggester wires the generator, lookup and IP discovery together.
func (c *Config) NewSuggester(logger *logging.Logger, toolVersion string) *engine.Suggester {
	return &engine.Suggester{
		Generator:    &generator.Generator{Logger: logger},
		Lookup:       c.NewLookup(logger),
		IPResolver:   c.NewIPResolver(),
		BatchSize:    c.Registrar.BatchSize,
		BatchDelay:   c.Registrar.BatchDelay,
		DefaultCount: c.Generator.DefaultCount,
		MaxCount:     c.Generator.MaxCount,
		ToolVersion:  toolVersion,
		Logger:       logger,
	}
}
