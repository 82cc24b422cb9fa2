package config

import (
	"time"
)

// Config represents the complete application configuration. Values come
// from defaults, an optional YAML file, .env files and the environment, in
// increasing order of precedence.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Registrar RegistrarConfig `mapstructure:"registrar"`
	Generator GeneratorConfig `mapstructure:"generator"`
	IPLookup  IPLookupConfig  `mapstructure:"ip_lookup"`
	RDAP      RDAPConfig      `mapstructure:"rdap"`
	API       APIConfig       `mapstructure:"api"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Health    HealthConfig    `mapstructure:"health"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// RegistrarConfig selects the availability provider and holds its account.
type RegistrarConfig struct {
	// Provider is "namecheap" or "rdap".
	Provider string `mapstructure:"provider"`

	APIUser  string `mapstructure:"api_user"`
	APIKey   string `mapstructure:"api_key"`
	Username string `mapstructure:"username"`

	// ClientIP is the allow-listed address sent with each call. Left empty,
	// it is discovered per request through ip_lookup.
	ClientIP string `mapstructure:"client_ip"`

	// Endpoint overrides the API root; Sandbox selects the sandbox root when
	// Endpoint is empty.
	Endpoint string        `mapstructure:"endpoint"`
	Sandbox  bool          `mapstructure:"sandbox"`
	Timeout  time.Duration `mapstructure:"timeout"`

	BatchSize  int           `mapstructure:"batch_size"`
	BatchDelay time.Duration `mapstructure:"batch_delay"`
}

// GeneratorConfig bounds how many candidates a request may produce.
type GeneratorConfig struct {
	DefaultCount int `mapstructure:"default_count"`
	MaxCount     int `mapstructure:"max_count"`
}

// IPLookupConfig points at an ipify-compatible endpoint.
type IPLookupConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// RDAPConfig configures the keyless RDAP provider.
type RDAPConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// APIConfig controls the /api surface.
type APIConfig struct {
	// RateLimit is requests per second per client; zero disables limiting.
	RateLimit   float64  `mapstructure:"rate_limit"`
	RateBurst   int      `mapstructure:"rate_burst"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	// Level controls the minimum log level
	// Valid values: trace, debug, info, warn, error
	Level string `mapstructure:"level"`

	// Profile selects the logging complexity level
	// Valid values: SIMPLE, STRUCTURED, ENTERPRISE
	Profile string `mapstructure:"profile"`
}

// MetricsConfig contains Prometheus metrics configuration
type MetricsConfig struct {
	// Enabled controls whether metrics are exposed
	Enabled bool `mapstructure:"enabled"`

	// Port is the dedicated metrics endpoint port (Prometheus format)
	Port int `mapstructure:"port"`
}

// HealthConfig contains health check configuration
type HealthConfig struct {
	// Enabled controls whether health endpoints are exposed
	Enabled bool `mapstructure:"enabled"`
}
