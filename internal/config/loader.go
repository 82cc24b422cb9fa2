// Package config provides centralized configuration management for
// domainideas. Settings are layered in viper:
// Layer 1: built-in defaults (SetDefaults)
// Layer 2: user config file (discovered via app identity and XDG paths)
// Layer 3: .env files and environment variables, including legacy aliases
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fulmenhq/gofulmen/appidentity"
	gfconfig "github.com/fulmenhq/gofulmen/config"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/namelens/domainideas/internal/core"
	"github.com/namelens/domainideas/internal/core/checker"
)

// Registrar providers.
const (
	ProviderNamecheap = "namecheap"
	ProviderRDAP      = "rdap"
)

// DefaultPort matches the port earlier deployments of the service used.
const DefaultPort = 3001

var (
	// appConfig holds the current application configuration
	appConfig *Config
	configMu  sync.RWMutex
)

// legacyEnvAliases maps config keys to unprefixed variables that existing
// deployments already export.
var legacyEnvAliases = map[string]string{
	"registrar.api_user":  "NC_API_USER",
	"registrar.api_key":   "NC_API_KEY",
	"registrar.username":  "NC_USERNAME",
	"registrar.client_ip": "CLIENT_IP",
	"server.port":         "PORT",
}

// LoadEnvFiles loads .env files into the process environment. ENV_FILE, when
// set, is the only file read; otherwise .env.local then .env. Variables that
// are already set are never overwritten and missing files are ignored.
func LoadEnvFiles() error {
	if envFile := strings.TrimSpace(os.Getenv("ENV_FILE")); envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
		return nil
	}

	for _, name := range []string{".env.local", ".env"} {
		if err := godotenv.Load(name); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load %s: %w", name, err)
		}
	}
	return nil
}

// SetDefaults registers every known key on v. Keys without a default are
// invisible to AllSettings, so each one is listed here.
func SetDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.read_timeout", "30s")
	// a full 250-name check takes five registrar calls plus pauses
	v.SetDefault("server.write_timeout", "180s")
	v.SetDefault("server.idle_timeout", "120s")
	v.SetDefault("server.shutdown_timeout", "10s")

	// Registrar defaults
	v.SetDefault("registrar.provider", ProviderNamecheap)
	v.SetDefault("registrar.api_user", "")
	v.SetDefault("registrar.api_key", "")
	v.SetDefault("registrar.username", "")
	v.SetDefault("registrar.client_ip", "")
	v.SetDefault("registrar.endpoint", "")
	v.SetDefault("registrar.sandbox", false)
	v.SetDefault("registrar.timeout", "30s")
	v.SetDefault("registrar.batch_size", checker.MaxBatchSize)
	v.SetDefault("registrar.batch_delay", checker.DefaultBatchDelay.String())

	// Generator defaults
	v.SetDefault("generator.default_count", core.DefaultSuggestionCount)
	v.SetDefault("generator.max_count", 1000)

	// Caller IP discovery
	v.SetDefault("ip_lookup.url", checker.DefaultIPLookupURL)
	v.SetDefault("ip_lookup.timeout", "10s")

	v.SetDefault("rdap.timeout", "10s")

	// API surface
	v.SetDefault("api.rate_limit", 2.0)
	v.SetDefault("api.rate_burst", 5)
	v.SetDefault("api.cors_origins", []string{"*"})

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.profile", "structured")

	// Metrics defaults
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.port", 9090)

	// Health check defaults
	v.SetDefault("health.enabled", true)
}

// BindEnv maps {PREFIX}{SECTION}_{KEY} variables onto config keys and binds
// the legacy unprefixed aliases. The prefixed name wins when both are set.
func BindEnv(v *viper.Viper, prefix string) error {
	prefix = strings.TrimSuffix(strings.TrimSpace(prefix), "_")
	if prefix != "" {
		v.SetEnvPrefix(prefix)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, alias := range legacyEnvAliases {
		names := []string{alias}
		if prefix != "" {
			names = []string{envName(prefix, key), alias}
		}
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return fmt.Errorf("bind %s: %w", key, err)
		}
	}
	return nil
}

func envName(prefix, key string) string {
	return strings.ToUpper(prefix + "_" + strings.ReplaceAll(key, ".", "_"))
}

// Decode converts the merged viper settings into a typed Config.
func Decode(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
			mapstructure.StringToFloat64HookFunc(),
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(v.AllSettings()); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Registrar.Provider = strings.ToLower(strings.TrimSpace(cfg.Registrar.Provider))
	cfg.API.CORSOrigins = trimAll(cfg.API.CORSOrigins)
	return cfg, nil
}

// Load decodes and validates v, then stores the result for GetConfig.
//
// This function is safe to call multiple times (e.g., for config reload)
func Load(v *viper.Viper) (*Config, error) {
	cfg, err := Decode(v)
	if err != nil {
		return nil, core.ConfigurationError("load config", "configuration could not be decoded", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	setConfig(cfg)
	return cfg, nil
}

// GetConfig returns the current application configuration (thread-safe)
func GetConfig() *Config {
	configMu.RLock()
	defer configMu.RUnlock()
	return appConfig
}

// setConfig updates the current configuration (thread-safe)
func setConfig(cfg *Config) {
	configMu.Lock()
	defer configMu.Unlock()
	appConfig = cfg
}

// Validate checks structural settings. Credentials are not checked here so
// that commands which never reach the registrar still run.
func (c *Config) Validate() error {
	const op = "validate config"

	switch c.Registrar.Provider {
	case ProviderNamecheap, ProviderRDAP:
	default:
		return core.ConfigurationError(op,
			fmt.Sprintf("unknown registrar provider %q (expected %s or %s)", c.Registrar.Provider, ProviderNamecheap, ProviderRDAP), nil)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return core.ConfigurationError(op, fmt.Sprintf("server.port %d is out of range", c.Server.Port), nil)
	}
	if c.Registrar.BatchSize < 0 || c.Registrar.BatchSize > checker.MaxBatchSize {
		return core.ConfigurationError(op,
			fmt.Sprintf("registrar.batch_size must be between 1 and %d, got %d", checker.MaxBatchSize, c.Registrar.BatchSize), nil)
	}
	if c.Generator.DefaultCount < 0 || c.Generator.MaxCount < 0 {
		return core.ConfigurationError(op, "generator counts must not be negative", nil)
	}
	if c.Generator.MaxCount > 0 && c.Generator.DefaultCount > c.Generator.MaxCount {
		return core.ConfigurationError(op,
			fmt.Sprintf("generator.default_count %d exceeds generator.max_count %d", c.Generator.DefaultCount, c.Generator.MaxCount), nil)
	}
	if c.API.RateLimit < 0 || c.API.RateBurst < 0 {
		return core.ConfigurationError(op, "api rate limits must not be negative", nil)
	}
	return nil
}

// DefaultConfigPath returns the XDG-compliant path to the user config file.
func DefaultConfigPath(identity *appidentity.Identity) string {
	configDir := gfconfig.GetAppConfigDir(configName(identity))
	if strings.TrimSpace(configDir) == "" {
		return ""
	}
	return filepath.Join(configDir, "config.yaml")
}

// ConfigSearchPaths lists the directories searched for config.yaml, the
// XDG app directory first.
func ConfigSearchPaths(identity *appidentity.Identity) []string {
	var paths []string
	name := configName(identity)
	if dir := gfconfig.GetAppConfigDir(name); dir != "" {
		paths = append(paths, dir)
	}
	if identity != nil && identity.BinaryName != "" && identity.BinaryName != name {
		if dir := gfconfig.GetAppConfigDir(identity.BinaryName); dir != "" {
			paths = append(paths, dir)
		}
	}
	return append(paths, "./config")
}

func configName(identity *appidentity.Identity) string {
	if identity != nil {
		if strings.TrimSpace(identity.ConfigName) != "" {
			return identity.ConfigName
		}
		if strings.TrimSpace(identity.BinaryName) != "" {
			return identity.BinaryName
		}
	}
	return "domainideas"
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			out = append(out, value)
		}
	}
	return out
}
