package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/namelens/domainideas/internal/core"
	"github.com/namelens/domainideas/internal/core/checker"
)

const testPrefix = "DOMAINIDEAS_"

func newTestViper(t *testing.T) *viper.Viper {
	t.Helper()
	v := viper.New()
	SetDefaults(v)
	require.NoError(t, BindEnv(v, testPrefix))
	return v
}

func TestLoad(t *testing.T) {
	t.Run("LoadDefaults", func(t *testing.T) {
		cfg, err := Load(newTestViper(t))
		require.NoError(t, err)
		require.NotNil(t, cfg)

		// Verify server defaults
		assert.Equal(t, "localhost", cfg.Server.Host)
		assert.Equal(t, DefaultPort, cfg.Server.Port)
		assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
		assert.Equal(t, 180*time.Second, cfg.Server.WriteTimeout)
		assert.Equal(t, 120*time.Second, cfg.Server.IdleTimeout)
		assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)

		// Verify registrar defaults
		assert.Equal(t, ProviderNamecheap, cfg.Registrar.Provider)
		assert.Equal(t, 30*time.Second, cfg.Registrar.Timeout)
		assert.Equal(t, 50, cfg.Registrar.BatchSize)
		assert.Equal(t, 500*time.Millisecond, cfg.Registrar.BatchDelay)
		assert.False(t, cfg.Registrar.Sandbox)

		assert.Equal(t, core.DefaultSuggestionCount, cfg.Generator.DefaultCount)
		assert.Equal(t, checker.DefaultIPLookupURL, cfg.IPLookup.URL)
		assert.Equal(t, 10*time.Second, cfg.RDAP.Timeout)
		assert.Equal(t, []string{"*"}, cfg.API.CORSOrigins)

		assert.Equal(t, "info", cfg.Logging.Level)
		assert.True(t, cfg.Metrics.Enabled)
		assert.Equal(t, 9090, cfg.Metrics.Port)
		assert.True(t, cfg.Health.Enabled)
	})

	t.Run("EnvOverrides", func(t *testing.T) {
		t.Setenv("DOMAINIDEAS_SERVER_HOST", "0.0.0.0")
		t.Setenv("DOMAINIDEAS_LOGGING_LEVEL", "warn")
		t.Setenv("DOMAINIDEAS_METRICS_ENABLED", "false")
		t.Setenv("DOMAINIDEAS_REGISTRAR_PROVIDER", "RDAP")
		t.Setenv("DOMAINIDEAS_API_CORS_ORIGINS", "https://a.example, https://b.example")
		t.Setenv("DOMAINIDEAS_API_RATE_LIMIT", "0.5")

		cfg, err := Load(newTestViper(t))
		require.NoError(t, err)

		assert.Equal(t, "0.0.0.0", cfg.Server.Host)
		assert.Equal(t, "warn", cfg.Logging.Level)
		assert.False(t, cfg.Metrics.Enabled)
		assert.Equal(t, ProviderRDAP, cfg.Registrar.Provider)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.API.CORSOrigins)
		assert.Equal(t, 0.5, cfg.API.RateLimit)
	})

	t.Run("LegacyAliases", func(t *testing.T) {
		t.Setenv("NC_API_USER", "alice")
		t.Setenv("NC_API_KEY", "secret")
		t.Setenv("NC_USERNAME", "alice-account")
		t.Setenv("CLIENT_IP", "203.0.113.7")
		t.Setenv("PORT", "4000")

		cfg, err := Load(newTestViper(t))
		require.NoError(t, err)

		assert.Equal(t, "alice", cfg.Registrar.APIUser)
		assert.Equal(t, "secret", cfg.Registrar.APIKey)
		assert.Equal(t, "alice-account", cfg.Registrar.Username)
		assert.Equal(t, "203.0.113.7", cfg.Registrar.ClientIP)
		assert.Equal(t, 4000, cfg.Server.Port)
		assert.True(t, cfg.Registrar.HasCredentials())
	})

	t.Run("PrefixedWinsOverAlias", func(t *testing.T) {
		t.Setenv("PORT", "4000")
		t.Setenv("DOMAINIDEAS_SERVER_PORT", "5000")

		cfg, err := Load(newTestViper(t))
		require.NoError(t, err)
		assert.Equal(t, 5000, cfg.Server.Port)
	})

	t.Run("DurationFromEnv", func(t *testing.T) {
		t.Setenv("DOMAINIDEAS_SERVER_READ_TIMEOUT", "45s")
		t.Setenv("DOMAINIDEAS_REGISTRAR_BATCH_DELAY", "2s")

		cfg, err := Load(newTestViper(t))
		require.NoError(t, err)
		assert.Equal(t, 45*time.Second, cfg.Server.ReadTimeout)
		assert.Equal(t, 2*time.Second, cfg.Registrar.BatchDelay)
	})

	t.Run("ConfigFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
registrar:
  provider: namecheap
  sandbox: true
  batch_size: 20
generator:
  default_count: 40
  max_count: 100
`), 0o600))

		v := newTestViper(t)
		v.SetConfigFile(path)
		require.NoError(t, v.ReadInConfig())

		cfg, err := Load(v)
		require.NoError(t, err)
		assert.True(t, cfg.Registrar.Sandbox)
		assert.Equal(t, 20, cfg.Registrar.BatchSize)
		assert.Equal(t, 40, cfg.Generator.DefaultCount)
		assert.Equal(t, 100, cfg.Generator.MaxCount)
	})
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	for name, setting := range map[string][2]string{
		"provider":   {"registrar.provider", "godaddy"},
		"batch size": {"registrar.batch_size", "51"},
		"port":       {"server.port", "70000"},
		"counts":     {"generator.default_count", "5000"},
	} {
		t.Run(name, func(t *testing.T) {
			v := newTestViper(t)
			v.Set(setting[0], setting[1])

			_, err := Load(v)
			require.Error(t, err)
			assert.Equal(t, core.KindConfiguration, core.KindOf(err))
		})
	}
}

func TestGetConfigReturnsLoadedConfig(t *testing.T) {
	v := newTestViper(t)
	v.Set("server.port", 8123)

	cfg, err := Load(v)
	require.NoError(t, err)

	retrieved := GetConfig()
	require.NotNil(t, retrieved)
	assert.Equal(t, cfg.Server.Port, retrieved.Server.Port)
}

func TestLoadEnvFiles(t *testing.T) {
	t.Run("DotEnvInWorkingDirectory", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		t.Setenv("ENV_FILE", "")
		t.Cleanup(func() {
			_ = os.Unsetenv("DOMAINIDEAS_TEST_LOCAL")
			_ = os.Unsetenv("DOMAINIDEAS_TEST_SHARED")
		})

		require.NoError(t, os.WriteFile(".env.local", []byte("DOMAINIDEAS_TEST_LOCAL=local\nDOMAINIDEAS_TEST_SHARED=from-local\n"), 0o600))
		require.NoError(t, os.WriteFile(".env", []byte("DOMAINIDEAS_TEST_SHARED=from-env\n"), 0o600))

		require.NoError(t, LoadEnvFiles())
		assert.Equal(t, "local", os.Getenv("DOMAINIDEAS_TEST_LOCAL"))
		assert.Equal(t, "from-local", os.Getenv("DOMAINIDEAS_TEST_SHARED"))
	})

	t.Run("ExplicitEnvFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.env")
		require.NoError(t, os.WriteFile(path, []byte("DOMAINIDEAS_TEST_CUSTOM=custom\n"), 0o600))
		t.Setenv("ENV_FILE", path)
		t.Cleanup(func() { _ = os.Unsetenv("DOMAINIDEAS_TEST_CUSTOM") })

		require.NoError(t, LoadEnvFiles())
		assert.Equal(t, "custom", os.Getenv("DOMAINIDEAS_TEST_CUSTOM"))
	})

	t.Run("MissingFilesIgnored", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("ENV_FILE", "")
		require.NoError(t, LoadEnvFiles())

		t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "absent.env"))
		require.NoError(t, LoadEnvFiles())
	})

	t.Run("ExistingVariablesWin", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("ENV_FILE", "")
		t.Setenv("DOMAINIDEAS_TEST_KEEP", "process")
		require.NoError(t, os.WriteFile(".env", []byte("DOMAINIDEAS_TEST_KEEP=file\n"), 0o600))

		require.NoError(t, LoadEnvFiles())
		assert.Equal(t, "process", os.Getenv("DOMAINIDEAS_TEST_KEEP"))
	})
}

func TestConfigSearchPathsEndWithLocalDir(t *testing.T) {
	paths := ConfigSearchPaths(nil)
	require.NotEmpty(t, paths)
	assert.Equal(t, "./config", paths[len(paths)-1])
}
