package cmd

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/fulmenhq/gofulmen/crucible"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/namelens/domainideas/internal/config"
	"github.com/namelens/domainideas/internal/observability"
)

var envInfoCmd = &cobra.Command{
	Use:   "envinfo",
	Short: "Display environment information",
	Long:  "Display environment, configuration, and version information. Secrets are reported as set or not set.",
	Run: func(cmd *cobra.Command, args []string) {
		version := crucible.GetVersion()
		logger := observability.CLILogger

		logger.Info("=== Domain Ideas Environment Information ===")
		logger.Info("")

		// Application Info
		identity := GetAppIdentity()
		logger.Info("Application:")
		logger.Info("  Name:       " + identity.BinaryName)
		logger.Info("  Version:    " + versionInfo.Version)
		logger.Info("  Commit:     " + versionInfo.Commit)
		logger.Info("  Built:      " + versionInfo.BuildDate)
		logger.Info("  Env Prefix: " + identity.EnvPrefix)
		logger.Info("")

		// SSOT Info
		logger.Info("SSOT:")
		logger.Info("  Gofulmen:   "+version.Gofulmen, zap.String("gofulmen_version", version.Gofulmen))
		logger.Info("  Crucible:   "+version.Crucible, zap.String("crucible_version", version.Crucible))
		logger.Info("")

		// Runtime Info
		logger.Info("Runtime:")
		logger.Info("  Go Version: "+runtime.Version(), zap.String("go_version", runtime.Version()))
		logger.Info("  GOOS:       "+runtime.GOOS, zap.String("goos", runtime.GOOS))
		logger.Info("  GOARCH:     "+runtime.GOARCH, zap.String("goarch", runtime.GOARCH))
		logger.Info(fmt.Sprintf("  NumCPU:     %d", runtime.NumCPU()), zap.Int("num_cpu", runtime.NumCPU()))
		logger.Info("")

		cfg, err := loadConfig()
		if err != nil {
			logger.Warn("Config load failed", zap.Error(err))
			return
		}

		configFile := viper.ConfigFileUsed()
		if configFile == "" {
			configFile = config.DefaultConfigPath(identity) + " (not found)"
		}

		// Configuration
		logger.Info("Configuration:")
		logger.Info("  Config File:    "+configFile, zap.String("config_file", configFile))
		logger.Info("  Server Host:    "+cfg.Server.Host, zap.String("host", cfg.Server.Host))
		logger.Info(fmt.Sprintf("  Server Port:    %d", cfg.Server.Port), zap.Int("port", cfg.Server.Port))
		logger.Info("  Log Level:      "+cfg.Logging.Level, zap.String("log_level", cfg.Logging.Level))
		logger.Info(fmt.Sprintf("  Metrics:        %t (port %d)", cfg.Metrics.Enabled, cfg.Metrics.Port), zap.Int("metrics_port", cfg.Metrics.Port))
		logger.Info(fmt.Sprintf("  Rate Limit:     %.2f/s burst %d", cfg.API.RateLimit, cfg.API.RateBurst))
		logger.Info("  CORS Origins:   " + strings.Join(cfg.API.CORSOrigins, ", "))
		logger.Info("")

		// Registrar
		creds := cfg.Registrar.Credentials()
		logger.Info("Registrar:")
		logger.Info("  Provider:       "+cfg.Registrar.Provider, zap.String("provider", cfg.Registrar.Provider))
		logger.Info("  API User:       " + setOrNot(creds.APIUser))
		logger.Info("  API Key:        " + setOrNot(creds.APIKey))
		logger.Info("  Username:       " + setOrNot(creds.Username))
		if creds.ClientIP != "" {
			logger.Info("  Client IP:      " + creds.ClientIP)
		} else {
			logger.Info("  Client IP:      (discovered via " + cfg.IPLookup.URL + ")")
		}
		logger.Info(fmt.Sprintf("  Sandbox:        %t", cfg.Registrar.Sandbox))
		logger.Info(fmt.Sprintf("  Batch:          %d names, %s apart", cfg.Registrar.BatchSize, cfg.Registrar.BatchDelay))
		logger.Info(fmt.Sprintf("  Credentials OK: %t", cfg.Registrar.HasCredentials()))
		logger.Info("")

		// Generator
		logger.Info("Generator:")
		logger.Info(fmt.Sprintf("  Default Count:  %d", cfg.Generator.DefaultCount))
		logger.Info(fmt.Sprintf("  Max Count:      %d", cfg.Generator.MaxCount))
		logger.Info("")

		logger.Info("=== End Environment Information ===")
	},
}

func setOrNot(value string) string {
	if strings.TrimSpace(value) == "" {
		return "(not set)"
	}
	return "(set)"
}

func init() {
	rootCmd.AddCommand(envInfoCmd)
}
