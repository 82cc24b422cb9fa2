package cmd

import (
	"github.com/fulmenhq/gofulmen/foundry"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/namelens/domainideas/internal/config"
	errwrap "github.com/namelens/domainideas/internal/errors"
	"github.com/namelens/domainideas/internal/observability"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Run self-health check",
	Long: `Run a self-health check to verify the application can start and that
the registrar account is usable. Missing credentials are reported as a
warning; pass --strict to fail on them.`,
	Run: func(cmd *cobra.Command, args []string) {
		strict, _ := cmd.Flags().GetBool("strict")
		logger := observability.CLILogger
		logger.Info("Running health check...")

		// Check 1: Version info available
		if versionInfo.Version == "" {
			ExitWithCode(logger, foundry.ExitConfigInvalid, "Version information missing", errwrap.NewConfigInvalidError("Version information missing"))
			return
		}
		logger.Debug("Version check passed", zap.String("version", versionInfo.Version))
		logger.Info("✅ Version information available")

		// Check 2: Configuration decodes and validates
		cfg, err := loadConfig()
		if err != nil {
			exitForError(err, "Configuration invalid")
			return
		}
		logger.Info("✅ Configuration valid", zap.String("provider", cfg.Registrar.Provider))

		// Check 3: Registrar credentials
		if !checkCredentials(cfg) {
			if strict {
				ExitWithCode(logger, foundry.ExitConfigInvalid, "Registrar credentials not configured",
					cfg.Registrar.Credentials().Validate())
				return
			}
			logger.Info("")
			logger.Info("⚠️  Health checks passed with warnings")
			return
		}

		logger.Info("")
		logger.Info("✅ All health checks passed")
	},
}

// checkCredentials logs the registrar account state and reports whether
// lookups can run.
func checkCredentials(cfg *config.Config) bool {
	logger := observability.CLILogger
	if cfg.Registrar.Provider == config.ProviderRDAP {
		logger.Info("✅ RDAP provider selected; no registrar credentials needed")
		return true
	}

	creds := cfg.Registrar.Credentials()
	if err := creds.Validate(); err != nil {
		logger.Warn("❌ Registrar credentials incomplete", zap.Error(err))
		return false
	}
	logger.Info("✅ Registrar credentials configured", zap.String("api_user", creds.APIUser))

	if creds.ClientIP == "" {
		logger.Info("ℹ️  registrar.client_ip not set; the public IP is discovered per request (see `ip`)")
	}
	return true
}

func init() {
	rootCmd.AddCommand(healthCmd)
	healthCmd.Flags().Bool("strict", false, "fail when registrar credentials are missing")
}
