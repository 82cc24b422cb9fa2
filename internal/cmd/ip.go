package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/namelens/domainideas/internal/observability"
	"github.com/namelens/domainideas/internal/server/handlers"
)

var ipCmd = &cobra.Command{
	Use:   "ip",
	Short: "Show this machine's public IP for the registrar allow-list",
	Long: `Discover the public egress address through the configured ip_lookup
service. Registrars such as Namecheap reject API calls from addresses that
are not allow-listed on the account.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			exitForError(err, "Invalid configuration")
		}

		if configured := cfg.Registrar.Credentials().ClientIP; configured != "" {
			observability.CLILogger.Info("registrar.client_ip is set; it is sent instead of the discovered address",
				zap.String("client_ip", configured))
		}

		ip, err := cfg.NewIPResolver().Lookup(cmd.Context())
		if err != nil {
			exitForError(err, "Public IP lookup failed")
		}

		observability.CLILogger.Info(handlers.ServerIPMessage)
		_, err = fmt.Fprintln(cmd.OutOrStdout(), ip)
		return err
	},
}

func init() {
	rootCmd.AddCommand(ipCmd)
}
