package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/namelens/domainideas/internal/output"
	"github.com/namelens/domainideas/internal/server/handlers"
)

var extended bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  "Print version information. Use --extended for full details including Crucible and Go versions.",
	RunE: func(cmd *cobra.Command, args []string) error {
		identity := GetAppIdentity()
		out := cmd.OutOrStdout()

		format, err := resolveOutputFormat(cmd)
		if err != nil {
			return err
		}

		handlers.SetVersionInfo(versionInfo.Version, versionInfo.Commit, versionInfo.BuildDate)
		handlers.SetAppIdentity(identity)
		info := handlers.CurrentVersion()

		if format == output.FormatJSON || format == output.FormatYAML {
			rendered, err := output.Marshal(format, info)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, rendered)
			return err
		}

		fmt.Fprintf(out, "%s %s\n", info.App.Name, info.App.Version)
		if extended {
			fmt.Fprintf(out, "Commit: %s\n", info.App.Commit)
			fmt.Fprintf(out, "Built: %s\n", info.App.BuildDate)
			fmt.Fprintf(out, "Go: %s\n", info.App.GoVersion)
			fmt.Fprintf(out, "\n")

			// Gofulmen and Crucible versions
			fmt.Fprintf(out, "Gofulmen: %s\n", info.Dependencies.Gofulmen)
			fmt.Fprintf(out, "Crucible: %s\n", info.Dependencies.Crucible)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVarP(&extended, "extended", "e", false, "show extended version information")
	versionCmd.Flags().StringP("output-format", "o", "table", "Output format: table, json, yaml")
}
