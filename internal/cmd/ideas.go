package cmd

import (
	"github.com/spf13/cobra"

	"github.com/namelens/domainideas/internal/observability"
	"github.com/namelens/domainideas/internal/output"
)

var ideasCmd = &cobra.Command{
	Use:   "ideas <keyword>",
	Short: "List generated domain candidates without checking them",
	Long: `Print the candidates the generator would check for a keyword. No
registrar or network call is made, so no credentials are needed.`,
	Example: `  domainideas ideas "home warranty" --tld com --max 20`,
	Args:    cobra.MinimumNArgs(1),
	RunE:    runIdeas,
}

func init() {
	rootCmd.AddCommand(ideasCmd)

	addRequestFlags(ideasCmd)
	addOutputFlags(ideasCmd)
}

func runIdeas(cmd *cobra.Command, args []string) error {
	req, err := requestFromArgs(cmd, args)
	if err != nil {
		return err
	}
	format, err := resolveOutputFormat(cmd)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		exitForError(err, "Invalid configuration")
	}

	domains, tld, err := cfg.NewSuggester(observability.CLILogger, versionInfo.Version).Ideas(req)
	if err != nil {
		exitForError(err, "Candidate generation failed")
	}

	list := &output.IdeaList{
		Keyword: req.Keyword,
		TLD:     tld,
		Total:   len(domains),
		Domains: domains,
	}
	rendered, err := output.NewFormatter(format).FormatIdeas(list)
	if err != nil {
		return err
	}
	return emit(cmd, format, list.Keyword, list.TLD, rendered)
}
