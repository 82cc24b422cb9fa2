package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/namelens/domainideas/internal/core"
	"github.com/namelens/domainideas/internal/observability"
	"github.com/namelens/domainideas/internal/output"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <keyword>",
	Short: "Suggest available domains for a keyword",
	Long: `Generate domain candidates from a keyword and check them with the
configured registrar. Only the available candidates are printed.

Multi-word keywords are compacted, so "home warranty" yields names such as
myhomewarranty.com and homewarrantyhub.com.`,
	Example: `  domainideas suggest "home warranty" --tld com
  domainideas suggest coffee --tld io --max 100 -o json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSuggest,
}

func init() {
	rootCmd.AddCommand(suggestCmd)

	addRequestFlags(suggestCmd)
	addOutputFlags(suggestCmd)
}

func addRequestFlags(cmd *cobra.Command) {
	cmd.Flags().String("tld", "com", "Top-level domain to generate names under")
	cmd.Flags().Int("max", 0, "Number of candidates to generate (0 uses generator.default_count)")
}

// requestFromArgs joins positional words into one keyword.
func requestFromArgs(cmd *cobra.Command, args []string) (core.SuggestRequest, error) {
	tld, err := cmd.Flags().GetString("tld")
	if err != nil {
		return core.SuggestRequest{}, err
	}
	maxCount, err := cmd.Flags().GetInt("max")
	if err != nil {
		return core.SuggestRequest{}, err
	}
	return core.SuggestRequest{
		Keyword:  strings.TrimSpace(strings.Join(args, " ")),
		TLD:      strings.TrimSpace(tld),
		MaxCount: maxCount,
	}, nil
}

func runSuggest(cmd *cobra.Command, args []string) error {
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

	logger := observability.CLILogger
	if !cfg.Registrar.HasCredentials() {
		logger.Warn("Registrar credentials look incomplete; run `health` for details",
			zap.String("provider", cfg.Registrar.Provider))
	}

	suggester := cfg.NewSuggester(logger, versionInfo.Version)
	result, err := suggester.Suggest(cmd.Context(), req)
	if err != nil {
		exitForError(err, "Domain suggestion failed")
	}

	logger.Debug("Suggestion complete",
		zap.String("check_id", result.Provenance.CheckID),
		zap.String("source", result.Provenance.Source),
		zap.Int("batches", result.Provenance.Batches),
		zap.Int("skipped", result.Provenance.Skipped))

	rendered, err := output.NewFormatter(format).FormatResult(result)
	if err != nil {
		return err
	}
	return emit(cmd, format, result.Keyword, result.TLD, rendered)
}

func emit(cmd *cobra.Command, format output.Format, keyword, tld, rendered string) error {
	path, err := resolveOutputPath(cmd, format, keyword, tld)
	if err != nil {
		return err
	}
	sink, err := openSink(cmd, path)
	if err != nil {
		return err
	}
	if err := writeRendered(sink, rendered); err != nil {
		return err
	}
	if sink.path != "-" {
		observability.CLILogger.Info("Wrote output", zap.String("path", sink.path))
	}
	return nil
}
