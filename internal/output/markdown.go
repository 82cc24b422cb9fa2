package output

import (
	"fmt"
	"strings"

	"github.com/namelens/domainideas/internal/core"
)

// MarkdownFormatter renders results as a markdown table.
type MarkdownFormatter struct{}

// FormatResult renders a suggestion result as Markdown.
func (f *MarkdownFormatter) FormatResult(result *core.SuggestResult) (string, error) {
	if result == nil {
		return "", nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Available domains for %s\n\n", escapeMarkdownCell(heading(result.Keyword, result.TLD))))
	writeDomainRows(&sb, result.Domains)
	sb.WriteString(fmt.Sprintf("\n_%s_\n", summaryLine(result)))
	return sb.String(), nil
}

// FormatIdeas renders an unchecked idea list as Markdown.
func (f *MarkdownFormatter) FormatIdeas(list *IdeaList) (string, error) {
	if list == nil {
		return "", nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Domain ideas for %s\n\n", escapeMarkdownCell(heading(list.Keyword, list.TLD))))
	writeDomainRows(&sb, list.Domains)
	sb.WriteString(fmt.Sprintf("\n_%d generated, unchecked_\n", list.Total))
	return sb.String(), nil
}

func writeDomainRows(sb *strings.Builder, domains []string) {
	sb.WriteString("| # | Domain |\n")
	sb.WriteString("| --- | --- |\n")
	for i, domain := range domains {
		sb.WriteString(fmt.Sprintf("| %d | %s |\n", i+1, escapeMarkdownCell(domain)))
	}
}

func escapeMarkdownCell(value string) string {
	return strings.ReplaceAll(value, "|", "\\|")
}
