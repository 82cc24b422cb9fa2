package output

import (
	"fmt"
	"strings"

	"github.com/namelens/domainideas/internal/core"
)

// Format represents an output format.
type Format string

const (
	FormatTable    Format = "table"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
	FormatYAML     Format = "yaml"
)

// IdeaList is a generated candidate list that was not checked against a
// registrar.
type IdeaList struct {
	Keyword string   `json:"keyword" yaml:"keyword"`
	TLD     string   `json:"tld" yaml:"tld"`
	Total   int      `json:"total" yaml:"total"`
	Domains []string `json:"domains" yaml:"domains"`
}

// Formatter renders suggestion results and unchecked idea lists.
type Formatter interface {
	FormatResult(result *core.SuggestResult) (string, error)
	FormatIdeas(list *IdeaList) (string, error)
}

// ParseFormat validates and normalizes a format string.
func ParseFormat(value string) (Format, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	switch normalized {
	case "", string(FormatTable):
		return FormatTable, nil
	case string(FormatJSON):
		return FormatJSON, nil
	case string(FormatMarkdown), "md":
		return FormatMarkdown, nil
	case string(FormatYAML), "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", value)
	}
}

// NewFormatter returns a formatter for the requested format.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: true}
	case FormatMarkdown:
		return &MarkdownFormatter{}
	case FormatYAML:
		return &YAMLFormatter{}
	default:
		return &TableFormatter{}
	}
}

func summaryLine(result *core.SuggestResult) string {
	return fmt.Sprintf("%d/%d available", result.Available, result.TotalGenerated)
}

func heading(keyword, tld string) string {
	return fmt.Sprintf("%q (.%s)", keyword, tld)
}

// Marshal encodes an arbitrary report as indented JSON or YAML. Other
// formats are rejected.
func Marshal(format Format, value any) (string, error) {
	switch format {
	case FormatJSON:
		return (&JSONFormatter{Indent: true}).marshal(value)
	case FormatYAML:
		return marshalYAML(value)
	default:
		return "", fmt.Errorf("format %s cannot encode structured reports", format)
	}
}
