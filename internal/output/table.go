package output

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/namelens/domainideas/internal/core"
)

// TableFormatter renders results as an ASCII table.
type TableFormatter struct{}

// FormatResult renders the available domains with a summary footer.
func (f *TableFormatter) FormatResult(result *core.SuggestResult) (string, error) {
	if result == nil {
		return "", nil
	}

	t := newDomainTable(heading(result.Keyword, result.TLD), result.Domains)
	t.AppendFooter(table.Row{"", summaryLine(result)})
	return t.Render(), nil
}

// FormatIdeas renders generated candidates without availability data.
func (f *TableFormatter) FormatIdeas(list *IdeaList) (string, error) {
	if list == nil {
		return "", nil
	}

	t := newDomainTable(heading(list.Keyword, list.TLD), list.Domains)
	t.AppendFooter(table.Row{"", fmt.Sprintf("%d generated, unchecked", list.Total)})
	return t.Render(), nil
}

func newDomainTable(title string, domains []string) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	// footers carry counts, keep their case
	t.Style().Format.Footer = text.FormatDefault
	t.SetTitle("%s", title)
	t.AppendHeader(table.Row{"#", "Domain"})
	for i, domain := range domains {
		t.AppendRow(table.Row{i + 1, domain})
	}
	return t
}
