package output

import (
	"encoding/json"

	"github.com/namelens/domainideas/internal/core"
)

// JSONFormatter renders results as JSON.
type JSONFormatter struct {
	Indent bool
}

// FormatResult renders a suggestion result using the HTTP API shape.
func (f *JSONFormatter) FormatResult(result *core.SuggestResult) (string, error) {
	if result == nil {
		return "", nil
	}
	return f.marshal(result)
}

// FormatIdeas renders an unchecked idea list as JSON.
func (f *JSONFormatter) FormatIdeas(list *IdeaList) (string, error) {
	if list == nil {
		return "", nil
	}
	return f.marshal(list)
}

func (f *JSONFormatter) marshal(value any) (string, error) {
	var (
		data []byte
		err  error
	)

	if f.Indent {
		data, err = json.MarshalIndent(value, "", "  ")
	} else {
		data, err = json.Marshal(value)
	}
	if err != nil {
		return "", err
	}

	return string(data), nil
}
