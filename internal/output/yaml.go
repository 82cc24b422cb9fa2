package output

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/namelens/domainideas/internal/core"
)

// YAMLFormatter renders results as YAML documents.
type YAMLFormatter struct{}

// FormatResult renders a suggestion result as YAML.
func (f *YAMLFormatter) FormatResult(result *core.SuggestResult) (string, error) {
	if result == nil {
		return "", nil
	}
	return marshalYAML(result)
}

// FormatIdeas renders an unchecked idea list as YAML.
func (f *YAMLFormatter) FormatIdeas(list *IdeaList) (string, error) {
	if list == nil {
		return "", nil
	}
	return marshalYAML(list)
}

func marshalYAML(value any) (string, error) {
	data, err := yaml.Marshal(value)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\n"), nil
}
