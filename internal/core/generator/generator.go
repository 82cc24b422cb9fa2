// Package generator builds ranked domain name candidates from a keyword.
//
// Candidates are produced in fixed priority tiers (action words before brand
// words, two-part names before three-part names) and the first tiers win when
// the requested count is reached. The output order is significant: callers
// that cap availability checks see the highest-priority names first.
package generator

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fulmenhq/gofulmen/logging"
	"go.uber.org/zap"

	"github.com/namelens/domainideas/internal/core"
)

const (
	// MinLabelLength and MaxLabelLength bound the label (domain minus TLD).
	MinLabelLength = 3
	MaxLabelLength = 50

	focusedBrandCount = 80
)

// Generator produces candidate domains. The zero value is ready to use.
type Generator struct {
	Logger *logging.Logger
}

// Generate is a convenience wrapper around a zero-value Generator.
func Generate(keyword, tld string, maxCount int) ([]string, error) {
	return (&Generator{}).Generate(keyword, tld, maxCount)
}

// Generate returns at most maxCount unique candidates of the form
// {prefix}{keyword}{suffix}.{tld} in tier order. maxCount <= 0 selects
// core.DefaultSuggestionCount.
func (g *Generator) Generate(keyword, tld string, maxCount int) ([]string, error) {
	compact := CompactKeyword(keyword)
	if compact == "" {
		return nil, core.InvalidInput("generate", "keyword must contain at least one letter or digit")
	}

	normalizedTLD, err := NormalizeTLD(tld)
	if err != nil {
		return nil, err
	}

	if maxCount <= 0 {
		maxCount = core.DefaultSuggestionCount
	}

	b := &builder{
		keyword: compact,
		tld:     normalizedTLD,
		max:     maxCount,
		set:     newOrderedSet(maxCount),
	}
	b.run()

	result := b.set.Items()
	if g != nil && g.Logger != nil {
		g.Logger.Debug("Generated domain candidates",
			zap.String("keyword", compact),
			zap.String("tld", normalizedTLD),
			zap.Int("max_count", maxCount),
			zap.Int("generated", len(result)))
	}
	return result, nil
}

// CompactKeyword lower-cases keyword, drops characters that cannot appear in
// a domain label and joins the whitespace-separated tokens.
func CompactKeyword(keyword string) string {
	var sb strings.Builder
	for _, token := range strings.Fields(strings.ToLower(keyword)) {
		for _, r := range token {
			if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' {
				sb.WriteRune(r)
			}
		}
	}
	return strings.Trim(sb.String(), "-")
}

// NormalizeTLD lower-cases tld, strips one leading dot and validates the
// remaining labels.
func NormalizeTLD(tld string) (string, error) {
	value := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(tld)), ".")
	if value == "" {
		return "", core.InvalidInput("generate", "tld is required")
	}
	for _, label := range strings.Split(value, ".") {
		if label == "" || strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return "", core.InvalidInput("generate", "tld is not a valid domain label: "+tld)
		}
		for _, r := range label {
			if !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9') && r != '-' {
				return "", core.InvalidInput("generate", "tld is not a valid domain label: "+tld)
			}
		}
	}
	return value, nil
}

// ValidLabel reports whether label satisfies the length bounds.
func ValidLabel(label string) bool {
	n := utf8.RuneCountInString(label)
	return n >= MinLabelLength && n <= MaxLabelLength
}

type builder struct {
	keyword string
	tld     string
	max     int
	set     *orderedSet
}

func (b *builder) full() bool {
	return b.set.Len() >= b.max
}

// add inserts prefix+keyword+suffix when the label is in bounds. Callers
// check full() before every call.
func (b *builder) add(prefix, suffix string) {
	label := prefix + b.keyword + suffix
	if !ValidLabel(label) {
		return
	}
	b.set.Add(label + "." + b.tld)
}

func (b *builder) run() {
	brands := firstN(brandWords, focusedBrandCount)

	tiers := []func(){
		func() { b.prefixes(actionWords) },
		func() { b.suffixes(actionWords) },
		func() { b.prefixes(brands) },
		func() { b.suffixes(brands) },
		func() { b.wrap(firstN(brands, 40), firstN(brands, 20)) },
		func() { b.wrap(firstN(actionWords, 30), firstN(brands, 40)) },
		func() { b.wrap(firstN(brands, 30), firstN(actionWords, 30)) },
		func() { b.wrap(firstN(actionWords, 20), firstN(actionWords, 15)) },
		func() {
			b.prefixes(curatedPrefixes)
			b.suffixes(curatedSuffixes)
		},
		b.topUp,
	}

	for _, tier := range tiers {
		if b.full() {
			return
		}
		tier()
	}
}

func (b *builder) prefixes(words []string) {
	for _, w := range words {
		if b.full() {
			return
		}
		b.add(w, "")
	}
}

func (b *builder) suffixes(words []string) {
	for _, w := range words {
		if b.full() {
			return
		}
		b.add("", w)
	}
}

func (b *builder) wrap(left, right []string) {
	for _, l := range left {
		if b.full() {
			return
		}
		for _, r := range right {
			if b.full() {
				return
			}
			b.add(l, r)
		}
	}
}

func (b *builder) topUp() {
	for _, w := range popularBrandWords {
		if b.full() {
			return
		}
		b.add(w, "")
		if !b.full() {
			b.add("", w)
		}
	}
}

func firstN(words []string, n int) []string {
	if n > len(words) {
		n = len(words)
	}
	return words[:n]
}
