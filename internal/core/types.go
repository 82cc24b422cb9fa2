package core

import "time"

// DefaultSuggestionCount is the number of candidates generated when the
// caller does not ask for a specific count.
const DefaultSuggestionCount = 250

// SuggestRequest describes one keyword lookup.
type SuggestRequest struct {
	Keyword  string `json:"keyword"`
	TLD      string `json:"tld"`
	MaxCount int    `json:"max_count,omitempty"`
}

// SuggestResult is the caller-facing outcome of a lookup. Field names follow
// the JSON shape existing frontends consume.
type SuggestResult struct {
	Keyword        string     `json:"keyword" yaml:"keyword"`
	TLD            string     `json:"tld" yaml:"tld"`
	TotalGenerated int        `json:"totalGenerated" yaml:"total_generated"`
	Available      int        `json:"available" yaml:"available"`
	Domains        []string   `json:"domains" yaml:"domains"`
	Provenance     Provenance `json:"-" yaml:"-"`
}

// Provenance captures metadata about how a lookup was resolved.
type Provenance struct {
	CheckID     string
	RequestedAt time.Time
	ResolvedAt  time.Time
	Source      string
	ClientIP    string
	Batches     int
	Skipped     int
	ToolVersion string
}

// DomainStatus is one registrar verdict for a fully-qualified domain.
type DomainStatus struct {
	Domain    string
	Available bool
	Premium   bool
}
