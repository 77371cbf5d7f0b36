// Package scraper defines core types shared across subsystems.
package scraper

import "time"

// CapitalUnknown is the sentinel emitted when a sub-page's infobox has no
// capital row. It is a valid value, not a failure.
const CapitalUnknown = "N/A"

// Record is the structured result extracted from one sub-page.
// Records are value types and are never mutated after creation.
type Record struct {
	Name      string `json:"name"`
	Capital   string `json:"capital"`
	SourceURL string `json:"source_url"`
}

// FetchResponse is the result returned by a Fetcher implementation.
type FetchResponse struct {
	URL        string
	StatusCode int
	Body       []byte
	Duration   time.Duration
}

// RunSummary captures the outcome of one orchestrator run.
type RunSummary struct {
	RunID    string
	Records  []Record
	Started  time.Time
	Elapsed  time.Duration
	IndexURL string
}
