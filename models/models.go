package models

import "time"

// SearchResult is a single organic hit returned by a search provider.
// Rank is the provider's return order (0-based) and never changes after fetch.
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
	Rank    int    `json:"rank"`
}

// SearchDecision is the planner's verdict for one question. SearchQuery is
// non-empty iff NeedsSearch; Reason is a one-line explanation surfaced on the
// API and in logs.
type SearchDecision struct {
	NeedsSearch bool   `json:"needs_search"`
	SearchQuery string `json:"search_query"`
	Reason      string `json:"reason"`
}

// AggregatedContext is the deduplicated, budget-truncated search context fed
// to synthesis. Empty Results means "no usable search context".
type AggregatedContext struct {
	Results           []SearchResult `json:"results"`
	FormattedPassages string         `json:"formatted_passages"`
}

// IsEmpty reports whether the context carries no usable results.
func (a AggregatedContext) IsEmpty() bool {
	return len(a.Results) == 0
}

// AnswerResult is the pipeline's final product. UsedSearch is true iff
// synthesis received a non-empty context, not merely iff search was attempted.
// Sources are exactly the aggregated results the synthesizer saw.
type AnswerResult struct {
	Answer     string         `json:"answer"`
	UsedSearch bool           `json:"used_search"`
	Reason     string         `json:"reason"`
	Sources    []SearchResult `json:"sources,omitempty"`
}

// QueryResult is a caller-owned history record. Created on successful
// orchestration, never mutated afterwards.
type QueryResult struct {
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	UsedSearch bool      `json:"used_search"`
	Timestamp  time.Time `json:"timestamp"`
}
