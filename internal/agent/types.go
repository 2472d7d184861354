package agent

import (
	"context"

	"github.com/seekerhq/seeker/models"
)

// Planner decides whether a question needs a web search and, when it does,
// how to phrase the query. Implementations never fail the request: any
// degraded planning comes back as NeedsSearch=false.
type Planner interface {
	Decide(ctx context.Context, question string, searchAllowed bool) models.SearchDecision
}

// Searcher runs a single provider query. Zero results is a successful call.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]models.SearchResult, error)
}

// Synthesizer produces the final answer text from the original question and
// whatever aggregated context exists.
type Synthesizer interface {
	Synthesize(ctx context.Context, question string, agg models.AggregatedContext) (string, error)
}
