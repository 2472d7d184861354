package agent

import (
	"fmt"
	"strings"

	"github.com/seekerhq/seeker/internal/helpers"
	"github.com/seekerhq/seeker/models"
)

// Aggregate deduplicates results by normalized URL (first seen wins, rank
// order preserved) and truncates by cumulative snippet length. A snippet is
// never split: the first result whose snippet would cross the budget is
// skipped and accumulation stops, so a single oversized snippet yields an
// empty context. maxChars <= 0 disables the budget. Deterministic; empty
// input produces an empty context.
func Aggregate(results []models.SearchResult, maxChars int) models.AggregatedContext {
	var agg models.AggregatedContext
	if len(results) == 0 {
		return agg
	}

	seen := make(map[string]struct{}, len(results))
	used := 0
	var b strings.Builder
	for _, r := range results {
		key := helpers.NormalizeURL(r.URL)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if maxChars > 0 {
			if used+len(r.Snippet) > maxChars {
				break
			}
			used += len(r.Snippet)
		}
		agg.Results = append(agg.Results, r)
		fmt.Fprintf(&b, "%d. %s\n   URL: %s\n   %s\n", len(agg.Results), r.Title, r.URL, r.Snippet)
	}
	agg.FormattedPassages = b.String()
	return agg
}
