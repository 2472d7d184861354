package web_search

import (
	"context"
	"errors"
	"fmt"

	"github.com/seekerhq/seeker/config"
	"github.com/seekerhq/seeker/internal/httpx"
	"github.com/seekerhq/seeker/models"
	"github.com/seekerhq/seeker/tools/web_search/brave"
	"github.com/seekerhq/seeker/tools/web_search/brightdata"
	"github.com/seekerhq/seeker/tools/web_search/serper"
)

// Searcher is the pipeline's single outbound search dependency. Zero results
// is a successful call, not an error.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]models.SearchResult, error)
}

type Provider string

const (
	BrightDataProvider Provider = "brightdata"
	SerperProvider     Provider = "serper"
	BraveProvider      Provider = "brave"
)

var ErrUnsupportedProvider = errors.New("unsupported search provider")

// ProviderError wraps a failed provider call. Callers treat it as non-fatal
// and degrade to answering without search context. Status is the upstream
// HTTP status when one was received, 0 otherwise.
type ProviderError struct {
	Provider string
	Status   int
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s search failed (status %d): %v", e.Provider, e.Status, e.Err)
	}
	return fmt.Sprintf("%s search failed: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// NewSearcher selects the implementation named by cfg.Provider. Exactly one
// provider instance is ever wired into a pipeline; the alternatives exist so
// deployments can switch without code changes.
func NewSearcher(cfg config.SearchConfig) (Searcher, error) {
	httpc := httpx.New(cfg.Timeout, cfg.Retries, cfg.RetryBackoff)
	switch Provider(cfg.Provider) {
	case BrightDataProvider, "":
		return providerSearcher{name: string(BrightDataProvider), impl: brightdata.New(cfg.APIKey, cfg.Zone, cfg.BaseURL, httpc)}, nil
	case SerperProvider:
		return providerSearcher{name: string(SerperProvider), impl: serper.New(cfg.APIKey, cfg.BaseURL, httpc)}, nil
	case BraveProvider:
		return providerSearcher{name: string(BraveProvider), impl: brave.New(cfg.APIKey, cfg.BaseURL, httpc)}, nil
	default:
		return nil, ErrUnsupportedProvider
	}
}

// providerSearcher uniformly wraps implementation failures in *ProviderError
// so callers never depend on provider-specific error shapes.
type providerSearcher struct {
	name string
	impl Searcher
}

func (p providerSearcher) Search(ctx context.Context, query string, maxResults int) ([]models.SearchResult, error) {
	results, err := p.impl.Search(ctx, query, maxResults)
	if err != nil {
		status := 0
		var serr *httpx.StatusError
		if errors.As(err, &serr) {
			status = serr.StatusCode
		}
		return nil, &ProviderError{Provider: p.name, Status: status, Err: err}
	}
	return results, nil
}
