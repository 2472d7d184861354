package brave

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/seekerhq/seeker/internal/httpx"
	"github.com/seekerhq/seeker/models"
)

const defaultBaseURL = "https://api.search.brave.com/res/v1/web/search"

// Search queries the Brave web search API.
// https://api.search.brave.com/app/documentation/web-search
type Search struct {
	apiKey  string
	baseURL string
	http    *httpx.Client
}

func New(apiKey, baseURL string, httpc *httpx.Client) *Search {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Search{apiKey: apiKey, baseURL: baseURL, http: httpc}
}

func (s *Search) Search(ctx context.Context, query string, maxResults int) ([]models.SearchResult, error) {
	endpoint := fmt.Sprintf("%s?q=%s&count=%d", s.baseURL, url.QueryEscape(query), maxResults)
	headers := map[string]string{
		"Accept":               "application/json",
		"X-Subscription-Token": s.apiKey,
	}

	var raw struct {
		Web struct {
			Results []struct {
				Title   string `json:"title"`
				URL     string `json:"url"`
				Snippet string `json:"description"`
			} `json:"results"`
		} `json:"web"`
	}
	if err := s.http.DoJSON(ctx, http.MethodGet, endpoint, headers, nil, &raw); err != nil {
		return nil, err
	}

	var out []models.SearchResult
	for _, r := range raw.Web.Results {
		if len(out) >= maxResults {
			break
		}
		if r.Title == "" || r.URL == "" {
			continue
		}
		out = append(out, models.SearchResult{Title: r.Title, URL: r.URL, Snippet: r.Snippet, Rank: len(out)})
	}
	return out, nil
}
