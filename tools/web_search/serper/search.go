package serper

import (
	"context"
	"net/http"

	"github.com/seekerhq/seeker/internal/httpx"
	"github.com/seekerhq/seeker/models"
)

const defaultBaseURL = "https://google.serper.dev/search"

// Search queries Google through the serper.dev API.
// https://serper.dev/ docs
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
	payload := map[string]any{"q": query, "num": maxResults}
	headers := map[string]string{"X-API-KEY": s.apiKey}

	var raw struct {
		Organic []struct {
			Title   string `json:"title"`
			Link    string `json:"link"`
			Snippet string `json:"snippet"`
		} `json:"organic"`
	}
	if err := s.http.DoJSON(ctx, http.MethodPost, s.baseURL, headers, payload, &raw); err != nil {
		return nil, err
	}

	var out []models.SearchResult
	for _, r := range raw.Organic {
		if len(out) >= maxResults {
			break
		}
		if r.Title == "" || r.Link == "" {
			continue
		}
		out = append(out, models.SearchResult{Title: r.Title, URL: r.Link, Snippet: r.Snippet, Rank: len(out)})
	}
	return out, nil
}
