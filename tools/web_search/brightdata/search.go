package brightdata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/seekerhq/seeker/internal/httpx"
	"github.com/seekerhq/seeker/models"
)

const (
	defaultBaseURL = "https://api.brightdata.com/request"
	defaultZone    = "serp_api1"
)

// Search runs Google queries through the Bright Data SERP API.
// https://docs.brightdata.com/scraping-automation/serp-api
type Search struct {
	apiKey  string
	zone    string
	baseURL string
	http    *httpx.Client
}

func New(apiKey, zone, baseURL string, httpc *httpx.Client) *Search {
	if zone == "" {
		zone = defaultZone
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Search{apiKey: apiKey, zone: zone, baseURL: baseURL, http: httpc}
}

// envelope is Bright Data's proxied response. Body may be the parsed SERP
// object or a JSON string wrapping it.
type envelope struct {
	StatusCode int             `json:"status_code"`
	Body       json.RawMessage `json:"body"`
}

type organicItem struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Snippet     string `json:"snippet"`
}

func (s *Search) Search(ctx context.Context, query string, maxResults int) ([]models.SearchResult, error) {
	googleURL := fmt.Sprintf("https://www.google.com/search?q=%s&num=%d", url.QueryEscape(query), maxResults)
	payload := map[string]any{
		"zone":        s.zone,
		"format":      "json",
		"data_format": "parsed_light",
		"url":         googleURL,
	}
	headers := map[string]string{"Authorization": "Bearer " + s.apiKey}

	var env envelope
	if err := s.http.DoJSON(ctx, http.MethodPost, s.baseURL, headers, payload, &env); err != nil {
		return nil, err
	}
	if env.StatusCode >= 400 {
		return nil, &httpx.StatusError{StatusCode: env.StatusCode, Status: fmt.Sprintf("serp upstream status %d", env.StatusCode)}
	}

	body := []byte(env.Body)
	if len(body) > 0 && body[0] == '"' {
		var inner string
		if err := json.Unmarshal(body, &inner); err != nil {
			return nil, fmt.Errorf("unwrap serp body: %w", err)
		}
		body = []byte(inner)
	}

	var parsed struct {
		Organic        []organicItem `json:"organic"`
		OrganicResults []organicItem `json:"organic_results"`
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &parsed); err != nil {
			return nil, fmt.Errorf("parse serp body: %w", err)
		}
	}
	items := parsed.Organic
	if len(items) == 0 {
		items = parsed.OrganicResults
	}

	var out []models.SearchResult
	for _, it := range items {
		if len(out) >= maxResults {
			break
		}
		link := it.Link
		if link == "" {
			link = it.URL
		}
		snippet := it.Description
		if snippet == "" {
			snippet = it.Snippet
		}
		if it.Title == "" || link == "" {
			continue
		}
		out = append(out, models.SearchResult{Title: it.Title, URL: link, Snippet: snippet, Rank: len(out)})
	}
	return out, nil
}
