package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/seekerhq/seeker/config"
	"github.com/seekerhq/seeker/internal/telemetry"
	"github.com/seekerhq/seeker/models"
	"github.com/seekerhq/seeker/provider"
)

const plannerSystemPrompt = `You are a planning assistant that decides whether a question requires current information from the web.

Questions that NEED search:
- Current events, news, recent developments
- Real-time data (weather, stock prices, sports scores, exchange rates)
- Information that changes frequently
- Questions about recent dates or anything "latest"
- Current versions of software, current office holders

Questions that DON'T need search:
- General knowledge and established facts
- Historical events
- How-to explanations and conceptual questions
- Math, logic and definitions

When search is needed, also rewrite the question into a compact search engine query: keep the essential keywords, drop filler words.

Respond ONLY with valid JSON in the following format:
{"needs_search": true/false, "reason": "brief explanation", "search_query": "compact query, or empty string when no search is needed"}
Do not include any other text or explanation.`

// LLMPlanner classifies a question and rewrites it into a search query with
// a single LLM call. It never fails the request: every degraded path logs,
// counts a fallback and comes back as NeedsSearch=false.
type LLMPlanner struct {
	llm         provider.Provider
	temperature float64
	logger      *log.Logger
}

func NewLLMPlanner(cfg config.LLMConfig, llm provider.Provider) *LLMPlanner {
	return &LLMPlanner{
		llm:         llm,
		temperature: cfg.PlannerTemperature,
		logger:      log.New(log.Writer(), "[PLANNER] ", log.LstdFlags),
	}
}

func (p *LLMPlanner) Decide(ctx context.Context, question string, searchAllowed bool) models.SearchDecision {
	if !searchAllowed {
		telemetry.PlannerFallbacksTotal.WithLabelValues("disabled").Inc()
		return models.SearchDecision{NeedsSearch: false, Reason: "web search disabled"}
	}

	start := time.Now()
	out, err := p.llm.Chat(ctx, plannerSystemPrompt, fmt.Sprintf("Question: %q", question), p.temperature, 0)
	telemetry.LLMCallDuration.WithLabelValues("planning").Observe(time.Since(start).Seconds())
	if err != nil {
		p.logger.Printf("planning call failed, answering without search: %v", err)
		telemetry.PlannerFallbacksTotal.WithLabelValues("llm_error").Inc()
		return models.SearchDecision{NeedsSearch: false, Reason: "planning unavailable"}
	}

	var parsed struct {
		NeedsSearch bool   `json:"needs_search"`
		Reason      string `json:"reason"`
		SearchQuery string `json:"search_query"`
	}
	if err := json.Unmarshal([]byte(extractFirstJSON(stripFences(out))), &parsed); err != nil {
		p.logger.Printf("unparseable planning response, answering without search: %v", err)
		telemetry.PlannerFallbacksTotal.WithLabelValues("parse_error").Inc()
		return models.SearchDecision{NeedsSearch: false, Reason: "planning unavailable"}
	}

	decision := models.SearchDecision{NeedsSearch: parsed.NeedsSearch, Reason: strings.TrimSpace(parsed.Reason)}
	if !decision.NeedsSearch {
		return decision
	}
	query := strings.TrimSpace(parsed.SearchQuery)
	if query == "" {
		p.logger.Printf("planner asked for search but produced no query, answering without search")
		telemetry.PlannerFallbacksTotal.WithLabelValues("empty_query").Inc()
		return models.SearchDecision{NeedsSearch: false, Reason: decision.Reason}
	}
	decision.SearchQuery = query
	return decision
}

// stripFences removes a wrapping markdown code fence, with or without a
// language tag.
func stripFences(s string) string {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "```") {
		return t
	}
	t = strings.TrimPrefix(t, "```")
	if i := strings.IndexByte(t, '\n'); i >= 0 {
		t = t[i+1:]
	}
	if i := strings.LastIndex(t, "```"); i >= 0 {
		t = t[:i]
	}
	return strings.TrimSpace(t)
}

// extractFirstJSON attempts to find the first top-level JSON object in a string
func extractFirstJSON(s string) string {
	start := -1
	depth := 0
	for i, ch := range s {
		if ch == '{' {
			if depth == 0 {
				start = i
			}
			depth++
		} else if ch == '}' {
			if depth > 0 {
				depth--
			}
			if depth == 0 && start != -1 {
				return s[start : i+1]
			}
		}
	}
	return s
}
