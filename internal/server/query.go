package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/seekerhq/seeker/internal/agent"
)

// QueryRequest is the wire form of a question.
type QueryRequest struct {
	Query        string `json:"query"`
	UseWebSearch *bool  `json:"use_web_search"` // omitted means true
}

// QueryResponse mirrors what the frontend renders. The "description" key on
// results is kept for wire compatibility.
type QueryResponse struct {
	Answer        string              `json:"answer"`
	UsedSearch    bool                `json:"used_search"`
	SearchResults []QuerySearchResult `json:"search_results"`
	Reason        string              `json:"reason"`
}

type QuerySearchResult struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

type QueryHandler struct {
	Agent Agent
}

func (h *QueryHandler) Register(g *echo.Group) {
	g.POST("/query", h.query)
}

func (h *QueryHandler) query(c echo.Context) error {
	var req QueryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if strings.TrimSpace(req.Query) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query cannot be empty")
	}
	allowSearch := req.UseWebSearch == nil || *req.UseWebSearch

	res, err := h.Agent.AskQuestion(c.Request().Context(), req.Query, allowSearch)
	if err != nil {
		if errors.Is(err, agent.ErrInvalidInput) {
			return echo.NewHTTPError(http.StatusBadRequest, "query cannot be empty")
		}
		var serr *agent.SynthesisError
		if errors.As(err, &serr) {
			return echo.NewHTTPError(http.StatusBadGateway, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := QueryResponse{
		Answer:        res.Answer,
		UsedSearch:    res.UsedSearch,
		Reason:        res.Reason,
		SearchResults: make([]QuerySearchResult, 0, len(res.Sources)),
	}
	for _, s := range res.Sources {
		resp.SearchResults = append(resp.SearchResults, QuerySearchResult{
			Title:       s.Title,
			URL:         s.URL,
			Description: s.Snippet,
		})
	}
	return c.JSON(http.StatusOK, resp)
}
