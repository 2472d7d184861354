package agent

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/seekerhq/seeker/config"
	"github.com/seekerhq/seeker/internal/telemetry"
	"github.com/seekerhq/seeker/models"
)

var orchestratorTracer trace.Tracer = otel.Tracer("seeker/internal/agent")

// Orchestrator runs the question pipeline: plan, optionally search and
// aggregate, then synthesize. Search failures degrade to answering without
// context; only a failed synthesis fails the run. The value holds injected
// collaborators and config copies only, so one Orchestrator is safe for
// concurrent use and no state crosses runs.
type Orchestrator struct {
	planner       Planner
	searcher      Searcher
	synthesizer   Synthesizer
	maxResults    int
	maxChars      int
	searchTimeout time.Duration
	llmTimeout    time.Duration
	logger        *log.Logger
}

func NewOrchestrator(cfg *config.Config, planner Planner, searcher Searcher, synthesizer Synthesizer) *Orchestrator {
	return &Orchestrator{
		planner:       planner,
		searcher:      searcher,
		synthesizer:   synthesizer,
		maxResults:    cfg.Search.MaxResults,
		maxChars:      cfg.Context.MaxChars,
		searchTimeout: cfg.Search.Timeout,
		llmTimeout:    cfg.LLM.Timeout,
		logger:        log.New(log.Writer(), "[ORCH] ", log.LstdFlags),
	}
}

// AskQuestion answers one question. Empty or whitespace-only input returns
// ErrInvalidInput before any network call; a failed final synthesis returns
// *SynthesisError. Everything else degrades and still produces an answer.
func (o *Orchestrator) AskQuestion(ctx context.Context, question string, allowWebSearch bool) (models.AnswerResult, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		telemetry.QueriesTotal.WithLabelValues("invalid_input").Inc()
		return models.AnswerResult{}, ErrInvalidInput
	}
	if o.searcher == nil {
		allowWebSearch = false
	}

	runID := uuid.NewString()
	start := time.Now()
	ctx, span := orchestratorTracer.Start(ctx, "agent.ask_question", trace.WithAttributes(
		attribute.String("run.id", runID),
		attribute.Int("question.length", len(question)),
		attribute.Bool("search.allowed", allowWebSearch),
	))
	defer span.End()

	o.logger.Printf("[%s] planning question (%d chars, search allowed: %t)", runID, len(question), allowWebSearch)
	decision := o.plan(ctx, question, allowWebSearch)
	o.logger.Printf("[%s] decision: needs_search=%t reason=%q", runID, decision.NeedsSearch, decision.Reason)

	var agg models.AggregatedContext
	if decision.NeedsSearch {
		agg = o.search(ctx, runID, decision.SearchQuery)
	}

	answer, err := o.synthesize(ctx, question, agg)
	if err != nil {
		var serr *SynthesisError
		if !errors.As(err, &serr) {
			err = &SynthesisError{Err: err}
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		telemetry.QueriesTotal.WithLabelValues("synthesis_error").Inc()
		o.logger.Printf("[%s] synthesis failed: %v", runID, err)
		return models.AnswerResult{}, err
	}

	usedSearch := !agg.IsEmpty()
	result := models.AnswerResult{
		Answer:     answer,
		UsedSearch: usedSearch,
		Reason:     decision.Reason,
		Sources:    agg.Results,
	}

	span.SetAttributes(
		attribute.Bool("answer.used_search", usedSearch),
		attribute.Int("answer.sources", len(agg.Results)),
	)
	span.SetStatus(codes.Ok, "completed")
	telemetry.QueriesTotal.WithLabelValues("ok").Inc()
	telemetry.QueryDuration.WithLabelValues(strconv.FormatBool(usedSearch)).Observe(time.Since(start).Seconds())
	o.logger.Printf("[%s] answered in %v (used search: %t, sources: %d)", runID, time.Since(start), usedSearch, len(agg.Results))
	return result, nil
}

func (o *Orchestrator) plan(ctx context.Context, question string, allowWebSearch bool) models.SearchDecision {
	ctx, span := orchestratorTracer.Start(ctx, "agent.plan")
	defer span.End()
	if o.llmTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.llmTimeout)
		defer cancel()
	}

	decision := o.planner.Decide(ctx, question, allowWebSearch)
	span.SetAttributes(
		attribute.Bool("plan.needs_search", decision.NeedsSearch),
		attribute.String("plan.reason", decision.Reason),
	)
	return decision
}

// search runs the provider query and aggregates the hits. Best effort: any
// failure logs, counts and comes back as an empty context.
func (o *Orchestrator) search(ctx context.Context, runID, query string) models.AggregatedContext {
	ctx, span := orchestratorTracer.Start(ctx, "agent.search", trace.WithAttributes(
		attribute.Int("search.max_results", o.maxResults),
	))
	defer span.End()
	if o.searchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.searchTimeout)
		defer cancel()
	}

	results, err := o.searcher.Search(ctx, query, o.maxResults)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		telemetry.SearchesTotal.WithLabelValues("error").Inc()
		o.logger.Printf("[%s] search failed, continuing without context: %v", runID, err)
		return models.AggregatedContext{}
	}
	if len(results) == 0 {
		span.AddEvent("no results")
		telemetry.SearchesTotal.WithLabelValues("empty").Inc()
		o.logger.Printf("[%s] search returned no results", runID)
		return models.AggregatedContext{}
	}
	telemetry.SearchesTotal.WithLabelValues("ok").Inc()

	agg := Aggregate(results, o.maxChars)
	span.SetAttributes(
		attribute.Int("search.results", len(results)),
		attribute.Int("search.kept", len(agg.Results)),
	)
	o.logger.Printf("[%s] aggregated %d of %d results", runID, len(agg.Results), len(results))
	return agg
}

func (o *Orchestrator) synthesize(ctx context.Context, question string, agg models.AggregatedContext) (string, error) {
	ctx, span := orchestratorTracer.Start(ctx, "agent.synthesize", trace.WithAttributes(
		attribute.Bool("context.empty", agg.IsEmpty()),
	))
	defer span.End()
	if o.llmTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.llmTimeout)
		defer cancel()
	}

	answer, err := o.synthesizer.Synthesize(ctx, question, agg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	span.SetStatus(codes.Ok, "completed")
	return answer, nil
}
