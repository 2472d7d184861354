// Package telemetry holds the process-wide prometheus collectors. They
// register on the default registry; the HTTP server exposes them on /metrics.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// QueriesTotal counts completed pipeline runs by outcome
	// (ok, invalid_input, synthesis_error).
	QueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "seeker",
		Name:      "queries_total",
		Help:      "Completed question runs by outcome.",
	}, []string{"outcome"})

	// QueryDuration tracks end-to-end latency, split by whether the answer
	// was grounded in search context.
	QueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "seeker",
		Name:      "query_duration_seconds",
		Help:      "End-to-end question latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"used_search"})

	// SearchesTotal counts search provider calls by outcome (ok, empty, error).
	SearchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "seeker",
		Name:      "searches_total",
		Help:      "Search provider calls by outcome.",
	}, []string{"outcome"})

	// PlannerFallbacksTotal counts planner degradations to needs_search=false
	// by cause (disabled, llm_error, parse_error, empty_query).
	PlannerFallbacksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "seeker",
		Name:      "planner_fallbacks_total",
		Help:      "Planner degradations by cause.",
	}, []string{"cause"})

	// LLMCallDuration tracks LLM round trips by purpose (planning, synthesis).
	LLMCallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "seeker",
		Name:      "llm_call_duration_seconds",
		Help:      "LLM call latency by purpose.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"purpose"})
)
