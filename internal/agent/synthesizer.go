package agent

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/seekerhq/seeker/config"
	"github.com/seekerhq/seeker/internal/telemetry"
	"github.com/seekerhq/seeker/models"
	"github.com/seekerhq/seeker/provider"
)

const groundedSystemPrompt = `You are a helpful research assistant. Answer the user's question based on the search results provided.

Guidelines:
- Provide a comprehensive answer based on the search results
- If the search results don't contain relevant information, say so
- Cite sources when possible by mentioning the source title
- Do not invent facts that the search results do not support
- Be concise but thorough`

const ungroundedSystemPrompt = `You are a helpful assistant. Answer the question based on your knowledge. Provide a clear, accurate, and helpful response. Do not claim that a web search was performed.`

// LLMSynthesizer writes the final answer. With a non-empty context it grounds
// the answer in the numbered passages; otherwise it answers from the model's
// own knowledge. Either way the original question is used, never the
// rewritten search query, and the answer text passes through verbatim.
type LLMSynthesizer struct {
	llm         provider.Provider
	temperature float64
	maxTokens   int
	logger      *log.Logger
}

func NewLLMSynthesizer(cfg config.LLMConfig, llm provider.Provider) *LLMSynthesizer {
	return &LLMSynthesizer{
		llm:         llm,
		temperature: cfg.AnswerTemperature,
		maxTokens:   cfg.MaxTokens,
		logger:      log.New(log.Writer(), "[SYNTH] ", log.LstdFlags),
	}
}

func (s *LLMSynthesizer) Synthesize(ctx context.Context, question string, agg models.AggregatedContext) (string, error) {
	system := ungroundedSystemPrompt
	user := question
	if !agg.IsEmpty() {
		system = groundedSystemPrompt
		user = fmt.Sprintf("Search results:\n%s\nQuestion: %s", agg.FormattedPassages, question)
	}

	start := time.Now()
	answer, err := s.llm.Chat(ctx, system, user, s.temperature, s.maxTokens)
	telemetry.LLMCallDuration.WithLabelValues("synthesis").Observe(time.Since(start).Seconds())
	if err != nil {
		s.logger.Printf("synthesis call failed: %v", err)
		return "", &SynthesisError{Err: err}
	}
	return answer, nil
}
