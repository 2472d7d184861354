package provider

import (
	"context"
	"errors"

	"github.com/seekerhq/seeker/config"
	openai_provider "github.com/seekerhq/seeker/provider/openai"
)

// Client represents different LLM providers
type Client string

const (
	OpenAI    Client = "openai"
	Anthropic Client = "anthropic"
)

// Provider is the interface that all LLM implementations must satisfy.
// Chat sends a single prompt exchange and returns the raw completion text;
// system may be empty. maxTokens <= 0 leaves the provider default in place.
type Provider interface {
	Chat(ctx context.Context, system, user string, temperature float64, maxTokens int) (string, error)
}

// NewProvider creates a new LLM client based on the provided configuration.
func NewProvider(cfg config.LLMConfig) (Provider, error) {
	switch Client(cfg.Provider) {
	case OpenAI, "":
		if cfg.APIKey == "" {
			return nil, errors.New("llm api key not set")
		}
		return openai_provider.NewOpenAIClient(cfg.APIKey, cfg.Model, cfg.BaseURL, cfg.Timeout), nil
	case Anthropic:
		return nil, errors.New("anthropic client not implemented yet")
	default:
		return nil, errors.New("unsupported LLM provider")
	}
}
