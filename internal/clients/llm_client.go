package clients

import (
	"context"
	"fmt"

	"github.com/spacesedan/commentlabeler/config"
)

// LLMClient is a hosted text-generation backend.
type LLMClient interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	Name() string
}

// NewLLMClient builds the remote client selected by cfg.LLMProvider.
func NewLLMClient(ctx context.Context, cfg config.Config) (LLMClient, error) {
	switch cfg.LLMProvider {
	case config.ProviderGemini:
		return NewGeminiClient(ctx, cfg.GoogleAPIKey, cfg.LLMModel, cfg.LLMRequestTimeout)
	case config.ProviderOpenAI:
		return NewOpenAIClient(cfg.OpenAIAPIKey, cfg.LLMModel, cfg.LLMRequestTimeout)
	default:
		return nil, fmt.Errorf("provider %q has no remote LLM client", cfg.LLMProvider)
	}
}
