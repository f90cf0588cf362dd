// Package ai selects the text-generation backend used for quote drafting.
// This is part of the platform layer and contains no business logic.
package ai

import (
	"context"
	"fmt"

	"tapquote_backend/platform/ai/openai"
	"tapquote_backend/platform/config"

	"google.golang.org/adk/model"
	"google.golang.org/adk/model/gemini"
	"google.golang.org/genai"
)

// NewModel builds the configured model.LLM. It returns (nil, nil) when no
// API key is configured; callers treat that as "use the rule-based drafter".
func NewModel(ctx context.Context, cfg config.LLMConfig) (model.LLM, error) {
	if !cfg.IsLLMEnabled() {
		return nil, nil
	}

	switch cfg.GetLLMProvider() {
	case config.ProviderGemini:
		llm, err := gemini.NewModel(ctx, cfg.GetLLMModel(), &genai.ClientConfig{
			APIKey:  cfg.GetLLMAPIKey(),
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("create gemini model: %w", err)
		}
		return llm, nil
	case config.ProviderOpenAI:
		return openai.NewModel(openai.Config{
			APIKey:  cfg.GetLLMAPIKey(),
			BaseURL: cfg.GetLLMBaseURL(),
			Model:   cfg.GetLLMModel(),
		}), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.GetLLMProvider())
	}
}
