// Package agent turns a free-text job description into quote line items.
// Two strategies satisfy Decomposer: an LLM-backed drafter and a
// deterministic keyword drafter used when no model is configured.
package agent

import (
	"context"

	"google.golang.org/adk/model"

	"tapquote_backend/internal/quotes/domain"
	"tapquote_backend/platform/logger"
)

// Strategy names reported in logs and the config endpoint.
const (
	StrategyLLM   = "llm"
	StrategyRules = "rules"
)

// Request carries everything a strategy may use for one decomposition.
type Request struct {
	JobDescription   string
	CustomerName     string
	MaterialsContext string
	Pricing          domain.PricingConfig
}

// Decomposer breaks a job into priced line items. Implementations fail
// with *GenerationError when the output cannot be turned into items.
type Decomposer interface {
	Name() string
	Decompose(ctx context.Context, req Request) ([]domain.LineItem, error)
}

// NewDecomposer selects the LLM strategy when llm is non-nil and the rule
// strategy otherwise. The choice is made once, here.
func NewDecomposer(llm model.LLM, log *logger.Logger) Decomposer {
	if llm == nil {
		return NewRuleDecomposer()
	}
	return NewLLMDecomposer(llm, log)
}
