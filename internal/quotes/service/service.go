package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"tapquote_backend/internal/quotes/agent"
	"tapquote_backend/internal/quotes/domain"
	"tapquote_backend/internal/quotes/ports"
	"tapquote_backend/platform/apperr"
	"tapquote_backend/platform/logger"
)

// GenerateInput is the inbound request for a quote draft.
type GenerateInput struct {
	JobDescription string
	CustomerName   string
}

// Service provides business logic for quotes
type Service struct {
	searcher   ports.MaterialSearcher
	decomposer agent.Decomposer
	pricing    domain.PricingConfig
	timeout    time.Duration // zero means no deadline beyond the caller's
	log        *logger.Logger
}

// New creates a new quotes service. The pricing policy is copied and never
// changes afterwards.
func New(searcher ports.MaterialSearcher, decomposer agent.Decomposer, pricing domain.PricingConfig, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Discard()
	}
	return &Service{
		searcher:   searcher,
		decomposer: decomposer,
		pricing:    pricing,
		log:        log,
	}
}

// SetGenerationTimeout bounds each decomposition call.
func (s *Service) SetGenerationTimeout(d time.Duration) {
	s.timeout = d
}

// Pricing returns the pricing policy in effect.
func (s *Service) Pricing() domain.PricingConfig {
	return s.pricing
}

// Strategy names the decomposer in use.
func (s *Service) Strategy() string {
	return s.decomposer.Name()
}

// Price runs the pricing calculator with the service's policy.
func (s *Service) Price(baseCost float64, quantity int, laborHours float64) (domain.Breakdown, error) {
	return domain.Price(baseCost, quantity, laborHours, s.pricing)
}

// Generate drafts a priced quote: material search, decomposition, assembly.
// A failed decomposition yields no quote at all.
func (s *Service) Generate(ctx context.Context, in GenerateInput) (domain.Quote, error) {
	const op = "quotes.Generate"

	job := strings.TrimSpace(in.JobDescription)
	if job == "" {
		return domain.Quote{}, apperr.Validation("job description is required").WithOp(op)
	}
	customer := domain.NormalizeCustomerName(in.CustomerName)
	log := s.log.WithContext(ctx)

	matches, err := s.searcher.SearchMaterials(ctx, job, agent.MaxContextMaterials)
	if err != nil {
		return domain.Quote{}, apperr.Wrap(apperr.KindInternal, "material search failed", err).WithOp(op)
	}

	req := agent.Request{
		JobDescription:   job,
		CustomerName:     customer,
		MaterialsContext: agent.BuildMaterialsContext(matches),
		Pricing:          s.pricing,
	}

	items, err := s.decompose(ctx, req)
	if err != nil {
		rawLen := 0
		if genErr, ok := agent.AsGenerationError(err); ok {
			rawLen = len(genErr.RawResponse)
		}
		log.GenerationFailed(s.decomposer.Name(), err, rawLen)
		return domain.Quote{}, s.classify(err).WithOp(op)
	}

	quote := domain.Assemble(items, customer, job, s.pricing)
	log.QuoteGenerated(s.decomposer.Name(), len(quote.Items), quote.GrandTotal)
	return quote, nil
}

func (s *Service) decompose(ctx context.Context, req agent.Request) ([]domain.LineItem, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	return s.decomposer.Decompose(ctx, req)
}

func (s *Service) classify(err error) *apperr.Error {
	if genErr, ok := agent.AsGenerationError(err); ok {
		return apperr.Unavailable(genErr.Error(), err)
	}
	if appErr, ok := apperr.As(err); ok {
		return appErr
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return apperr.Unavailable("text generation timed out", err)
	}
	return apperr.Unavailable("text generation failed", err)
}
