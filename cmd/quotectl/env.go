package main

import (
	"context"
	"fmt"

	"tapquote_backend/internal/adapters"
	"tapquote_backend/internal/catalog"
	catalogservice "tapquote_backend/internal/catalog/service"
	"tapquote_backend/internal/pdf"
	"tapquote_backend/internal/quotes/agent"
	"tapquote_backend/internal/quotes/domain"
	"tapquote_backend/internal/quotes/service"
	"tapquote_backend/platform/ai"
	"tapquote_backend/platform/config"
	"tapquote_backend/platform/logger"
	"tapquote_backend/platform/validator"
)

// env holds the services the commands run against.
type env struct {
	catalog   *catalogservice.Service
	quotes    *service.Service
	documents *pdf.Service
}

func newEnv(ctx context.Context, cfg *config.Config, log *logger.Logger) (*env, error) {
	catalogModule, err := catalog.NewModule(cfg, validator.New(), log)
	if err != nil {
		return nil, err
	}

	pricing := domain.PricingConfig{
		LaborRate:      cfg.GetLaborRate(),
		MaterialMarkup: cfg.GetMaterialMarkup(),
		TaxRate:        cfg.GetTaxRate(),
	}
	if err := pricing.Validate(); err != nil {
		return nil, err
	}

	llm, err := ai.NewModel(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("initialize language model: %w", err)
	}

	searcher := adapters.NewCatalogMaterialSearcher(catalogModule.Service())
	quotes := service.New(searcher, agent.NewDecomposer(llm, log), pricing, log)
	quotes.SetGenerationTimeout(cfg.GetLLMTimeout())

	return &env{
		catalog:   catalogModule.Service(),
		quotes:    quotes,
		documents: pdf.NewServiceFromConfig(cfg, cfg, pricing.TaxRate, log),
	}, nil
}
