// Package quotes provides the quote drafting domain module: pricing,
// decomposition of a job into line items, and assembly of the final quote.
package quotes

import (
	"time"

	apphttp "tapquote_backend/internal/http"
	"tapquote_backend/internal/quotes/agent"
	"tapquote_backend/internal/quotes/domain"
	"tapquote_backend/internal/quotes/handler"
	"tapquote_backend/internal/quotes/ports"
	"tapquote_backend/internal/quotes/service"
	"tapquote_backend/platform/logger"
	"tapquote_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"google.golang.org/adk/model"
)

// Dependencies are the collaborators the module is built from. LLM may be
// nil, which selects the rule-based decomposer.
type Dependencies struct {
	Searcher  ports.MaterialSearcher
	LLM       model.LLM
	Provider  string
	Pricing   domain.PricingConfig
	Timeout   time.Duration
	Validator *validator.Validator
	Logger    *logger.Logger
}

// Module represents the quotes domain module
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates a new quotes module with all dependencies wired
func NewModule(deps Dependencies) (*Module, error) {
	if err := deps.Pricing.Validate(); err != nil {
		return nil, err
	}

	decomposer := agent.NewDecomposer(deps.LLM, deps.Logger)
	svc := service.New(deps.Searcher, decomposer, deps.Pricing, deps.Logger)
	svc.SetGenerationTimeout(deps.Timeout)

	h := handler.New(svc, deps.Validator)
	h.SetProvider(deps.Provider)

	return &Module{
		handler: h,
		service: svc,
	}, nil
}

// Name returns the module name for logging
func (m *Module) Name() string {
	return "quotes"
}

// Service returns the service layer for external use
func (m *Module) Service() *service.Service {
	return m.service
}

// SetRenderer injects the document renderer used by the PDF routes.
func (m *Module) SetRenderer(r handler.QuoteRenderer) {
	m.handler.SetRenderer(r)
}

// RegisterRoutes registers the module's routes
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	rateLimit := ctx.RateLimit
	if rateLimit == nil {
		rateLimit = func(c *gin.Context) { c.Next() }
	}

	m.handler.RegisterRoutes(ctx.V1.Group("/quotes"), rateLimit)
	ctx.V1.GET("/config", m.handler.Config)

	m.handler.RegisterLegacyRoutes(ctx.Engine, rateLimit)
	ctx.Engine.GET("/config", m.handler.Config)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
