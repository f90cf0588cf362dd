package handler

import (
	"context"
	"net/http"

	"tapquote_backend/internal/quotes/agent"
	"tapquote_backend/internal/quotes/domain"
	"tapquote_backend/internal/quotes/service"
	"tapquote_backend/internal/quotes/transport"
	"tapquote_backend/platform/apperr"
	"tapquote_backend/platform/httpkit"
	"tapquote_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest      = "invalid request"
	msgValidationFailed    = "validation failed"
	msgPDFGenerationFailed = "PDF generation failed"
	msgPDFNotConfigured    = "PDF rendering is not configured"
)

// QuoteRenderer turns a finished quote into document bytes.
type QuoteRenderer interface {
	RenderQuote(ctx context.Context, quote domain.Quote) ([]byte, error)
}

// Handler handles HTTP requests for quotes
type Handler struct {
	svc      *service.Service
	val      *validator.Validator
	renderer QuoteRenderer
	provider string
}

// New creates a new quotes handler
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// SetRenderer injects the PDF renderer (set after construction; the pdf
// module is built from the same config later in main).
func (h *Handler) SetRenderer(r QuoteRenderer) {
	h.renderer = r
}

// SetProvider records the configured generation backend for /config.
func (h *Handler) SetProvider(provider string) {
	h.provider = provider
}

// RegisterRoutes registers the quote routes under a /quotes group.
func (h *Handler) RegisterRoutes(rg gin.IRoutes, rateLimit gin.HandlerFunc) {
	rg.POST("/generate", rateLimit, h.Generate)
	rg.POST("/price", h.Price)
	rg.POST("/pdf", rateLimit, h.DownloadPDF)
}

// RegisterLegacyRoutes registers the root paths older frontends call.
func (h *Handler) RegisterLegacyRoutes(rg gin.IRoutes, rateLimit gin.HandlerFunc) {
	rg.POST("/generate-quote", rateLimit, h.Generate)
	rg.POST("/download-pdf", rateLimit, h.DownloadPDF)
}

// Generate drafts a quote from a job description.
// POST /api/v1/quotes/generate
func (h *Handler) Generate(c *gin.Context) {
	var req transport.GenerateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, transport.GenerateQuoteResponse{Error: msgInvalidRequest})
		return
	}
	if err := h.val.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, transport.GenerateQuoteResponse{
			Error:   msgValidationFailed,
			Details: validator.Fields(err),
		})
		return
	}

	quote, err := h.svc.Generate(c.Request.Context(), service.GenerateInput{
		JobDescription: req.JobDescription,
		CustomerName:   req.CustomerName,
	})
	if err != nil {
		_ = c.Error(err)
		resp := transport.GenerateQuoteResponse{Error: "internal server error"}
		if appErr, ok := apperr.As(err); ok {
			resp.Error = appErr.Message
		}
		if genErr, ok := agent.AsGenerationError(err); ok {
			resp.RawResponse = genErr.RawResponse
		}
		c.JSON(httpkit.StatusFor(err), resp)
		return
	}

	httpkit.OK(c, transport.GenerateQuoteResponse{Success: true, Quote: &quote})
}

// Price runs the pricing calculator with the server's policy.
// POST /api/v1/quotes/price
func (h *Handler) Price(c *gin.Context) {
	var req transport.PriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, validator.Fields(err))
		return
	}

	breakdown, err := h.svc.Price(req.BaseCost, req.Quantity, req.LaborHours)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.PriceResponse{
		BaseCost:   req.BaseCost,
		Quantity:   req.Quantity,
		LaborHours: req.LaborHours,
		Breakdown:  breakdown,
	})
}

// DownloadPDF renders a finished quote as a PDF attachment.
// POST /api/v1/quotes/pdf
func (h *Handler) DownloadPDF(c *gin.Context) {
	var req transport.DownloadPDFRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, validator.Fields(err))
		return
	}
	if h.renderer == nil {
		httpkit.HandleError(c, apperr.Internal(msgPDFNotConfigured))
		return
	}

	quote := *req.Quote
	quote.CustomerName = domain.NormalizeCustomerName(quote.CustomerName)

	pdfBytes, err := h.renderer.RenderQuote(c.Request.Context(), quote)
	if err != nil {
		httpkit.HandleError(c, apperr.Wrap(apperr.KindInternal, msgPDFGenerationFailed, err))
		return
	}

	servePDFBytes(c, quote.CustomerName, pdfBytes)
}

// Config exposes the pricing policy and whether a model is configured.
// GET /api/v1/config
func (h *Handler) Config(c *gin.Context) {
	pricing := h.svc.Pricing()
	strategy := h.svc.Strategy()

	resp := transport.ConfigResponse{
		LaborRate:      pricing.LaborRate,
		MaterialMarkup: pricing.MaterialMarkup,
		TaxRate:        pricing.TaxRate,
		APIConfigured:  strategy == agent.StrategyLLM,
		Strategy:       strategy,
	}
	if resp.APIConfigured {
		resp.Provider = h.provider
	}
	httpkit.OK(c, resp)
}
