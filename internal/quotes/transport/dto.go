package transport

import "tapquote_backend/internal/quotes/domain"

// ── Requests ──────────────────────────────────────────────────────────────────

// GenerateQuoteRequest is the body of a quote generation call.
type GenerateQuoteRequest struct {
	JobDescription string `json:"job_description" validate:"required,notblank,max=5000"`
	CustomerName   string `json:"customer_name" validate:"max=200"`
}

// PriceRequest asks the pricing calculator for one breakdown.
type PriceRequest struct {
	BaseCost   float64 `json:"base_cost" validate:"gt=0"`
	Quantity   int     `json:"quantity" validate:"gte=1"`
	LaborHours float64 `json:"labor_hours" validate:"gte=0"`
}

// DownloadPDFRequest carries a finished quote to render.
type DownloadPDFRequest struct {
	Quote *domain.Quote `json:"quote" validate:"required"`
}

// ── Responses ─────────────────────────────────────────────────────────────────

// GenerateQuoteResponse is the envelope returned by quote generation.
// RawResponse is set only when the model output could not be used.
type GenerateQuoteResponse struct {
	Success     bool          `json:"success"`
	Quote       *domain.Quote `json:"quote,omitempty"`
	Error       string        `json:"error,omitempty"`
	Details     interface{}   `json:"details,omitempty"`
	RawResponse string        `json:"rawResponse,omitempty"`
}

// PriceResponse echoes the inputs next to the computed breakdown.
type PriceResponse struct {
	BaseCost   float64 `json:"base_cost"`
	Quantity   int     `json:"quantity"`
	LaborHours float64 `json:"labor_hours"`
	domain.Breakdown
}

// ConfigResponse exposes the pricing policy and generation backend state.
type ConfigResponse struct {
	LaborRate      float64 `json:"labor_rate"`
	MaterialMarkup float64 `json:"material_markup"`
	TaxRate        float64 `json:"tax_rate"`
	APIConfigured  bool    `json:"api_configured"`
	Strategy       string  `json:"strategy"`
	Provider       string  `json:"provider,omitempty"`
}
