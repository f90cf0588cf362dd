// Package domain holds the quote value types and the pure pricing and
// assembly rules shared by every quote drafting strategy.
package domain

import (
	"math"
	"unicode/utf8"

	"tapquote_backend/platform/sanitize"
)

const (
	// DefaultCustomerName is used when the caller gives no customer.
	DefaultCustomerName = "Customer"

	jobSummaryLimit = 100
	ellipsis        = "..."
)

// PricingConfig is the process-wide pricing policy. It is built once at
// startup and passed by value into every computation.
type PricingConfig struct {
	LaborRate      float64 `json:"labor_rate"`      // currency per hour
	MaterialMarkup float64 `json:"material_markup"` // percent
	TaxRate        float64 `json:"tax_rate"`        // percent
}

// DefaultPricing returns the stock policy: $85/h labor, 20% markup, 10% GST.
func DefaultPricing() PricingConfig {
	return PricingConfig{LaborRate: 85, MaterialMarkup: 20, TaxRate: 10}
}

// LineItem is one billable unit of work.
type LineItem struct {
	Description      string  `json:"description"`
	Qty              int     `json:"qty"`
	UnitMaterialCost float64 `json:"unit_material_cost"`
	EstimatedHours   float64 `json:"estimated_hours"`
	LaborCost        float64 `json:"labor_cost"`
	LineTotal        float64 `json:"line_total"`
	IsEstimate       bool    `json:"is_estimate"`
}

// ExpectedTotal is qty * unit_material_cost + labor_cost rounded to cents.
func (li LineItem) ExpectedTotal() float64 {
	return Round2(float64(li.Qty)*li.UnitMaterialCost + li.LaborCost)
}

// Consistent reports whether LineTotal matches ExpectedTotal within a cent.
func (li LineItem) Consistent() bool {
	return math.Abs(li.LineTotal-li.ExpectedTotal()) <= 0.01+1e-9
}

// Quote is a finished, priced quote.
type Quote struct {
	CustomerName string     `json:"customer_name"`
	JobSummary   string     `json:"job_summary"`
	Items        []LineItem `json:"items"`
	Subtotal     float64    `json:"subtotal"`
	Tax          float64    `json:"tax"`
	GrandTotal   float64    `json:"grand_total"`
}

// HasEstimates reports whether any line is a market estimate.
func (q Quote) HasEstimates() bool {
	for _, item := range q.Items {
		if item.IsEstimate {
			return true
		}
	}
	return false
}

// Round2 rounds to cents, halves away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// NormalizeCustomerName strips markup and surrounding whitespace from name
// and falls back to DefaultCustomerName when nothing is left.
func NormalizeCustomerName(name string) string {
	if cleaned := sanitize.Name(name); cleaned != "" {
		return cleaned
	}
	return DefaultCustomerName
}

// SummarizeJob truncates description to 100 characters and appends "..."
// when it is longer; shorter descriptions pass through unchanged.
func SummarizeJob(description string) string {
	if utf8.RuneCountInString(description) <= jobSummaryLimit {
		return description
	}
	runes := []rune(description)
	return string(runes[:jobSummaryLimit]) + ellipsis
}
