// Package pdf renders finished quotes as PDF documents. Maroto draws the
// document in-process; when a Gotenberg instance is configured the same
// document is rendered from HTML instead.
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"tapquote_backend/internal/quotes/domain"
	"tapquote_backend/platform/phone"
)

const (
	quoteNumberLayout = "20060102150405"
	dateLayout        = "02 January 2006"

	estimateFootnote = "* Marked items are estimates only. Actual prices may vary."
	estimateMarker   = " *"
)

var terms = []string{
	"This quote is valid for 30 days from the date of issue.",
	"Payment terms: 50% deposit, balance on completion.",
	"All work is guaranteed for 12 months.",
	"Prices include GST.",
}

// Business is the issuer block printed on every quote.
type Business struct {
	Name    string
	Address string
	Phone   string
	Email   string
	Region  string // phone region, e.g. "AU"
}

// DisplayPhone is the phone in national format, or as configured when it
// cannot be parsed.
func (b Business) DisplayPhone() string {
	return phone.Display(b.Phone, b.Region)
}

// DialPhone is the phone in E.164 for tel: links.
func (b Business) DialPhone() string {
	return phone.NormalizeE164(b.Phone, b.Region)
}

// Document is everything a renderer needs for one quote.
type Document struct {
	Quote       domain.Quote
	Business    Business
	TaxRate     float64
	QuoteNumber string
	IssuedAt    time.Time
}

// NewDocument stamps q with a quote number and issue date derived from now.
func NewDocument(q domain.Quote, business Business, taxRate float64, now time.Time) Document {
	q.CustomerName = domain.NormalizeCustomerName(q.CustomerName)
	return Document{
		Quote:       q,
		Business:    business,
		TaxRate:     taxRate,
		QuoteNumber: "Q-" + now.Format(quoteNumberLayout),
		IssuedAt:    now,
	}
}

// IssuedOn is the issue date as printed.
func (d Document) IssuedOn() string {
	return d.IssuedAt.Format(dateLayout)
}

// TaxLabel is the label of the tax row, e.g. "GST (10%)".
func (d Document) TaxLabel() string {
	return fmt.Sprintf("GST (%s%%)", strconv.FormatFloat(d.TaxRate, 'f', -1, 64))
}

// ItemDescription marks estimate rows.
func ItemDescription(item domain.LineItem) string {
	if item.IsEstimate {
		return item.Description + estimateMarker
	}
	return item.Description
}

// Renderer turns a Document into PDF bytes.
type Renderer interface {
	Render(ctx context.Context, doc Document) ([]byte, error)
}

func formatCurrency(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
