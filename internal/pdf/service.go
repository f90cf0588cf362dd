package pdf

import (
	"context"
	"time"

	"tapquote_backend/internal/quotes/domain"
	"tapquote_backend/platform/config"
	"tapquote_backend/platform/logger"
)

// Service stamps quotes into documents and hands them to a Renderer.
type Service struct {
	renderer Renderer
	business Business
	taxRate  float64
	now      func() time.Time
}

// NewService creates a document service. taxRate only labels the tax row;
// the amounts come from the quote itself.
func NewService(renderer Renderer, business Business, taxRate float64) *Service {
	return &Service{
		renderer: renderer,
		business: business,
		taxRate:  taxRate,
		now:      time.Now,
	}
}

// NewServiceFromConfig selects the Gotenberg renderer when a URL is
// configured and the in-process renderer otherwise.
func NewServiceFromConfig(biz config.BusinessConfig, gotenberg config.GotenbergConfig, taxRate float64, log *logger.Logger) *Service {
	var renderer Renderer = MarotoRenderer{}
	if gotenberg.IsGotenbergEnabled() {
		client := NewGotenbergClient(gotenberg.GetGotenbergURL(), gotenberg.GetGotenbergUsername(), gotenberg.GetGotenbergPassword())
		renderer = NewGotenbergRenderer(client)
		if log != nil {
			log.Info("pdf rendering via gotenberg", "url", gotenberg.GetGotenbergURL())
		}
	}
	return NewService(renderer, BusinessFromConfig(biz), taxRate)
}

// BusinessFromConfig copies the issuer details out of cfg.
func BusinessFromConfig(cfg config.BusinessConfig) Business {
	return Business{
		Name:    cfg.GetBusinessName(),
		Address: cfg.GetBusinessAddress(),
		Phone:   cfg.GetBusinessPhone(),
		Email:   cfg.GetBusinessEmail(),
		Region:  cfg.GetPhoneRegion(),
	}
}

// SetClock overrides the time source used for quote numbers and dates.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// RenderQuote renders q as a PDF.
func (s *Service) RenderQuote(ctx context.Context, q domain.Quote) ([]byte, error) {
	return s.renderer.Render(ctx, NewDocument(q, s.business, s.taxRate, s.now()))
}
