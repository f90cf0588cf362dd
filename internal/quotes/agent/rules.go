package agent

import (
	"context"
	"strconv"
	"strings"

	"tapquote_backend/internal/quotes/domain"
)

const (
	defaultDownlightQty   = 4
	downlightHoursPerUnit = 0.75

	// Display unit costs are fixed. They equal base*1.2 and drift from the
	// priced line whenever the configured markup is not 20%.
	downlightDisplayCost = 30.00
	gpoDisplayCost       = 15.00

	circuitLaborHours = 2.5

	fallbackMaterialCost = 50.00
	fallbackHours        = 1.0
)

// RuleDecomposer drafts items from fixed keyword triggers. Triggers are
// independent; each one that fires appends its own item.
type RuleDecomposer struct{}

var _ Decomposer = RuleDecomposer{}

func NewRuleDecomposer() RuleDecomposer {
	return RuleDecomposer{}
}

func (RuleDecomposer) Name() string {
	return StrategyRules
}

// Decompose never returns a *GenerationError; errors come only from a
// canceled context or a pricing policy the calculator rejects.
func (RuleDecomposer) Decompose(ctx context.Context, req Request) ([]domain.LineItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	desc := strings.ToLower(req.JobDescription)
	cfg := req.Pricing
	var items []domain.LineItem

	if containsAny(desc, "downlight", "led") {
		item, err := downlightItem(req.JobDescription, cfg)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if containsAny(desc, "gpo", "outlet", "power point") {
		item, err := gpoItem(cfg)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if containsAny(desc, "circuit", "20a", "pool") {
		item, err := circuitItem(cfg)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		items = append(items, fallbackItem(cfg))
	}

	return items, nil
}

func downlightItem(description string, cfg domain.PricingConfig) (domain.LineItem, error) {
	qty := firstCount(description, defaultDownlightQty)
	hours := downlightHoursPerUnit * float64(qty)

	p, err := domain.Price(25.00, qty, hours, cfg)
	if err != nil {
		return domain.LineItem{}, err
	}
	return domain.LineItem{
		Description:      "LED Downlight 10W installation (supply & fit)",
		Qty:              qty,
		UnitMaterialCost: downlightDisplayCost,
		EstimatedHours:   hours,
		LaborCost:        p.LaborCost,
		LineTotal:        p.LineTotal,
	}, nil
}

func gpoItem(cfg domain.PricingConfig) (domain.LineItem, error) {
	p, err := domain.Price(12.50, 1, 0.5, cfg)
	if err != nil {
		return domain.LineItem{}, err
	}
	return domain.LineItem{
		Description:      "Clipsal Double GPO 10A installation",
		Qty:              1,
		UnitMaterialCost: gpoDisplayCost,
		EstimatedHours:   0.5,
		LaborCost:        p.LaborCost,
		LineTotal:        p.LineTotal,
	}, nil
}

// circuitItem bundles breaker, 15m of 4mm cable and isolator into one line.
func circuitItem(cfg domain.PricingConfig) (domain.LineItem, error) {
	parts := []struct {
		base float64
		qty  int
	}{
		{18.00, 1}, // 20A breaker
		{5.50, 15}, // 4mm cable per metre
		{45.00, 1}, // isolator
	}

	var material float64
	for _, part := range parts {
		p, err := domain.Price(part.base, part.qty, 0, cfg)
		if err != nil {
			return domain.LineItem{}, err
		}
		material += p.MaterialTotal
	}

	labor := domain.Round2(circuitLaborHours * cfg.LaborRate)
	return domain.LineItem{
		Description:      "20A Circuit for pool pump (inc. breaker, 4mm cable 15m, isolator)",
		Qty:              1,
		UnitMaterialCost: domain.Round2(material),
		EstimatedHours:   circuitLaborHours,
		LaborCost:        labor,
		LineTotal:        domain.Round2(material + labor),
	}, nil
}

func fallbackItem(cfg domain.PricingConfig) domain.LineItem {
	labor := domain.Round2(fallbackHours * cfg.LaborRate)
	return domain.LineItem{
		Description:      "Electrical work as described",
		Qty:              1,
		UnitMaterialCost: fallbackMaterialCost,
		EstimatedHours:   fallbackHours,
		LaborCost:        labor,
		LineTotal:        domain.Round2(fallbackMaterialCost + labor),
		IsEstimate:       true,
	}
}

// firstCount returns the first whitespace-separated token that is a
// positive whole number written in ASCII digits, or fallback.
func firstCount(description string, fallback int) int {
	for _, word := range strings.Fields(description) {
		if !isDigits(word) {
			continue
		}
		n, err := strconv.Atoi(word)
		if err != nil || n <= 0 {
			continue
		}
		return n
	}
	return fallback
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func containsAny(s string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
