package domain

import (
	"math"

	"tapquote_backend/platform/apperr"
)

// Breakdown is the priced result for one material/labor triple.
type Breakdown struct {
	UnitCostWithMarkup float64 `json:"unit_cost_with_markup"`
	MaterialTotal      float64 `json:"material_total"`
	LaborCost          float64 `json:"labor_cost"`
	LineTotal          float64 `json:"line_total"`
}

// Validate rejects pricing policies no quote can be computed from.
func (c PricingConfig) Validate() error {
	for _, v := range []float64{c.LaborRate, c.MaterialMarkup, c.TaxRate} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return apperr.Validation("pricing rates must be finite and non-negative").WithOp("quotes.PricingConfig")
		}
	}
	return nil
}

// Price applies markup and labor rate. Intermediate values keep full
// precision; every field is rounded to cents only on return.
//
//	unit_cost_with_markup = base_cost * (1 + markup/100)
//	material_total        = unit_cost_with_markup * quantity
//	labor_cost            = labor_hours * labor_rate
//	line_total            = material_total + labor_cost
func Price(baseCost float64, quantity int, laborHours float64, cfg PricingConfig) (Breakdown, error) {
	const op = "quotes.Price"
	switch {
	case !(baseCost > 0) || math.IsInf(baseCost, 0):
		return Breakdown{}, apperr.Validation("base cost must be a positive number").WithOp(op)
	case quantity <= 0:
		return Breakdown{}, apperr.Validation("quantity must be a positive integer").WithOp(op)
	case !(laborHours >= 0) || math.IsInf(laborHours, 0):
		return Breakdown{}, apperr.Validation("labor hours must be a non-negative number").WithOp(op)
	}

	unit := baseCost * (1 + cfg.MaterialMarkup/100)
	material := unit * float64(quantity)
	labor := laborHours * cfg.LaborRate

	return Breakdown{
		UnitCostWithMarkup: Round2(unit),
		MaterialTotal:      Round2(material),
		LaborCost:          Round2(labor),
		LineTotal:          Round2(material + labor),
	}, nil
}
