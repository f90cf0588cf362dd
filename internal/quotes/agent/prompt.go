package agent

import (
	"fmt"
	"strconv"
	"strings"

	"tapquote_backend/internal/quotes/ports"
)

// MaxContextMaterials caps how many search hits go into the prompt.
const MaxContextMaterials = 10

const noMaterialsContext = "No exact matches found in database. Use realistic market estimates and flag as estimates."

// BuildMaterialsContext formats search hits for the system prompt.
func BuildMaterialsContext(matches []ports.MaterialMatch) string {
	if len(matches) == 0 {
		return noMaterialsContext
	}
	if len(matches) > MaxContextMaterials {
		matches = matches[:MaxContextMaterials]
	}

	var sb strings.Builder
	sb.WriteString("Available Materials (with base costs before markup):\n")
	for _, m := range matches {
		fmt.Fprintf(&sb, "- %s (SKU: %s): $%.2f\n", m.Name, m.SKU, m.BaseCost)
	}
	return sb.String()
}

func buildSystemPrompt(req Request) string {
	rate := formatNumber(req.Pricing.LaborRate)
	markup := formatNumber(req.Pricing.MaterialMarkup)
	tax := formatNumber(req.Pricing.TaxRate)
	taxFraction := formatNumber(req.Pricing.TaxRate / 100)

	return fmt.Sprintf(`You are the TapQuote Estimator, an expert electrical quantity surveyor.

Configuration:
- Labor Rate: $%s/hour
- Material Markup: %s%%

%s

Your task is to analyze the job description and create a detailed quote.

Instructions:
1. Break the job into distinct line items (each task/installation is a separate item)
2. For each item, identify the materials needed from the database
3. If a material is not in the database, use a realistic market estimate and set is_estimate to true
4. Estimate reasonable labor hours for each task (typical: GPO install 0.5hr, downlight 0.75hr, circuit run 2-3hr)
5. Calculate costs using:
   - unit_material_cost = base_cost * (1 + markup/100)
   - labor_cost = estimated_hours * labor_rate
   - line_total = (unit_material_cost * qty) + labor_cost
6. Calculate totals:
   - subtotal = sum of all line_totals
   - tax = subtotal * %s (%s%% GST)
   - grand_total = subtotal + tax

Return a valid JSON object matching the schema exactly.`, rate, markup, strings.TrimRight(req.MaterialsContext, "\n"), taxFraction, tax)
}

func buildUserPrompt(req Request) string {
	return fmt.Sprintf(`Job Description: %s

Customer Name: %s

Generate a complete quote as JSON with this exact structure:
{
    "customer_name": "string",
    "job_summary": "string",
    "items": [
        {
            "description": "string",
            "qty": number,
            "unit_material_cost": number,
            "estimated_hours": number,
            "labor_cost": number,
            "line_total": number,
            "is_estimate": boolean
        }
    ],
    "subtotal": number,
    "tax": number,
    "grand_total": number
}`, req.JobDescription, req.CustomerName)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
