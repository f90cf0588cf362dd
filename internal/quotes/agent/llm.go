package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"google.golang.org/adk/model"
	"google.golang.org/genai"

	"tapquote_backend/internal/quotes/domain"
	"tapquote_backend/platform/logger"
)

const llmTemperature float32 = 0.2

// LLMDecomposer asks a text-generation model for the line items. The
// model does the arithmetic; its numbers are kept as returned.
type LLMDecomposer struct {
	llm model.LLM
	log *logger.Logger
}

var _ Decomposer = (*LLMDecomposer)(nil)

// NewLLMDecomposer wraps llm. A nil logger discards output.
func NewLLMDecomposer(llm model.LLM, log *logger.Logger) *LLMDecomposer {
	if log == nil {
		log = logger.Discard()
	}
	return &LLMDecomposer{llm: llm, log: log}
}

func (d *LLMDecomposer) Name() string {
	return StrategyLLM
}

// Decompose issues a single non-streaming request. Transport failures are
// returned wrapped; unusable output is a *GenerationError.
func (d *LLMDecomposer) Decompose(ctx context.Context, req Request) ([]domain.LineItem, error) {
	llmReq := &model.LLMRequest{
		Model:    d.llm.Name(),
		Contents: []*genai.Content{genai.NewContentFromText(buildUserPrompt(req), genai.RoleUser)},
		Config: &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(buildSystemPrompt(req), genai.RoleUser),
			Temperature:       genai.Ptr(llmTemperature),
		},
	}

	raw, err := d.generate(ctx, llmReq)
	if err != nil {
		return nil, err
	}

	body, err := ExtractJSON(raw)
	if err != nil {
		return nil, err
	}

	parsed, err := parseModelQuote(body, raw)
	if err != nil {
		return nil, err
	}

	d.warnOnDrift(ctx, parsed)
	return parsed.items, nil
}

func (d *LLMDecomposer) generate(ctx context.Context, req *model.LLMRequest) (string, error) {
	var sb strings.Builder
	for resp, err := range d.llm.GenerateContent(ctx, req, false) {
		if err != nil {
			return "", fmt.Errorf("generate content: %w", err)
		}
		if resp == nil || resp.Content == nil {
			continue
		}
		for _, part := range resp.Content.Parts {
			if part == nil || part.Thought {
				continue
			}
			sb.WriteString(part.Text)
		}
	}
	return sb.String(), nil
}

type modelItem struct {
	Description      string   `json:"description"`
	Qty              *float64 `json:"qty"`
	UnitMaterialCost float64  `json:"unit_material_cost"`
	EstimatedHours   float64  `json:"estimated_hours"`
	LaborCost        float64  `json:"labor_cost"`
	LineTotal        float64  `json:"line_total"`
	IsEstimate       bool     `json:"is_estimate"`
}

type modelQuote struct {
	Items    []modelItem `json:"items"`
	Subtotal *float64    `json:"subtotal"`
}

type parsedQuote struct {
	items    []domain.LineItem
	subtotal *float64
}

// parseModelQuote decodes body and rejects structurally invalid quotes.
// raw is carried into any error for diagnostics.
func parseModelQuote(body, raw string) (parsedQuote, error) {
	var mq modelQuote
	if err := json.Unmarshal([]byte(body), &mq); err != nil {
		return parsedQuote{}, &GenerationError{Message: "failed to parse quote", RawResponse: raw, Err: err}
	}
	if len(mq.Items) == 0 {
		return parsedQuote{}, &GenerationError{Message: "quote contains no line items", RawResponse: raw}
	}

	items := make([]domain.LineItem, 0, len(mq.Items))
	for i, it := range mq.Items {
		item, err := it.toLineItem()
		if err != nil {
			return parsedQuote{}, &GenerationError{
				Message:     fmt.Sprintf("invalid line item %d", i+1),
				RawResponse: raw,
				Err:         err,
			}
		}
		items = append(items, item)
	}

	return parsedQuote{items: items, subtotal: mq.Subtotal}, nil
}

func (it modelItem) toLineItem() (domain.LineItem, error) {
	desc := strings.TrimSpace(it.Description)
	if desc == "" {
		return domain.LineItem{}, fmt.Errorf("description is empty")
	}

	qty := 1
	if it.Qty != nil {
		q := *it.Qty
		if q < 1 || q != math.Trunc(q) || q > math.MaxInt32 {
			return domain.LineItem{}, fmt.Errorf("qty must be a positive integer, got %v", q)
		}
		qty = int(q)
	}

	amounts := []struct {
		name  string
		value float64
	}{
		{"unit_material_cost", it.UnitMaterialCost},
		{"estimated_hours", it.EstimatedHours},
		{"labor_cost", it.LaborCost},
		{"line_total", it.LineTotal},
	}
	for _, a := range amounts {
		if a.value < 0 {
			return domain.LineItem{}, fmt.Errorf("%s must not be negative, got %v", a.name, a.value)
		}
	}

	return domain.LineItem{
		Description:      desc,
		Qty:              qty,
		UnitMaterialCost: it.UnitMaterialCost,
		EstimatedHours:   it.EstimatedHours,
		LaborCost:        it.LaborCost,
		LineTotal:        it.LineTotal,
		IsEstimate:       it.IsEstimate,
	}, nil
}

// warnOnDrift logs arithmetic the model got wrong. Nothing is corrected.
func (d *LLMDecomposer) warnOnDrift(ctx context.Context, q parsedQuote) {
	log := d.log.WithContext(ctx)

	var sum float64
	for i, item := range q.items {
		sum += item.LineTotal
		if !item.Consistent() {
			log.Warn("model line total disagrees with its parts",
				"item", i+1,
				"line_total", item.LineTotal,
				"expected", item.ExpectedTotal(),
			)
		}
	}

	if q.subtotal != nil && math.Abs(*q.subtotal-domain.Round2(sum)) > 0.01+1e-9 {
		log.Warn("model subtotal disagrees with its line totals",
			"subtotal", *q.subtotal,
			"sum_of_lines", domain.Round2(sum),
		)
	}
}
