package agent

import (
	"context"
	"errors"
	"iter"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/adk/model"
	"google.golang.org/genai"

	"tapquote_backend/internal/quotes/domain"
	"tapquote_backend/internal/quotes/ports"
)

type fakeLLM struct {
	text    string
	err     error
	lastReq *model.LLMRequest
	calls   int
}

func (f *fakeLLM) Name() string { return "fake-model" }

func (f *fakeLLM) GenerateContent(_ context.Context, req *model.LLMRequest, _ bool) iter.Seq2[*model.LLMResponse, error] {
	f.calls++
	f.lastReq = req
	return func(yield func(*model.LLMResponse, error) bool) {
		if f.err != nil {
			yield(nil, f.err)
			return
		}
		yield(&model.LLMResponse{
			Content: &genai.Content{
				Role: genai.RoleModel,
				Parts: []*genai.Part{
					{Text: "thinking about it", Thought: true},
					{Text: f.text},
				},
			},
		}, nil)
	}
}

func defaultRequest(job string) Request {
	return Request{
		JobDescription:   job,
		CustomerName:     "Jane",
		MaterialsContext: noMaterialsContext,
		Pricing:          domain.DefaultPricing(),
	}
}

func TestNewDecomposer_SelectsStrategy(t *testing.T) {
	if got := NewDecomposer(nil, nil).Name(); got != StrategyRules {
		t.Fatalf("expected rules strategy without a model, got %s", got)
	}
	if got := NewDecomposer(&fakeLLM{}, nil).Name(); got != StrategyLLM {
		t.Fatalf("expected llm strategy with a model, got %s", got)
	}
}

func TestRuleDecomposer_DownlightsAndGPO(t *testing.T) {
	items, err := NewRuleDecomposer().Decompose(context.Background(), defaultRequest("Install 6 LED downlights and 2 GPOs"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []domain.LineItem{
		{
			Description:      "LED Downlight 10W installation (supply & fit)",
			Qty:              6,
			UnitMaterialCost: 30,
			EstimatedHours:   4.5,
			LaborCost:        382.5,
			LineTotal:        562.5,
		},
		{
			Description:      "Clipsal Double GPO 10A installation",
			Qty:              1,
			UnitMaterialCost: 15,
			EstimatedHours:   0.5,
			LaborCost:        42.5,
			LineTotal:        57.5,
		},
	}
	if diff := cmp.Diff(want, items); diff != "" {
		t.Fatalf("line items mismatch (-want +got):\n%s", diff)
	}

	q := domain.Assemble(items, "Jane", "Install 6 LED downlights and 2 GPOs", domain.DefaultPricing())
	if q.GrandTotal != domain.Round2(1.10*(562.5+57.5)) {
		t.Fatalf("expected grand total 682, got %v", q.GrandTotal)
	}
}

func TestRuleDecomposer_DownlightDefaultsToFour(t *testing.T) {
	items, err := NewRuleDecomposer().Decompose(context.Background(), defaultRequest("Swap the LED fittings in the hallway"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Qty != 4 || items[0].EstimatedHours != 3 {
		t.Fatalf("expected qty 4 and 3 hours, got %d and %v", items[0].Qty, items[0].EstimatedHours)
	}
}

func TestRuleDecomposer_PoolCircuit(t *testing.T) {
	items, err := NewRuleDecomposer().Decompose(context.Background(), defaultRequest("Run a dedicated circuit for the pool pump"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []domain.LineItem{{
		Description:      "20A Circuit for pool pump (inc. breaker, 4mm cable 15m, isolator)",
		Qty:              1,
		UnitMaterialCost: 174.6,
		EstimatedHours:   2.5,
		LaborCost:        212.5,
		LineTotal:        387.1,
	}}
	if diff := cmp.Diff(want, items); diff != "" {
		t.Fatalf("line items mismatch (-want +got):\n%s", diff)
	}
}

func TestRuleDecomposer_TriggersCoFire(t *testing.T) {
	items, err := NewRuleDecomposer().Decompose(context.Background(), defaultRequest("2 downlights, a new power point and a 20A circuit"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0].Qty != 2 {
		t.Fatalf("expected first numeric token to set qty 2, got %d", items[0].Qty)
	}
}

func TestRuleDecomposer_Fallback(t *testing.T) {
	items, err := NewRuleDecomposer().Decompose(context.Background(), defaultRequest("Rewire the shed"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 fallback item, got %d", len(items))
	}
	item := items[0]
	if !item.IsEstimate {
		t.Fatal("fallback item must be flagged as an estimate")
	}
	if item.LineTotal != 50+domain.DefaultPricing().LaborRate {
		t.Fatalf("expected line total 135, got %v", item.LineTotal)
	}
}

func TestRuleDecomposer_UsesConfiguredPricing(t *testing.T) {
	req := defaultRequest("Rewire the shed")
	req.Pricing = domain.PricingConfig{LaborRate: 100, MaterialMarkup: 35, TaxRate: 10}

	items, err := NewRuleDecomposer().Decompose(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items[0].LineTotal != 150 {
		t.Fatalf("expected line total 150 at $100/h, got %v", items[0].LineTotal)
	}

	req.JobDescription = "Install 2 downlights"
	items, err = NewRuleDecomposer().Decompose(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Display cost stays at 30 while the priced total uses 35% markup.
	if items[0].UnitMaterialCost != 30 {
		t.Fatalf("expected fixed display cost 30, got %v", items[0].UnitMaterialCost)
	}
	if want := domain.Round2(25*1.35*2 + 1.5*100); items[0].LineTotal != want {
		t.Fatalf("expected line total %v, got %v", want, items[0].LineTotal)
	}
}

func TestFirstCount(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"Install 6 LED downlights", 6},
		{"install 0 then 3 lights", 3},
		{"6x downlights", 4},
		{"no numbers here", 4},
		{"12 downlights and 2 GPOs", 12},
	}
	for _, tt := range tests {
		if got := firstCount(tt.in, 4); got != tt.want {
			t.Fatalf("firstCount(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "bare object",
			raw:  `{"items":[]}`,
			want: `{"items":[]}`,
		},
		{
			name: "prose around object",
			raw:  "Here is your quote:\n{\"items\":[{\"a\":1}]}\nThanks!",
			want: `{"items":[{"a":1}]}`,
		},
		{
			name: "fenced code block",
			raw:  "```json\n{\"items\": []}\n```",
			want: `{"items": []}`,
		},
		{
			name: "trailing prose with braces",
			raw:  `{"items":[]} and a note {see terms}`,
			want: `{"items":[]}`,
		},
		{
			name: "braces inside strings",
			raw:  `note {x} {"description":"cable {4mm}","qty":1}`,
			want: `{"description":"cable {4mm}","qty":1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestExtractJSON_NoObjectKeepsRawText(t *testing.T) {
	raw := "I'm sorry, I can't produce a quote for that."

	_, err := ExtractJSON(raw)
	genErr, ok := AsGenerationError(err)
	if !ok {
		t.Fatalf("expected GenerationError, got %v", err)
	}
	if genErr.RawResponse != raw {
		t.Fatalf("expected raw text verbatim, got %q", genErr.RawResponse)
	}
}

func TestExtractJSON_InvalidJSON(t *testing.T) {
	raw := `{"items": [ {"description": "x", } }`

	_, err := ExtractJSON(raw)
	genErr, ok := AsGenerationError(err)
	if !ok {
		t.Fatalf("expected GenerationError, got %v", err)
	}
	if genErr.RawResponse != raw {
		t.Fatalf("expected raw text verbatim, got %q", genErr.RawResponse)
	}
	if genErr.Err == nil {
		t.Fatal("expected the parse failure to be attached")
	}
}

const validModelQuote = `Sure! {
  "customer_name": "Jane",
  "job_summary": "Downlights",
  "items": [
    {"description": "LED Downlight", "qty": 6, "unit_material_cost": 30, "estimated_hours": 4.5, "labor_cost": 382.5, "line_total": 562.5, "is_estimate": false},
    {"description": "Smoke alarm", "qty": 1, "unit_material_cost": 54, "estimated_hours": 0.5, "labor_cost": 42.5, "line_total": 96.5, "is_estimate": true}
  ],
  "subtotal": 659,
  "tax": 65.9,
  "grand_total": 724.9
}`

func TestLLMDecomposer_ParsesModelOutput(t *testing.T) {
	llm := &fakeLLM{text: validModelQuote}
	req := defaultRequest("Install 6 LED downlights and a smoke alarm")
	req.MaterialsContext = BuildMaterialsContext([]ports.MaterialMatch{{Name: "LED Downlight 10W", SKU: "HPM-DL10W", BaseCost: 25}})

	items, err := NewLLMDecomposer(llm, nil).Decompose(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []domain.LineItem{
		{Description: "LED Downlight", Qty: 6, UnitMaterialCost: 30, EstimatedHours: 4.5, LaborCost: 382.5, LineTotal: 562.5},
		{Description: "Smoke alarm", Qty: 1, UnitMaterialCost: 54, EstimatedHours: 0.5, LaborCost: 42.5, LineTotal: 96.5, IsEstimate: true},
	}
	if diff := cmp.Diff(want, items); diff != "" {
		t.Fatalf("line items mismatch (-want +got):\n%s", diff)
	}

	if llm.calls != 1 {
		t.Fatalf("expected exactly one model call, got %d", llm.calls)
	}
	cfg := llm.lastReq.Config
	if cfg == nil || cfg.Temperature == nil || *cfg.Temperature != llmTemperature {
		t.Fatalf("expected temperature %v on the request", llmTemperature)
	}
	system := cfg.SystemInstruction.Parts[0].Text
	for _, want := range []string{"Labor Rate: $85/hour", "Material Markup: 20%", "- LED Downlight 10W (SKU: HPM-DL10W): $25.00", "10% GST"} {
		if !strings.Contains(system, want) {
			t.Fatalf("system prompt missing %q:\n%s", want, system)
		}
	}
	user := llm.lastReq.Contents[0].Parts[0].Text
	if !strings.Contains(user, "Job Description: Install 6 LED downlights and a smoke alarm") || !strings.Contains(user, "Customer Name: Jane") {
		t.Fatalf("user prompt missing job or customer:\n%s", user)
	}
}

func TestLLMDecomposer_KeepsInconsistentArithmetic(t *testing.T) {
	llm := &fakeLLM{text: `{"items":[{"description":"GPO","qty":2,"unit_material_cost":15,"estimated_hours":1,"labor_cost":85,"line_total":100}],"subtotal":999}`}

	items, err := NewLLMDecomposer(llm, nil).Decompose(context.Background(), defaultRequest("two GPOs"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items[0].LineTotal != 100 {
		t.Fatalf("model line total must be kept as returned, got %v", items[0].LineTotal)
	}
}

func TestLLMDecomposer_MissingQtyDefaultsToOne(t *testing.T) {
	llm := &fakeLLM{text: `{"items":[{"description":"Inspection","unit_material_cost":0,"estimated_hours":1,"labor_cost":85,"line_total":85}]}`}

	items, err := NewLLMDecomposer(llm, nil).Decompose(context.Background(), defaultRequest("inspect"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items[0].Qty != 1 {
		t.Fatalf("expected qty 1, got %d", items[0].Qty)
	}
}

func TestLLMDecomposer_StructurallyInvalid(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "no items", text: `{"subtotal": 0}`},
		{name: "empty items", text: `{"items": []}`},
		{name: "blank description", text: `{"items":[{"description":" ","qty":1,"line_total":10}]}`},
		{name: "fractional qty", text: `{"items":[{"description":"x","qty":1.5,"line_total":10}]}`},
		{name: "zero qty", text: `{"items":[{"description":"x","qty":0,"line_total":10}]}`},
		{name: "negative cost", text: `{"items":[{"description":"x","qty":1,"labor_cost":-5,"line_total":10}]}`},
		{name: "wrong type", text: `{"items":[{"description":"x","qty":"two","line_total":10}]}`},
		{name: "no json", text: "The job is too vague to quote."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			llm := &fakeLLM{text: tt.text}
			items, err := NewLLMDecomposer(llm, nil).Decompose(context.Background(), defaultRequest("job"))
			if items != nil {
				t.Fatalf("expected no items, got %+v", items)
			}
			genErr, ok := AsGenerationError(err)
			if !ok {
				t.Fatalf("expected GenerationError, got %v", err)
			}
			if genErr.RawResponse != tt.text {
				t.Fatalf("expected raw response %q, got %q", tt.text, genErr.RawResponse)
			}
		})
	}
}

func TestLLMDecomposer_TransportErrorIsNotGenerationError(t *testing.T) {
	boom := errors.New("connection reset")
	llm := &fakeLLM{err: boom}

	_, err := NewLLMDecomposer(llm, nil).Decompose(context.Background(), defaultRequest("job"))
	if !errors.Is(err, boom) {
		t.Fatalf("expected transport error to be wrapped, got %v", err)
	}
	if _, ok := AsGenerationError(err); ok {
		t.Fatal("transport failures must not be reported as GenerationError")
	}
}

func TestBuildMaterialsContext(t *testing.T) {
	if got := BuildMaterialsContext(nil); got != noMaterialsContext {
		t.Fatalf("expected fallback text, got %q", got)
	}

	matches := make([]ports.MaterialMatch, 12)
	for i := range matches {
		matches[i] = ports.MaterialMatch{Name: "Item", SKU: "SKU", BaseCost: 1.5}
	}
	got := BuildMaterialsContext(matches)
	if n := strings.Count(got, "\n- "); n != MaxContextMaterials {
		t.Fatalf("expected %d material lines, got %d", MaxContextMaterials, n)
	}
	if !strings.HasPrefix(got, "Available Materials (with base costs before markup):\n- Item (SKU: SKU): $1.50\n") {
		t.Fatalf("unexpected context format:\n%s", got)
	}
}
