package domain

import (
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"tapquote_backend/platform/apperr"
)

func TestPrice_DefaultPolicy(t *testing.T) {
	cfg := DefaultPricing()

	tests := []struct {
		name  string
		base  float64
		qty   int
		hours float64
		want  Breakdown
	}{
		{
			name:  "downlights",
			base:  25,
			qty:   6,
			hours: 4.5,
			want:  Breakdown{UnitCostWithMarkup: 30, MaterialTotal: 180, LaborCost: 382.5, LineTotal: 562.5},
		},
		{
			name:  "single gpo",
			base:  12.5,
			qty:   1,
			hours: 0.5,
			want:  Breakdown{UnitCostWithMarkup: 15, MaterialTotal: 15, LaborCost: 42.5, LineTotal: 57.5},
		},
		{
			name:  "material only",
			base:  5.5,
			qty:   15,
			hours: 0,
			want:  Breakdown{UnitCostWithMarkup: 6.6, MaterialTotal: 99, LaborCost: 0, LineTotal: 99},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Price(tt.base, tt.qty, tt.hours, cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestPrice_LineTotalMatchesFormula(t *testing.T) {
	configs := []PricingConfig{
		DefaultPricing(),
		{LaborRate: 92.5, MaterialMarkup: 35, TaxRate: 10},
		{LaborRate: 0, MaterialMarkup: 0, TaxRate: 0},
	}
	bases := []float64{0.01, 1.99, 12.5, 33.33, 450}
	quantities := []int{1, 3, 7, 100}
	hours := []float64{0, 0.25, 0.75, 2.5, 13.3}

	for _, cfg := range configs {
		for _, base := range bases {
			for _, qty := range quantities {
				for _, h := range hours {
					got, err := Price(base, qty, h, cfg)
					if err != nil {
						t.Fatalf("Price(%v, %d, %v): %v", base, qty, h, err)
					}
					want := Round2(base*(1+cfg.MaterialMarkup/100)*float64(qty) + h*cfg.LaborRate)
					if got.LineTotal != want {
						t.Fatalf("Price(%v, %d, %v) with %+v: expected line total %v, got %v", base, qty, h, cfg, want, got.LineTotal)
					}
				}
			}
		}
	}
}

func TestPrice_RejectsInvalidInput(t *testing.T) {
	cfg := DefaultPricing()

	tests := []struct {
		name  string
		base  float64
		qty   int
		hours float64
	}{
		{name: "zero base", base: 0, qty: 1, hours: 1},
		{name: "negative base", base: -4, qty: 1, hours: 1},
		{name: "nan base", base: math.NaN(), qty: 1, hours: 1},
		{name: "infinite base", base: math.Inf(1), qty: 1, hours: 1},
		{name: "zero quantity", base: 10, qty: 0, hours: 1},
		{name: "negative quantity", base: 10, qty: -2, hours: 1},
		{name: "negative hours", base: 10, qty: 1, hours: -0.5},
		{name: "nan hours", base: 10, qty: 1, hours: math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Price(tt.base, tt.qty, tt.hours, cfg)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !apperr.Is(err, apperr.KindValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestPricingConfig_Validate(t *testing.T) {
	if err := DefaultPricing().Validate(); err != nil {
		t.Fatalf("default pricing should be valid: %v", err)
	}
	if err := (PricingConfig{LaborRate: -1}).Validate(); err == nil {
		t.Fatal("expected negative labor rate to be rejected")
	}
	if err := (PricingConfig{TaxRate: math.NaN()}).Validate(); err == nil {
		t.Fatal("expected NaN tax rate to be rejected")
	}
}

func TestAssemble_Totals(t *testing.T) {
	items := []LineItem{
		{Description: "LED Downlight", Qty: 6, UnitMaterialCost: 30, EstimatedHours: 4.5, LaborCost: 382.5, LineTotal: 562.5},
		{Description: "GPO", Qty: 1, UnitMaterialCost: 15, EstimatedHours: 0.5, LaborCost: 42.5, LineTotal: 57.5},
	}

	q := Assemble(items, "Jane Smith", "Install 6 LED downlights and 2 GPOs", DefaultPricing())

	if q.Subtotal != 620 {
		t.Fatalf("expected subtotal 620, got %v", q.Subtotal)
	}
	if q.Tax != 62 {
		t.Fatalf("expected tax 62, got %v", q.Tax)
	}
	if q.GrandTotal != 682 {
		t.Fatalf("expected grand total 682, got %v", q.GrandTotal)
	}
	if q.CustomerName != "Jane Smith" {
		t.Fatalf("expected customer name to be kept, got %q", q.CustomerName)
	}
	if len(q.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(q.Items))
	}
}

func TestAssemble_TaxAndGrandTotalRoundIndependently(t *testing.T) {
	rates := []float64{0, 7.5, 10, 15}
	totals := []float64{0, 0.05, 10.05, 99.99, 133.335, 1234.565, 57.5}

	for _, rate := range rates {
		cfg := PricingConfig{LaborRate: 85, MaterialMarkup: 20, TaxRate: rate}
		for _, total := range totals {
			q := Assemble([]LineItem{{Description: "x", Qty: 1, LineTotal: total}}, "", "job", cfg)
			if q.Subtotal != Round2(total) {
				t.Fatalf("subtotal for %v: expected %v, got %v", total, Round2(total), q.Subtotal)
			}
			if want := Round2(q.Subtotal * rate / 100); q.Tax != want {
				t.Fatalf("tax for %v at %v%%: expected %v, got %v", q.Subtotal, rate, want, q.Tax)
			}
			if want := Round2(q.Subtotal + q.Tax); q.GrandTotal != want {
				t.Fatalf("grand total for %v: expected %v, got %v", q.Subtotal, want, q.GrandTotal)
			}
		}
	}
}

func TestAssemble_EmptyItems(t *testing.T) {
	q := Assemble(nil, "  ", "Nothing to do", DefaultPricing())

	if q.Subtotal != 0 || q.Tax != 0 || q.GrandTotal != 0 {
		t.Fatalf("expected zero totals, got %v/%v/%v", q.Subtotal, q.Tax, q.GrandTotal)
	}
	if q.Items == nil || len(q.Items) != 0 {
		t.Fatalf("expected an empty non-nil item list, got %#v", q.Items)
	}
	if q.CustomerName != DefaultCustomerName {
		t.Fatalf("expected blank customer to default, got %q", q.CustomerName)
	}
}

func TestAssemble_DoesNotAliasInput(t *testing.T) {
	items := []LineItem{{Description: "a", Qty: 1, LineTotal: 10}}
	q := Assemble(items, "c", "j", DefaultPricing())
	items[0].Description = "changed"

	if q.Items[0].Description != "a" {
		t.Fatalf("quote items must not alias the caller's slice")
	}
}

func TestSummarizeJob(t *testing.T) {
	short := "Replace the switchboard"
	if got := SummarizeJob(short); got != short {
		t.Fatalf("expected short description unchanged, got %q", got)
	}

	exact := strings.Repeat("a", 100)
	if got := SummarizeJob(exact); got != exact {
		t.Fatalf("expected 100 character description unchanged, got %d chars", len(got))
	}

	long := strings.Repeat("abcde", 30)
	got := SummarizeJob(long)
	if want := long[:100] + "..."; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	multibyte := strings.Repeat("é", 120)
	got = SummarizeJob(multibyte)
	if n := utf8.RuneCountInString(got); n != 103 {
		t.Fatalf("expected 103 characters, got %d", n)
	}
	if !utf8.ValidString(got) {
		t.Fatal("truncation must not split a character")
	}
}

func TestLineItem_Consistent(t *testing.T) {
	ok := LineItem{Qty: 6, UnitMaterialCost: 30, LaborCost: 382.5, LineTotal: 562.5}
	if !ok.Consistent() {
		t.Fatalf("expected %+v to be consistent", ok)
	}

	off := LineItem{Qty: 2, UnitMaterialCost: 10, LaborCost: 5, LineTotal: 30}
	if off.Consistent() {
		t.Fatalf("expected %+v to be inconsistent", off)
	}
}

func TestQuote_HasEstimates(t *testing.T) {
	q := Quote{Items: []LineItem{{IsEstimate: false}, {IsEstimate: true}}}
	if !q.HasEstimates() {
		t.Fatal("expected estimate to be detected")
	}
	if (Quote{Items: []LineItem{{}}}).HasEstimates() {
		t.Fatal("expected no estimates")
	}
}

func TestNormalizeCustomerName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Jane Smith", "Jane Smith"},
		{"  Jane   Smith ", "Jane Smith"},
		{"<b>Jane</b>", "Jane"},
		{"<img src=x>", DefaultCustomerName},
		{"", DefaultCustomerName},
	}
	for _, tt := range tests {
		if got := NormalizeCustomerName(tt.in); got != tt.want {
			t.Fatalf("NormalizeCustomerName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
