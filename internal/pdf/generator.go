package pdf

import (
	"context"
	"fmt"
	"strconv"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// ── Colour palette ──────────────────────────────────────────────────────

var (
	colorPrimary   = &props.Color{Red: 30, Green: 58, Blue: 95}    // navy #1e3a5f
	colorText      = &props.Color{Red: 51, Green: 51, Blue: 51}    // #333333
	colorSecondary = &props.Color{Red: 102, Green: 102, Blue: 102} // #666666
	colorWhite     = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorTableAlt  = &props.Color{Red: 245, Green: 245, Blue: 245} // #f5f5f5
	colorBorder    = &props.Color{Red: 204, Green: 204, Blue: 204} // #cccccc
)

// MarotoRenderer draws quotes in-process with maroto/v2.
type MarotoRenderer struct{}

var _ Renderer = MarotoRenderer{}

// Render builds the PDF. The context is only checked before drawing.
func (MarotoRenderer) Render(ctx context.Context, doc Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return GenerateQuotePDF(doc)
}

// GenerateQuotePDF creates the quote document for doc.
func GenerateQuotePDF(doc Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithLeftMargin(20).
		WithTopMargin(20).
		WithRightMargin(20).
		Build()

	m := maroto.New(cfg)

	if err := m.RegisterFooter(buildFooter(doc)); err != nil {
		return nil, fmt.Errorf("register footer: %w", err)
	}

	// 1. Business header
	m.AddRows(buildHeader(doc)...)
	m.AddRows(row.New(12)) // spacer

	// 2. QUOTE title + number / date / customer
	m.AddRows(buildQuoteInfo(doc)...)
	m.AddRows(row.New(8))

	// 3. Job summary
	m.AddRows(buildJobSummary(doc)...)
	m.AddRows(row.New(8))

	// 4. Line items
	m.AddRows(buildItemsTable(doc)...)
	m.AddRows(row.New(4))

	// 5. Totals
	m.AddRows(buildTotalsBlock(doc)...)
	m.AddRows(row.New(12))

	// 6. Estimate note + terms
	if doc.Quote.HasEstimates() {
		m.AddRows(row.New(5).Add(
			col.New(12).Add(text.New(estimateFootnote, props.Text{Size: 8, Color: colorSecondary})),
		))
		m.AddRows(row.New(3))
	}
	m.AddRows(buildTerms()...)

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate PDF: %w", err)
	}

	return out.GetBytes(), nil
}

// ── Header ──────────────────────────────────────────────────────────────

func buildHeader(doc Document) []core.Row {
	b := doc.Business
	centered := props.Text{Size: 10, Color: colorSecondary, Align: align.Center}

	contact := joinParts([]string{b.DisplayPhone(), b.Email}, " | ")

	return []core.Row{
		row.New(12).Add(
			col.New(12).Add(text.New(b.Name, props.Text{
				Size:  24,
				Style: fontstyle.Bold,
				Color: colorPrimary,
				Align: align.Center,
			})),
		),
		row.New(5).Add(col.New(12).Add(text.New(b.Address, centered))),
		row.New(5).Add(col.New(12).Add(text.New(contact, centered))),
	}
}

// ── Quote info ──────────────────────────────────────────────────────────

func buildQuoteInfo(doc Document) []core.Row {
	label := props.Text{Size: 10, Style: fontstyle.Bold, Color: colorText}
	value := props.Text{Size: 10, Color: colorText}

	rows := []core.Row{
		row.New(12).Add(
			col.New(12).Add(text.New("QUOTE", props.Text{
				Size:  20,
				Style: fontstyle.Bold,
				Color: colorPrimary,
			})),
		),
	}

	info := [][2]string{
		{"Quote Number:", doc.QuoteNumber},
		{"Date:", doc.IssuedOn()},
		{"Customer:", doc.Quote.CustomerName},
	}
	for _, pair := range info {
		rows = append(rows, row.New(6).Add(
			col.New(3).Add(text.New(pair[0], label)),
			col.New(9).Add(text.New(pair[1], value)),
		))
	}

	return rows
}

// ── Job summary ─────────────────────────────────────────────────────────

func buildJobSummary(doc Document) []core.Row {
	summary := doc.Quote.JobSummary
	if summary == "" {
		summary = "N/A"
	}
	return []core.Row{
		sectionTitle("Job Summary"),
		row.New(10).Add(
			col.New(12).Add(text.New(summary, props.Text{Size: 10, Color: colorText})),
		),
	}
}

// ── Line items table ────────────────────────────────────────────────────

func buildItemsTable(doc Document) []core.Row {
	rows := []core.Row{sectionTitle("Quote Details")}

	head := props.Text{Size: 10, Style: fontstyle.Bold, Color: colorWhite, Align: align.Center, Top: 2.5}

	rows = append(rows, row.New(9).Add(
		col.New(6).Add(text.New("Description", head)),
		col.New(1).Add(text.New("Qty", head)),
		col.New(2).Add(text.New("Unit Cost", head)),
		col.New(1).Add(text.New("Labor", head)),
		col.New(2).Add(text.New("Total", head)),
	).WithStyle(&props.Cell{
		BackgroundColor: colorPrimary,
		BorderType:      border.Top | border.Bottom,
		BorderColor:     colorPrimary,
	}))

	for i, item := range doc.Quote.Items {
		normal := props.Text{Size: 9, Color: colorText, Top: 2}
		right := props.Text{Size: 9, Color: colorText, Align: align.Right, Top: 2}

		r := row.New(9).Add(
			col.New(6).Add(text.New(ItemDescription(item), normal)),
			col.New(1).Add(text.New(strconv.Itoa(item.Qty), right)),
			col.New(2).Add(text.New(formatCurrency(item.UnitMaterialCost), right)),
			col.New(1).Add(text.New(formatCurrency(item.LaborCost), right)),
			col.New(2).Add(text.New(formatCurrency(item.LineTotal), right)),
		)

		style := &props.Cell{BorderType: border.Bottom, BorderColor: colorBorder}
		if i%2 == 1 {
			style.BackgroundColor = colorTableAlt
		}
		rows = append(rows, r.WithStyle(style))
	}

	return rows
}

// ── Totals block ────────────────────────────────────────────────────────

func buildTotalsBlock(doc Document) []core.Row {
	label := props.Text{Size: 10, Color: colorText, Align: align.Right}
	value := props.Text{Size: 10, Color: colorText, Align: align.Right}
	q := doc.Quote

	return []core.Row{
		row.New(6).Add(
			col.New(8),
			col.New(2).Add(text.New("Subtotal:", label)),
			col.New(2).Add(text.New(formatCurrency(q.Subtotal), value)),
		),
		row.New(6).Add(
			col.New(8),
			col.New(2).Add(text.New(doc.TaxLabel()+":", label)),
			col.New(2).Add(text.New(formatCurrency(q.Tax), value)),
		),
		row.New(2),
		row.New(9).Add(
			col.New(8),
			col.New(2).Add(text.New("TOTAL:", props.Text{
				Size:  12,
				Style: fontstyle.Bold,
				Color: colorPrimary,
				Align: align.Right,
				Top:   2,
			})),
			col.New(2).Add(text.New(formatCurrency(q.GrandTotal), props.Text{
				Size:  12,
				Style: fontstyle.Bold,
				Color: colorPrimary,
				Align: align.Right,
				Top:   2,
			})),
		).WithStyle(&props.Cell{
			BorderType:  border.Top,
			BorderColor: colorPrimary,
		}),
	}
}

// ── Terms ───────────────────────────────────────────────────────────────

func buildTerms() []core.Row {
	rows := []core.Row{
		row.New(5).Add(
			col.New(12).Add(text.New("Terms & Conditions:", props.Text{
				Size:  9,
				Style: fontstyle.Bold,
				Color: colorText,
			})),
		),
	}
	for _, term := range terms {
		rows = append(rows, row.New(4).Add(
			col.New(12).Add(text.New("-  "+term, props.Text{Size: 8, Color: colorSecondary})),
		))
	}
	return rows
}

// ── Footer (registered, repeats on every page) ──────────────────────────

func buildFooter(doc Document) core.Row {
	b := doc.Business
	footer := joinParts([]string{b.Name, doc.QuoteNumber, b.DisplayPhone(), b.Email}, "  ·  ")

	return row.New(10).Add(
		col.New(12).Add(
			text.New(footer, props.Text{
				Size:  6.5,
				Color: colorSecondary,
				Align: align.Center,
				Top:   4,
			}),
		),
	).WithStyle(&props.Cell{
		BorderType:  border.Top,
		BorderColor: colorBorder,
	})
}

// ── Helpers ─────────────────────────────────────────────────────────────

func sectionTitle(title string) core.Row {
	return row.New(9).Add(
		col.New(12).Add(text.New(title, props.Text{
			Size:  14,
			Style: fontstyle.Bold,
			Color: colorPrimary,
		})),
	)
}

func joinParts(parts []string, sep string) string {
	result := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if result != "" {
			result += sep
		}
		result += p
	}
	return result
}
