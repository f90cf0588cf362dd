package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"tapquote_backend/internal/quotes/agent"
	"tapquote_backend/internal/quotes/domain"
	"tapquote_backend/internal/quotes/service"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1e3a5f")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

func newRootCmd(e *env) *cobra.Command {
	root := &cobra.Command{
		Use:   "quotectl",
		Short: "Draft priced electrical quotes from the terminal",
		Long: `quotectl runs the quote drafting pipeline locally.

Available subcommands:
  generate  - Draft a quote from a job description
  materials - List or search the materials catalog
  price     - Price a single line item`,
		SilenceUsage: true,
	}

	root.AddCommand(newGenerateCmd(e), newMaterialsCmd(e), newPriceCmd(e))
	return root
}

func newGenerateCmd(e *env) *cobra.Command {
	var (
		customer string
		pdfPath  string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "generate <job description>",
		Short: "Draft a quote from a job description",
		Example: `  quotectl generate "Install 6 LED downlights and 2 GPOs" --customer "Jane Smith"
  quotectl generate "New 20A circuit for the pool pump" --pdf quote.pdf`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := e.quotes.Generate(cmd.Context(), service.GenerateInput{
				JobDescription: strings.Join(args, " "),
				CustomerName:   customer,
			})
			if err != nil {
				if genErr, ok := agent.AsGenerationError(err); ok && genErr.RawResponse != "" {
					fmt.Fprintf(cmd.ErrOrStderr(), "raw model response:\n%s\n", genErr.RawResponse)
				}
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(q); err != nil {
					return err
				}
			} else {
				printQuote(out, q)
			}

			if pdfPath == "" {
				return nil
			}
			data, err := e.documents.RenderQuote(cmd.Context(), q)
			if err != nil {
				return fmt.Errorf("render PDF: %w", err)
			}
			if err := os.WriteFile(pdfPath, data, 0o644); err != nil {
				return fmt.Errorf("write PDF: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d bytes)\n", pdfPath, len(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&customer, "customer", "", "customer name printed on the quote")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "also render the quote to this PDF file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the quote as JSON")
	return cmd
}

func newMaterialsCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "materials",
		Short: "List or search the materials catalog",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every material",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSKU\tNAME\tCATEGORY\tBASE COST")
			for _, m := range e.catalog.GetAll() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", m.ID, m.SKU, m.Name, m.Category, money(m.BaseCost))
			}
			return w.Flush()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "search <query>",
		Short: "Rank materials by keyword relevance",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			if strings.TrimSpace(query) == "" {
				return fmt.Errorf("search query is required")
			}
			results := e.catalog.Search(query)
			if len(results) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render("no matching materials"))
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SCORE\tID\tSKU\tNAME\tBASE COST")
			for _, r := range results {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", r.RelevanceScore, r.ID, r.SKU, r.Name, money(r.BaseCost))
			}
			return w.Flush()
		},
	})

	return cmd
}

func newPriceCmd(e *env) *cobra.Command {
	var (
		baseCost float64
		quantity int
		hours    float64
	)

	cmd := &cobra.Command{
		Use:   "price",
		Short: "Price a single line item with the configured rates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := e.quotes.Price(baseCost, quantity, hours)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Unit cost (with markup)\t%s\n", money(b.UnitCostWithMarkup))
			fmt.Fprintf(w, "Material total\t%s\n", money(b.MaterialTotal))
			fmt.Fprintf(w, "Labor\t%s\n", money(b.LaborCost))
			fmt.Fprintf(w, "Line total\t%s\n", money(b.LineTotal))
			return w.Flush()
		},
	}

	cmd.Flags().Float64Var(&baseCost, "base", 0, "base material cost per unit")
	cmd.Flags().IntVar(&quantity, "qty", 1, "quantity")
	cmd.Flags().Float64Var(&hours, "hours", 0, "labor hours for the whole line")
	_ = cmd.MarkFlagRequired("base")
	return cmd
}

func printQuote(out io.Writer, q domain.Quote) {
	fmt.Fprintln(out, titleStyle.Render("Quote for "+q.CustomerName))
	fmt.Fprintln(out, mutedStyle.Render(q.JobSummary))
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "DESCRIPTION\tQTY\tUNIT\tHOURS\tLABOR\tTOTAL\t")
	for _, item := range q.Items {
		desc := item.Description
		if item.IsEstimate {
			desc += " *"
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\t\n",
			desc, item.Qty, money(item.UnitMaterialCost),
			strconv.FormatFloat(item.EstimatedHours, 'f', -1, 64),
			money(item.LaborCost), money(item.LineTotal))
	}
	fmt.Fprintln(w, "\t\t\t\t\t\t")
	fmt.Fprintf(w, "\t\t\t\tSubtotal\t%s\t\n", money(q.Subtotal))
	fmt.Fprintf(w, "\t\t\t\tTax\t%s\t\n", money(q.Tax))
	fmt.Fprintf(w, "\t\t\t\tTOTAL\t%s\t\n", money(q.GrandTotal))
	_ = w.Flush()

	if q.HasEstimates() {
		fmt.Fprintln(out)
		fmt.Fprintln(out, mutedStyle.Render("* estimate, no exact catalog match"))
	}
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
