package domain

// Assemble totals items into a Quote. Line totals are trusted as given.
// The subtotal is rounded to cents first; tax and grand total are then each
// rounded independently from that subtotal. An empty item list is valid and
// yields zero totals.
func Assemble(items []LineItem, customerName, jobDescription string, cfg PricingConfig) Quote {
	var sum float64
	for _, item := range items {
		sum += item.LineTotal
	}

	subtotal := Round2(sum)
	tax := Round2(subtotal * cfg.TaxRate / 100)
	grand := Round2(subtotal + tax)

	lines := make([]LineItem, len(items))
	copy(lines, items)

	return Quote{
		CustomerName: NormalizeCustomerName(customerName),
		JobSummary:   SummarizeJob(jobDescription),
		Items:        lines,
		Subtotal:     subtotal,
		Tax:          tax,
		GrandTotal:   grand,
	}
}
