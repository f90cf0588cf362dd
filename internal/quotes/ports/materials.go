// Package ports defines the interfaces that the quotes domain requires from
// other bounded contexts. The composition root supplies the implementations,
// so quotes never imports the catalog module directly.
package ports

import "context"

// MaterialMatch is the slice of a catalog record the quote prompt needs.
type MaterialMatch struct {
	Name     string
	SKU      string
	BaseCost float64
}

// MaterialSearcher ranks catalog materials against a job description.
type MaterialSearcher interface {
	// SearchMaterials returns at most limit matches, best first.
	// An empty result is not an error.
	SearchMaterials(ctx context.Context, query string, limit int) ([]MaterialMatch, error)
}
