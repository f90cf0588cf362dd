// Package adapters contains the anti-corruption adapters the composition
// root uses to connect bounded contexts without direct imports between them.
package adapters

import (
	"context"

	catsvc "tapquote_backend/internal/catalog/service"
	"tapquote_backend/internal/quotes/ports"
)

// CatalogMaterialSearcher adapts the catalog search service for the quotes
// domain, satisfying ports.MaterialSearcher.
type CatalogMaterialSearcher struct {
	svc *catsvc.Service
}

var _ ports.MaterialSearcher = (*CatalogMaterialSearcher)(nil)

// NewCatalogMaterialSearcher creates a new catalog searcher adapter.
func NewCatalogMaterialSearcher(svc *catsvc.Service) *CatalogMaterialSearcher {
	return &CatalogMaterialSearcher{svc: svc}
}

// SearchMaterials runs a catalog search and keeps the first limit results.
// A non-positive limit returns every match.
func (a *CatalogMaterialSearcher) SearchMaterials(ctx context.Context, query string, limit int) ([]ports.MaterialMatch, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := a.svc.Search(query)
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	matches := make([]ports.MaterialMatch, 0, len(results))
	for _, r := range results {
		matches = append(matches, ports.MaterialMatch{
			Name:     r.Name,
			SKU:      r.SKU,
			BaseCost: r.BaseCost,
		})
	}
	return matches, nil
}
