package transport

import (
	"tapquote_backend/internal/catalog/repository"
	"tapquote_backend/internal/catalog/service"
)

// SearchMaterialsRequest is the query for GET /materials/search.
type SearchMaterialsRequest struct {
	Query string `form:"q" json:"q" validate:"required,notblank,max=500"`
}

// ListMaterialsResponse is the body of GET /materials.
type ListMaterialsResponse struct {
	Materials []repository.Material `json:"materials"`
	Count     int                   `json:"count"`
}

// SearchMaterialsResponse is the body of GET /materials/search.
type SearchMaterialsResponse struct {
	Query   string                 `json:"query"`
	Results []service.SearchResult `json:"results"`
	Count   int                    `json:"count"`
}
