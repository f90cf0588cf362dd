// Package service implements keyword search over the materials catalog.
package service

import (
	"sort"
	"strings"

	"tapquote_backend/internal/catalog/repository"
)

const (
	keywordPoints = 2
	namePoints    = 1
)

// SearchResult is a material with its relevance to one query.
type SearchResult struct {
	repository.Material
	RelevanceScore int `json:"relevance_score"`
}

// Service answers catalog queries. It holds no mutable state.
type Service struct {
	repo repository.Repository
}

// New creates a catalog service over repo.
func New(repo repository.Repository) *Service {
	return &Service{repo: repo}
}

// GetAll returns the full catalog in insertion order.
func (s *Service) GetAll() []repository.Material {
	return s.repo.List()
}

// GetByID returns the material, or false when absent.
func (s *Service) GetByID(id string) (repository.Material, bool) {
	return s.repo.GetByID(strings.TrimSpace(id))
}

// Search ranks catalog entries against query, highest score first with ties
// kept in catalog order. Entries scoring zero are omitted.
func (s *Service) Search(query string) []SearchResult {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return []SearchResult{}
	}

	results := make([]SearchResult, 0)
	for _, m := range s.repo.List() {
		if score := Score(m, terms); score > 0 {
			results = append(results, SearchResult{Material: m, RelevanceScore: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RelevanceScore > results[j].RelevanceScore
	})
	return results
}

// Score sums, per lowercase term, 2 points for every keyword that contains
// the term or is contained by it, plus 1 point when the term occurs in the
// lowercased name.
func Score(m repository.Material, terms []string) int {
	name := strings.ToLower(m.Name)
	score := 0
	for _, term := range terms {
		for _, kw := range m.Keywords {
			if strings.Contains(kw, term) || strings.Contains(term, kw) {
				score += keywordPoints
			}
		}
		if strings.Contains(name, term) {
			score += namePoints
		}
	}
	return score
}
