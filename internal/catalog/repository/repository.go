// Package repository holds the static materials catalog.
package repository

import (
	"fmt"
	"strings"
)

// StaticRepository serves a fixed list of materials loaded once at startup.
type StaticRepository struct {
	materials []Material
	byID      map[string]int
}

// New validates materials and builds a repository over a private copy of them.
func New(materials []Material) (*StaticRepository, error) {
	repo := &StaticRepository{
		materials: make([]Material, 0, len(materials)),
		byID:      make(map[string]int, len(materials)),
	}

	for i, m := range materials {
		m.ID = strings.TrimSpace(m.ID)
		if m.ID == "" {
			return nil, fmt.Errorf("material %d: id is required", i)
		}
		if _, dup := repo.byID[m.ID]; dup {
			return nil, fmt.Errorf("material %s: duplicate id", m.ID)
		}
		if strings.TrimSpace(m.Name) == "" {
			return nil, fmt.Errorf("material %s: name is required", m.ID)
		}
		if m.BaseCost <= 0 {
			return nil, fmt.Errorf("material %s: base_cost must be positive, got %v", m.ID, m.BaseCost)
		}

		keywords := make([]string, 0, len(m.Keywords))
		for _, kw := range m.Keywords {
			if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
				keywords = append(keywords, kw)
			}
		}
		m.Keywords = keywords

		repo.byID[m.ID] = len(repo.materials)
		repo.materials = append(repo.materials, m)
	}

	return repo, nil
}

// NewSeed returns the repository over the built-in catalog.
func NewSeed() *StaticRepository {
	repo, err := New(SeedMaterials())
	if err != nil {
		panic("invalid seed catalog: " + err.Error())
	}
	return repo
}

// List returns a copy of every material in insertion order.
func (r *StaticRepository) List() []Material {
	out := make([]Material, len(r.materials))
	for i, m := range r.materials {
		out[i] = clone(m)
	}
	return out
}

// GetByID returns the material with id, or false when absent.
func (r *StaticRepository) GetByID(id string) (Material, bool) {
	idx, ok := r.byID[id]
	if !ok {
		return Material{}, false
	}
	return clone(r.materials[idx]), true
}

func clone(m Material) Material {
	m.Keywords = append([]string(nil), m.Keywords...)
	return m
}

var _ Repository = (*StaticRepository)(nil)
