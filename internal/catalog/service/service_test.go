package service

import (
	"testing"

	"tapquote_backend/internal/catalog/repository"

	"github.com/google/go-cmp/cmp"
)

type idScore struct {
	ID    string
	Score int
}

func ranked(results []SearchResult) []idScore {
	out := make([]idScore, len(results))
	for i, r := range results {
		out[i] = idScore{ID: r.ID, Score: r.RelevanceScore}
	}
	return out
}

func TestSearchRanking(t *testing.T) {
	svc := New(repository.NewSeed())

	cases := []struct {
		query string
		want  []idScore
	}{
		{"pool pump", []idScore{{"MAT015", 6}}},
		{"gpo", []idScore{{"MAT001", 3}, {"MAT006", 3}, {"MAT012", 3}}},
		{"switch", []idScore{{"MAT007", 3}, {"MAT008", 3}, {"MAT011", 3}, {"MAT015", 3}, {"MAT004", 2}}},
		{"Install 6 LED downlights and 2 GPOs", []idScore{
			{"MAT002", 7},
			{"MAT003", 3}, {"MAT004", 3}, {"MAT009", 3}, {"MAT014", 3},
			{"MAT001", 2}, {"MAT006", 2}, {"MAT007", 2}, {"MAT008", 2}, {"MAT010", 2}, {"MAT012", 2},
		}},
		{"xyz", []idScore{}},
		{"   ", []idScore{}},
	}

	for _, tc := range cases {
		got := ranked(svc.Search(tc.query))
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("Search(%q) mismatch (-want +got):\n%s", tc.query, diff)
		}
	}
}

func TestSearchIsOrderIndependent(t *testing.T) {
	svc := New(repository.NewSeed())

	a := ranked(svc.Search("ceiling fan light"))
	b := ranked(svc.Search("light FAN   ceiling"))
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("term order changed results (-a +b):\n%s", diff)
	}
	for i := 1; i < len(a); i++ {
		if a[i].Score > a[i-1].Score {
			t.Fatalf("results not sorted by score: %v", a)
		}
	}
}

func TestGetAllAndGetByID(t *testing.T) {
	svc := New(repository.NewSeed())
	if len(svc.GetAll()) != 15 {
		t.Fatalf("expected full catalog")
	}
	if m, ok := svc.GetByID(" MAT002 "); !ok || m.Name != "LED Downlight 10W Warm White" {
		t.Fatalf("unexpected lookup result %+v %v", m, ok)
	}
	if _, ok := svc.GetByID("nope"); ok {
		t.Fatalf("expected absent material")
	}
}
