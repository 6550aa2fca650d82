package index

import (
	"reflect"
	"testing"

	"github.com/lexhr/zakon/models"
)

func testArticles() []*models.Article {
	return []*models.Article{
		{ID: "a1", Title: "Radno vrijeme", Content: "c", Keywords: []string{"radno vrijeme", "prekovremeni rad"}},
		{ID: "a2", Title: "Godišnji odmor", Content: "c", Keywords: []string{"godišnji odmor", "radno vrijeme"}},
		{ID: "a3", Title: "Otkaz ugovora", Content: "c", Keywords: []string{"otkaz", "Otpremnina"}},
	}
}

func TestBuild_Candidates(t *testing.T) {
	ix := Build(testArticles())

	got := ix.Candidates("radno vrijeme")
	if len(got) != 2 {
		t.Fatalf("Candidates(radno vrijeme) = %d ids, want 2", len(got))
	}
	for _, id := range []string{"a1", "a2"} {
		if _, ok := got[id]; !ok {
			t.Errorf("expected %s in candidates", id)
		}
	}

	// Keyword tokens are normalized to lowercase at build time.
	if got := ix.Candidates("otpremnina"); len(got) != 1 {
		t.Errorf("Candidates(otpremnina) = %d ids, want 1", len(got))
	}

	if got := ix.Candidates("nepoznato"); got == nil || len(got) != 0 {
		t.Errorf("unknown term must yield an empty set, got %v", got)
	}
}

func TestKeywordIndex_Suggest(t *testing.T) {
	ix := Build(testArticles())

	tests := []struct {
		name    string
		partial string
		limit   int
		want    []string
	}{
		{
			name:    "prefix match deduplicated against title",
			partial: "radno",
			limit:   10,
			want:    []string{"radno vrijeme"},
		},
		{
			name:    "limit caps results",
			partial: "od",
			limit:   1,
			want:    []string{"godišnji odmor"},
		},
		{
			name:    "title fallback",
			partial: "ugovora",
			limit:   5,
			want:    []string{"Otkaz ugovora"},
		},
		{
			name:    "fuzzy fallback for near miss",
			partial: "otkas",
			limit:   5,
			want:    []string{"otkaz"},
		},
		{
			name:    "empty input",
			partial: "  ",
			limit:   5,
			want:    nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ix.Suggest(tt.partial, tt.limit)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Suggest(%q, %d) = %v, want %v", tt.partial, tt.limit, got, tt.want)
			}
		})
	}
}

func TestKeywordIndex_SuggestDeduplicates(t *testing.T) {
	ix := Build([]*models.Article{
		{ID: "a1", Title: "Otkaz", Content: "c", Keywords: []string{"otkaz"}},
	})
	got := ix.Suggest("otkaz", 10)
	if len(got) != 1 {
		t.Errorf("Suggest() = %v, want single deduplicated entry", got)
	}
}
