package store

import (
	"errors"
	"testing"

	"github.com/lexhr/zakon/models"
)

func testCorpus() []*models.Article {
	return []*models.Article{
		{ID: "art1", Title: "Radno vrijeme", Content: "Puno radno vrijeme radnika.", Category: "working_hours", Language: "hr"},
		{ID: "art1-en", Title: "Working Hours", Content: "Full-time working hours.", Category: "working_hours", Language: "en", OriginalID: "art1"},
		{ID: "art1-es", Title: "Horario de trabajo", Content: "Horario de trabajo a tiempo completo.", Category: "working_hours", Language: "es", OriginalID: "art1"},
		{ID: "art2", Title: "Godišnji odmor", Content: "Radnik ima pravo na godišnji odmor.", Category: "leave", Language: "hr"},
	}
}

func TestNew_Invariants(t *testing.T) {
	tests := []struct {
		name     string
		articles []*models.Article
		wantErr  bool
	}{
		{"valid corpus", testCorpus(), false},
		{
			"duplicate id",
			[]*models.Article{
				{ID: "a", Title: "t", Content: "c"},
				{ID: "a", Title: "t2", Content: "c2"},
			},
			true,
		},
		{
			"duplicate language variant",
			[]*models.Article{
				{ID: "a", Title: "t", Content: "c", Language: "hr"},
				{ID: "b", Title: "t", Content: "c", Language: "en", OriginalID: "a"},
				{ID: "c", Title: "t", Content: "c", Language: "en", OriginalID: "a"},
			},
			true,
		},
		{
			"malformed article",
			[]*models.Article{{ID: "a", Title: "", Content: "c"}},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.articles)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var die *models.DataIntegrityError
				if !errors.As(err, &die) {
					t.Errorf("expected DataIntegrityError, got %T", err)
				}
			}
		})
	}
}

func TestStore_Lookups(t *testing.T) {
	s, err := New(testCorpus())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if s.Size() != 4 {
		t.Errorf("Size() = %d, want 4", s.Size())
	}
	if _, ok := s.Get("art1"); !ok {
		t.Error("expected art1 to be found")
	}
	if _, ok := s.Get("missing"); ok {
		t.Error("expected missing id to not be found")
	}
	if got := len(s.ByCategory("working_hours")); got != 3 {
		t.Errorf("ByCategory(working_hours) = %d articles, want 3", got)
	}
	if got := s.ByCategory("no_such_category"); len(got) != 0 {
		t.Errorf("unknown category returned %d articles, want 0", len(got))
	}

	siblings := s.Siblings("art1")
	if len(siblings) != 3 {
		t.Fatalf("Siblings(art1) = %d, want 3", len(siblings))
	}
	src, ok := s.SourceSibling("art1")
	if !ok || src.ID != "art1" {
		t.Errorf("SourceSibling(art1) = %v, want art1", src)
	}
	es, ok := s.SiblingInLanguage("art1", "es")
	if !ok || es.ID != "art1-es" {
		t.Errorf("SiblingInLanguage(art1, es) = %v, want art1-es", es)
	}
	if _, ok := s.SiblingInLanguage("art2", "en"); ok {
		t.Error("art2 has no english sibling")
	}
}

func TestStore_ApplyFeedback(t *testing.T) {
	s, err := New(testCorpus())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	a, err := s.ApplyFeedback("art1", true)
	if err != nil {
		t.Fatalf("ApplyFeedback() error = %v", err)
	}
	if a.UserFeedback.Helpful != 1 {
		t.Errorf("Helpful = %d, want 1", a.UserFeedback.Helpful)
	}
	if a.RelevanceScore != 2.0 {
		t.Errorf("RelevanceScore = %v, want 2.0 after one helpful vote", a.RelevanceScore)
	}

	if _, err := s.ApplyFeedback("art1", false); err != nil {
		t.Fatalf("ApplyFeedback() error = %v", err)
	}
	if a.RelevanceScore != 1.0 {
		t.Errorf("RelevanceScore = %v, want 1.0 after split votes", a.RelevanceScore)
	}

	_, err = s.ApplyFeedback("missing", true)
	if !errors.Is(err, models.ErrArticleNotFound) {
		t.Errorf("expected ErrArticleNotFound, got %v", err)
	}
}
