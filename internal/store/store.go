// Package store holds the immutable article corpus and its lookup indexes.
package store

import (
	"fmt"

	"github.com/lexhr/zakon/models"
)

// Store is the in-memory article corpus. The article set is immutable after
// construction; only RelevanceScore and UserFeedback are ever mutated, and
// only through ApplyFeedback.
type Store struct {
	articles   []*models.Article
	byID       map[string]*models.Article
	byCategory map[string][]*models.Article
	byGroup    map[string][]*models.Article
}

// New builds a Store from the loaded corpus, validating every article and the
// corpus-level invariants. Any structural problem fails the whole load.
func New(articles []*models.Article) (*Store, error) {
	s := &Store{
		articles:   make([]*models.Article, 0, len(articles)),
		byID:       make(map[string]*models.Article, len(articles)),
		byCategory: make(map[string][]*models.Article),
		byGroup:    make(map[string][]*models.Article),
	}

	variants := make(map[string]string) // (originalId, language) -> id
	for _, a := range articles {
		if err := a.Validate(); err != nil {
			return nil, err
		}
		if _, dup := s.byID[a.ID]; dup {
			return nil, &models.DataIntegrityError{
				ArticleID: a.ID,
				Detail:    "duplicate article id",
			}
		}
		if a.OriginalID != "" {
			key := a.OriginalID + "\x00" + a.Language
			if other, dup := variants[key]; dup {
				return nil, &models.DataIntegrityError{
					ArticleID: a.ID,
					Detail: fmt.Sprintf("duplicate language variant %q of %q (already held by %q)",
						a.Language, a.OriginalID, other),
				}
			}
			variants[key] = a.ID
		}

		a.RecomputeRelevance()
		s.articles = append(s.articles, a)
		s.byID[a.ID] = a
		s.byCategory[a.Category] = append(s.byCategory[a.Category], a)
		group := a.GroupKey()
		s.byGroup[group] = append(s.byGroup[group], a)
	}
	return s, nil
}

// Size returns the number of articles in the corpus.
func (s *Store) Size() int {
	return len(s.articles)
}

// All returns every article in corpus order. The slice must not be modified.
func (s *Store) All() []*models.Article {
	return s.articles
}

// Get looks up an article by id.
func (s *Store) Get(id string) (*models.Article, bool) {
	a, ok := s.byID[id]
	return a, ok
}

// ByCategory returns articles for a category in corpus order. Unknown
// categories yield an empty slice, never an error.
func (s *Store) ByCategory(category string) []*models.Article {
	return s.byCategory[category]
}

// Categories returns the distinct category keys present in the corpus.
func (s *Store) Categories() []string {
	cats := make([]string, 0, len(s.byCategory))
	for c := range s.byCategory {
		cats = append(cats, c)
	}
	return cats
}

// Siblings returns every language variant of the logical article identified
// by group (an OriginalID or a source article's own ID), the source included.
func (s *Store) Siblings(group string) []*models.Article {
	return s.byGroup[group]
}

// SiblingInLanguage returns the variant of the group in the given language.
func (s *Store) SiblingInLanguage(group, language string) (*models.Article, bool) {
	for _, a := range s.byGroup[group] {
		if a.Language == language {
			return a, true
		}
	}
	return nil, false
}

// SourceSibling returns the source-language variant of the group.
func (s *Store) SourceSibling(group string) (*models.Article, bool) {
	if a, ok := s.byID[group]; ok {
		return a, true
	}
	return s.SiblingInLanguage(group, models.LanguageCroatian)
}

// ApplyFeedback records one helpful / not-helpful vote against an article and
// recomputes its relevance score. Callers must invalidate any query cache
// before the next search.
func (s *Store) ApplyFeedback(id string, helpful bool) (*models.Article, error) {
	a, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("apply feedback %q: %w", id, models.ErrArticleNotFound)
	}
	if helpful {
		a.UserFeedback.Helpful++
	} else {
		a.UserFeedback.NotHelpful++
	}
	a.RecomputeRelevance()
	return a, nil
}
