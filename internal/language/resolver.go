package language

import (
	"github.com/lexhr/zakon/internal/store"
	"github.com/lexhr/zakon/models"
)

// Resolver pairs search results with their translated siblings so every hit
// can show original-language content next to the display language.
type Resolver struct {
	store *store.Store
}

// NewResolver creates a Resolver over the corpus store.
func NewResolver(s *store.Store) *Resolver {
	return &Resolver{store: s}
}

// Resolve annotates each result with its source-language content and, when a
// sibling exists in the display language, the translated content.
// matchedLanguages maps a sibling group key to the set of languages that
// matched during this query evaluation; a group that matched in more than one
// language is flagged as a cross-language match. A missing sibling is never
// an error: the result simply falls back to its native language.
func (r *Resolver) Resolve(results []*models.SearchResult, displayLanguage string, matchedLanguages map[string]map[string]bool) {
	for _, res := range results {
		a := res.Article
		group := a.GroupKey()

		res.CrossLanguageMatch = len(matchedLanguages[group]) > 1

		if src, ok := r.store.SourceSibling(group); ok {
			res.OriginalLanguage = src.Language
			res.OriginalContent = src.Content
		} else {
			// No source sibling in the corpus; the article stands in for itself.
			res.OriginalLanguage = a.Language
			res.OriginalContent = a.Content
		}

		if displayLanguage != "" && displayLanguage != a.Language {
			if sib, ok := r.store.SiblingInLanguage(group, displayLanguage); ok {
				res.TranslatedLanguage = sib.Language
				res.TranslatedContent = sib.Content
			}
		}
	}
}
