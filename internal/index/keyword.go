// Package index provides the keyword/autocomplete index and the query cache.
package index

import (
	"strings"

	"github.com/lexhr/zakon/models"
)

// KeywordIndex maps normalized keyword tokens to the set of article ids
// carrying them. It is built once per corpus load and is read-only at query
// time; suggestion order follows first-seen order during the build pass.
type KeywordIndex struct {
	terms  map[string]map[string]struct{}
	order  []string // tokens in first-seen order, for deterministic suggestions
	titles []string // article titles in corpus order
}

// Build constructs the index with one pass over the corpus, extracting
// lowercase keyword tokens and titles.
func Build(articles []*models.Article) *KeywordIndex {
	ix := &KeywordIndex{
		terms:  make(map[string]map[string]struct{}),
		titles: make([]string, 0, len(articles)),
	}
	for _, a := range articles {
		ix.titles = append(ix.titles, a.Title)
		for _, kw := range a.Keywords {
			token := strings.ToLower(strings.TrimSpace(kw))
			if token == "" {
				continue
			}
			set, ok := ix.terms[token]
			if !ok {
				set = make(map[string]struct{})
				ix.terms[token] = set
				ix.order = append(ix.order, token)
			}
			set[a.ID] = struct{}{}
		}
	}
	return ix
}

// Candidates returns the ids of articles indexed under the term. Unknown
// terms yield an empty set, never an error.
func (ix *KeywordIndex) Candidates(term string) map[string]struct{} {
	set, ok := ix.terms[strings.ToLower(term)]
	if !ok {
		return map[string]struct{}{}
	}
	return set
}

// TermCount returns the number of distinct indexed tokens.
func (ix *KeywordIndex) TermCount() int {
	return len(ix.terms)
}

// Suggest returns autocomplete suggestions for a partial query: keyword
// tokens matching by prefix or substring first, then article titles, in
// first-match insertion order, deduplicated and capped at limit. No relevance
// scoring is applied. When nothing matches directly, near-miss keyword tokens
// within a small edit distance are offered instead.
func (ix *KeywordIndex) Suggest(partial string, limit int) []string {
	partial = strings.ToLower(strings.TrimSpace(partial))
	if partial == "" || limit <= 0 {
		return nil
	}

	seen := make(map[string]struct{})
	suggestions := make([]string, 0, limit)

	add := func(s string) bool {
		key := strings.ToLower(s)
		if _, dup := seen[key]; dup {
			return len(suggestions) < limit
		}
		seen[key] = struct{}{}
		suggestions = append(suggestions, s)
		return len(suggestions) < limit
	}

	for _, token := range ix.order {
		if strings.HasPrefix(token, partial) || strings.Contains(token, partial) {
			if !add(token) {
				return suggestions
			}
		}
	}
	for _, title := range ix.titles {
		if strings.Contains(strings.ToLower(title), partial) {
			if !add(title) {
				return suggestions
			}
		}
	}

	if len(suggestions) == 0 {
		return ix.fuzzySuggest(partial, limit)
	}
	return suggestions
}

// fuzzySuggest offers keyword tokens within maxEditDistance of the input,
// nearest first; ties keep first-seen order.
func (ix *KeywordIndex) fuzzySuggest(partial string, limit int) []string {
	const maxEditDistance = 2

	type candidate struct {
		token    string
		distance int
	}
	var candidates []candidate
	for _, token := range ix.order {
		d := LevenshteinDistance(partial, token)
		if d <= maxEditDistance {
			candidates = append(candidates, candidate{token: token, distance: d})
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	// Insertion sort by distance keeps insertion order within equal distances.
	for i := 1; i < len(candidates); i++ {
		for j := i; j > 0 && candidates[j].distance < candidates[j-1].distance; j-- {
			candidates[j], candidates[j-1] = candidates[j-1], candidates[j]
		}
	}

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.token
	}
	return out
}
