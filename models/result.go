package models

// SearchResult represents a single search hit with its scores and
// cross-language pairing.
type SearchResult struct {
	Article *Article `json:"article"`

	// Score is the final ranking score; TextScore is the raw lexical
	// component before blending with relevance.
	Score     float64 `json:"score"`
	TextScore float64 `json:"textScore"`
	Rank      int     `json:"rank"`

	// CrossLanguageMatch is true when sibling articles with the same
	// OriginalID matched in more than one language during the same query.
	CrossLanguageMatch bool `json:"crossLanguageMatch"`

	// Original* carry the source-language content for translated results.
	OriginalLanguage string `json:"originalLanguage,omitempty"`
	OriginalContent  string `json:"originalContent,omitempty"`

	// Translated* carry the display-language sibling content when it differs
	// from the result's own language. Empty when no such sibling exists.
	TranslatedLanguage string `json:"translatedLanguage,omitempty"`
	TranslatedContent  string `json:"translatedContent,omitempty"`
}

// SearchResponse is the envelope returned for a search request.
type SearchResponse struct {
	Results  []*SearchResult `json:"results"`
	Total    int             `json:"total"`
	HasMore  bool            `json:"hasMore"`
	Query    string          `json:"query"`
	Language string          `json:"language"`
	// SearchTime is the query evaluation time in milliseconds.
	SearchTime int64 `json:"searchTimeMs"`
}
