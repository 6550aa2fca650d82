package models

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultLimit is the page size used when a query does not specify one.
	DefaultLimit = 10
	// MaxLimit caps the page size of a single search request.
	MaxLimit = 100
	// MaxQueryLength is the maximum accepted query length in runes.
	MaxQueryLength = 500
)

// SearchQuery represents a search request with optional filters.
// An empty Query returns the full (optionally category-filtered) corpus
// ordered by relevance score.
type SearchQuery struct {
	Query    string `json:"query"`
	Category string `json:"category,omitempty"`
	Language string `json:"language,omitempty"`
	Limit    int    `json:"limit,omitempty"`
	Offset   int    `json:"offset,omitempty"`
}

// Validate normalizes the query in place and rejects invalid input.
// The query text is trimmed; limit and offset are clamped to sane defaults;
// the display language falls back to the source language when unset.
func (q *SearchQuery) Validate() error {
	q.Query = strings.TrimSpace(q.Query)
	if n := utf8.RuneCountInString(q.Query); n > MaxQueryLength {
		return &InvalidInputError{Reason: fmt.Sprintf("query length %d exceeds maximum %d", n, MaxQueryLength)}
	}
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	if q.Language == "" {
		q.Language = LanguageCroatian
	}
	return nil
}
