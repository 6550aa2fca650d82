// Package ranking turns a query and an article into a relevance score.
package ranking

import "strings"

// Tokenize normalizes a query into lowercase terms split on whitespace.
// Empty tokens are dropped; an empty or whitespace-only query yields nil.
func Tokenize(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// Phrase joins the normalized terms back into the exact phrase used for
// phrase-bonus matching.
func Phrase(terms []string) string {
	return strings.Join(terms, " ")
}

// CountOccurrences counts case-insensitive occurrences of term in text.
func CountOccurrences(term, text string) int {
	if term == "" {
		return 0
	}
	return strings.Count(strings.ToLower(text), term)
}
