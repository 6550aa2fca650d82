package models

import (
	"errors"
	"fmt"
)

// ErrArticleNotFound is returned for lookups of unknown article ids.
var ErrArticleNotFound = errors.New("article not found")

// DataIntegrityError reports a structurally invalid article in the corpus.
// It is fatal at load time; the engine never silently drops malformed articles.
type DataIntegrityError struct {
	ArticleID string
	Field     string
	Detail    string
}

func (e *DataIntegrityError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("corpus integrity: article %q: %s", e.ArticleID, e.Detail)
	}
	return fmt.Sprintf("corpus integrity: article %q: missing %s", e.ArticleID, e.Field)
}

// InvalidInputError reports a search input rejected before any scoring work.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}

// IsInvalidInput reports whether err is an InvalidInputError.
func IsInvalidInput(err error) bool {
	var ie *InvalidInputError
	return errors.As(err, &ie)
}
