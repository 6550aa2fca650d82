// Package loader reads the article corpus from disk and watches it for changes.
package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lexhr/zakon/models"
)

// corpusFile matches the JSON layout produced by the extraction pipeline:
// either a bare article array or an object with an "articles" field.
type corpusFile struct {
	Articles []*models.Article `json:"articles"`
}

// Load reads and validates a corpus JSON file. Every article must pass
// structural validation; malformed records fail the load instead of being
// silently dropped.
func Load(path string) ([]*models.Article, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus: %w", err)
	}
	return Parse(data)
}

// Parse decodes corpus JSON bytes and validates each article.
func Parse(data []byte) ([]*models.Article, error) {
	var articles []*models.Article
	if err := json.Unmarshal(data, &articles); err != nil {
		var wrapped corpusFile
		if err2 := json.Unmarshal(data, &wrapped); err2 != nil {
			return nil, fmt.Errorf("failed to parse corpus: %w", err)
		}
		articles = wrapped.Articles
	}
	if len(articles) == 0 {
		return nil, &models.DataIntegrityError{Detail: "corpus contains no articles"}
	}
	for _, a := range articles {
		if err := a.Validate(); err != nil {
			return nil, err
		}
	}
	return articles, nil
}
