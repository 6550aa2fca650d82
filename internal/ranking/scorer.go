package ranking

import (
	"strings"

	"github.com/lexhr/zakon/config"
	"github.com/lexhr/zakon/models"
)

// Scorer computes lexical relevance scores using the configured weight table.
// Scoring scans article text directly at query time; the corpus is small
// enough (hundreds of articles) that a pre-inverted content index would only
// complicate the scoring model.
type Scorer struct {
	cfg *config.ScoringConfig
}

// NewScorer creates a Scorer with the given weights. A nil config uses defaults.
func NewScorer(cfg *config.ScoringConfig) *Scorer {
	if cfg == nil {
		cfg = &config.Default().Scoring
	}
	return &Scorer{cfg: cfg}
}

// TextScore scores one article against the normalized query terms for the
// given display language. Returns 0 when no term matches anywhere; such
// articles are excluded from results.
func (s *Scorer) TextScore(a *models.Article, terms []string, language string) float64 {
	if a == nil || len(terms) == 0 {
		return 0
	}

	title := strings.ToLower(a.Title)
	keywords := strings.ToLower(strings.Join(a.Keywords, " "))
	content := strings.ToLower(a.Content)

	score := 0.0
	for _, term := range terms {
		score += float64(strings.Count(title, term)) * s.cfg.TitleWeight
		score += float64(strings.Count(keywords, term)) * s.cfg.KeywordWeight
		score += float64(strings.Count(content, term)) * s.cfg.ContentWeight
	}

	if len(terms) > 1 {
		phrase := Phrase(terms)
		if strings.Contains(title, phrase) {
			score += s.cfg.PhraseTitleBonus
		}
		if strings.Contains(content, phrase) {
			score += s.cfg.PhraseContentBonus
		}
	}

	if vocab := CategoryVocabulary(language, a.Category); len(vocab) > 0 {
		for _, term := range terms {
			if vocabContains(vocab, term) {
				score += s.cfg.CategoryTermBonus
			}
		}
	}

	return score
}

// Combined blends the lexical score with a relevance score into the final
// ranking score: text_blend*text + relevance_blend*relevance.
func (s *Scorer) Combined(textScore, relevanceScore float64) float64 {
	return s.cfg.TextBlendWeight*textScore + s.cfg.RelevanceBlendWeight*relevanceScore
}

// vocabContains reports whether the term appears in any vocabulary entry.
// Entries may be multi-word, so a substring check is used.
func vocabContains(vocab []string, term string) bool {
	for _, entry := range vocab {
		if strings.Contains(entry, term) {
			return true
		}
	}
	return false
}
