// Package models defines core data structures for articles, queries, and search results.
package models

// Language codes for the corpus. Croatian is the source language; English and
// Spanish articles are derived translations linked via OriginalID.
const (
	LanguageCroatian = "hr"
	LanguageEnglish  = "en"
	LanguageSpanish  = "es"
)

// SupportedLanguages lists all language codes the engine understands.
var SupportedLanguages = []string{LanguageCroatian, LanguageEnglish, LanguageSpanish}

// FeedbackCounts holds lifetime helpful / not-helpful tallies for one article.
type FeedbackCounts struct {
	Helpful    uint64 `json:"helpful"`
	NotHelpful uint64 `json:"notHelpful"`
}

// Total returns the number of feedback events recorded.
func (f FeedbackCounts) Total() uint64 {
	return f.Helpful + f.NotHelpful
}

// Article represents a single legal article in one language.
// All fields except RelevanceScore and UserFeedback are immutable after load.
type Article struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	Category      string   `json:"category"`
	Keywords      []string `json:"keywords"`
	ArticleNumber string   `json:"articleNumber"`
	Language      string   `json:"language"`

	// OriginalID links a translated article back to its source-language
	// article. Empty for source-language articles.
	OriginalID string `json:"originalId,omitempty"`

	// RelevanceScore is derived purely from UserFeedback and always lies in
	// [0, 3]. Articles without feedback sit at the neutral 1.0.
	RelevanceScore float64        `json:"relevanceScore"`
	UserFeedback   FeedbackCounts `json:"userFeedback"`
}

const (
	// RelevanceNeutral is the base relevance score for articles with no feedback.
	RelevanceNeutral = 1.0
	// RelevanceMin and RelevanceMax bound every relevance-derived score.
	RelevanceMin = 0.0
	RelevanceMax = 3.0
)

// Validate checks the structural requirements for a corpus article.
// A missing ID, title, or content makes the whole corpus load fail.
func (a *Article) Validate() error {
	switch {
	case a.ID == "":
		return &DataIntegrityError{ArticleID: a.ID, Field: "id"}
	case a.Title == "":
		return &DataIntegrityError{ArticleID: a.ID, Field: "title"}
	case a.Content == "":
		return &DataIntegrityError{ArticleID: a.ID, Field: "content"}
	}
	return nil
}

// GroupKey returns the identifier shared by all language variants of the same
// logical article: the OriginalID for translations, the article's own ID for
// source-language articles.
func (a *Article) GroupKey() string {
	if a.OriginalID != "" {
		return a.OriginalID
	}
	return a.ID
}

// RecomputeRelevance recalculates RelevanceScore from the feedback counts:
// 1.0 + (helpfulRatio*2 - 1), clamped to [0, 3]. With no feedback the score
// stays at the neutral 1.0.
func (a *Article) RecomputeRelevance() {
	total := a.UserFeedback.Total()
	if total == 0 {
		a.RelevanceScore = RelevanceNeutral
		return
	}
	ratio := float64(a.UserFeedback.Helpful) / float64(total)
	a.RelevanceScore = ClampRelevance(RelevanceNeutral + (ratio*2 - 1))
}

// ClampRelevance clamps v to the valid relevance range [0, 3].
func ClampRelevance(v float64) float64 {
	if v < RelevanceMin {
		return RelevanceMin
	}
	if v > RelevanceMax {
		return RelevanceMax
	}
	return v
}
