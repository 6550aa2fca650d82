// Package language links translated article variants and detects query language.
package language

import (
	"strings"

	"github.com/lexhr/zakon/config"
	"github.com/lexhr/zakon/models"
)

// Per-language detection data. Diacritics are the strongest signal, then
// domain vocabulary, then stop-word overlap. English has no diacritics and
// relies entirely on the weaker signals.
var (
	diacritics = map[string]string{
		models.LanguageCroatian: "čćžšđ",
		models.LanguageSpanish:  "áéíóúñü¿¡",
		models.LanguageEnglish:  "",
	}

	domainVocabulary = map[string][]string{
		models.LanguageCroatian: {
			"zakon", "radnik", "poslodavac", "ugovor", "plaća", "otkaz",
			"odmor", "radno", "vrijeme", "dopust", "prava", "članak",
		},
		models.LanguageEnglish: {
			"law", "employee", "employer", "contract", "salary", "termination",
			"leave", "working", "hours", "overtime", "rights", "article",
		},
		models.LanguageSpanish: {
			"ley", "empleado", "empleador", "contrato", "salario", "despido",
			"vacaciones", "trabajo", "horario", "permiso", "derechos",
		},
	}

	stopWords = map[string][]string{
		models.LanguageCroatian: {"i", "u", "na", "je", "se", "za", "od", "do", "s", "o", "koji", "što"},
		models.LanguageEnglish:  {"the", "a", "an", "of", "to", "in", "and", "is", "for", "on", "what", "how"},
		models.LanguageSpanish:  {"el", "la", "de", "que", "y", "en", "un", "es", "por", "los", "las", "como"},
	}
)

// Detector guesses the most likely language of free-text input.
type Detector struct {
	cfg *config.ScoringConfig
}

// NewDetector creates a Detector using the configured detection weights.
func NewDetector(cfg *config.ScoringConfig) *Detector {
	if cfg == nil {
		cfg = &config.Default().Scoring
	}
	return &Detector{cfg: cfg}
}

// Detect scores the text against each supported language and returns the
// winner when its score clears the significance threshold; otherwise the
// current language is kept unchanged.
func (d *Detector) Detect(text, current string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return current
	}
	words := strings.Fields(text)

	bestLang := current
	bestScore := 0.0
	for _, lang := range models.SupportedLanguages {
		score := d.score(text, words, lang)
		if score > bestScore {
			bestScore = score
			bestLang = lang
		}
	}

	if bestScore > d.cfg.DetectionThreshold {
		return bestLang
	}
	return current
}

// Score returns the detection score for a single language, exposed for tests.
func (d *Detector) Score(text, lang string) float64 {
	text = strings.ToLower(strings.TrimSpace(text))
	return d.score(text, strings.Fields(text), lang)
}

func (d *Detector) score(text string, words []string, lang string) float64 {
	score := 0.0

	for _, r := range text {
		if strings.ContainsRune(diacritics[lang], r) {
			score += d.cfg.DiacriticWeight
		}
	}

	for _, w := range words {
		for _, v := range domainVocabulary[lang] {
			if w == v {
				score += d.cfg.VocabularyWeight
				break
			}
		}
		for _, s := range stopWords[lang] {
			if w == s {
				score += d.cfg.StopWordWeight
				break
			}
		}
	}

	return score
}
