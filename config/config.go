// Package config provides configuration loading and defaults for the search engine.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all tunables for the engine. Every scoring weight has a
// default matching the shipped ranking behavior; override via YAML only when
// retuning is actually wanted.
type Config struct {
	Debug    bool           `yaml:"debug"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Engine   EngineConfig   `yaml:"engine"`
	Feedback FeedbackConfig `yaml:"feedback"`
	State    StateConfig    `yaml:"state"`
}

// ScoringConfig holds the lexical scoring weights and the language-detection
// weights. The values are empirically tuned; treat them as configuration,
// not law.
type ScoringConfig struct {
	// Per-term occurrence weights
	TitleWeight   float64 `yaml:"title_weight"`   // default: 10
	KeywordWeight float64 `yaml:"keyword_weight"` // default: 5
	ContentWeight float64 `yaml:"content_weight"` // default: 1

	// Exact-phrase bonuses for multi-term queries
	PhraseTitleBonus   float64 `yaml:"phrase_title_bonus"`   // default: 20
	PhraseContentBonus float64 `yaml:"phrase_content_bonus"` // default: 10

	// Bonus per query term found in the category vocabulary for the
	// requested display language
	CategoryTermBonus float64 `yaml:"category_term_bonus"` // default: 3

	// Final blend: score = text_blend*textScore + relevance_blend*relevance
	TextBlendWeight      float64 `yaml:"text_blend_weight"`      // default: 0.7
	RelevanceBlendWeight float64 `yaml:"relevance_blend_weight"` // default: 0.3

	// Language detection weights and significance threshold
	DiacriticWeight    float64 `yaml:"diacritic_weight"`    // default: 10
	VocabularyWeight   float64 `yaml:"vocabulary_weight"`   // default: 5
	StopWordWeight     float64 `yaml:"stop_word_weight"`    // default: 1
	DetectionThreshold float64 `yaml:"detection_threshold"` // default: 2
}

// EngineConfig holds orchestration limits and debounce windows.
type EngineConfig struct {
	DefaultLimit      int `yaml:"default_limit"`       // default: 10
	MaxLimit          int `yaml:"max_limit"`           // default: 100
	MaxQueryLength    int `yaml:"max_query_length"`    // default: 500
	SearchDebounceMS  int `yaml:"search_debounce_ms"`  // default: 300
	SuggestDebounceMS int `yaml:"suggest_debounce_ms"` // default: 150
}

// SearchDebounce returns the full-search debounce window.
func (e *EngineConfig) SearchDebounce() time.Duration {
	return time.Duration(e.SearchDebounceMS) * time.Millisecond
}

// SuggestDebounce returns the suggestion debounce window. It is shorter than
// the search window so suggestions can appear before results.
func (e *EngineConfig) SuggestDebounce() time.Duration {
	return time.Duration(e.SuggestDebounceMS) * time.Millisecond
}

// FeedbackConfig holds the adaptive feedback scoring parameters.
type FeedbackConfig struct {
	// DecayPerDay is the exponential decay applied per elapsed day to each
	// feedback event's weight.
	DecayPerDay float64 `yaml:"decay_per_day"` // default: 0.95
	// MinEvents is the number of feedback events an article must accumulate
	// before an adaptive score is computed.
	MinEvents int `yaml:"min_events"` // default: 3
	// DwellMaxBonusMS is the dwell time at which confidence reaches its maximum.
	DwellMaxBonusMS int `yaml:"dwell_max_bonus_ms"` // default: 5000
	// QuickFeedbackMS is the window after a search within which feedback is
	// treated as low-signal and discounted.
	QuickFeedbackMS int `yaml:"quick_feedback_ms"` // default: 2000
	// QuickFeedbackDiscount multiplies confidence for quick feedback.
	QuickFeedbackDiscount float64 `yaml:"quick_feedback_discount"` // default: 0.3

	// Personalized score blend weights on top of a base of 1.0
	CategoryAffinityWeight float64 `yaml:"category_affinity_weight"` // default: 0.3
	KeywordAffinityWeight  float64 `yaml:"keyword_affinity_weight"`  // default: 0.2
	AdaptiveWeight         float64 `yaml:"adaptive_weight"`          // default: 0.4
}

// DwellMaxBonus returns the dwell time granting maximum confidence.
func (f *FeedbackConfig) DwellMaxBonus() time.Duration {
	return time.Duration(f.DwellMaxBonusMS) * time.Millisecond
}

// QuickFeedbackWindow returns the low-signal feedback window.
func (f *FeedbackConfig) QuickFeedbackWindow() time.Duration {
	return time.Duration(f.QuickFeedbackMS) * time.Millisecond
}

// StateConfig holds the local persisted-state location. An empty path keeps
// all profile state in memory only.
type StateConfig struct {
	DatabasePath string `yaml:"database_path"`
}

// Load reads and parses the config file at path and applies defaults.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)
	return &cfg, nil
}

// Save writes the config to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
