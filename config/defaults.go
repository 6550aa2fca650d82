package config

// Default returns a Config populated with all default values.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills in zero-valued fields with defaults.
func ApplyDefaults(cfg *Config) {
	s := &cfg.Scoring
	if s.TitleWeight == 0 {
		s.TitleWeight = 10
	}
	if s.KeywordWeight == 0 {
		s.KeywordWeight = 5
	}
	if s.ContentWeight == 0 {
		s.ContentWeight = 1
	}
	if s.PhraseTitleBonus == 0 {
		s.PhraseTitleBonus = 20
	}
	if s.PhraseContentBonus == 0 {
		s.PhraseContentBonus = 10
	}
	if s.CategoryTermBonus == 0 {
		s.CategoryTermBonus = 3
	}
	if s.TextBlendWeight == 0 {
		s.TextBlendWeight = 0.7
	}
	if s.RelevanceBlendWeight == 0 {
		s.RelevanceBlendWeight = 0.3
	}
	if s.DiacriticWeight == 0 {
		s.DiacriticWeight = 10
	}
	if s.VocabularyWeight == 0 {
		s.VocabularyWeight = 5
	}
	if s.StopWordWeight == 0 {
		s.StopWordWeight = 1
	}
	if s.DetectionThreshold == 0 {
		s.DetectionThreshold = 2
	}

	e := &cfg.Engine
	if e.DefaultLimit == 0 {
		e.DefaultLimit = 10
	}
	if e.MaxLimit == 0 {
		e.MaxLimit = 100
	}
	if e.MaxQueryLength == 0 {
		e.MaxQueryLength = 500
	}
	if e.SearchDebounceMS == 0 {
		e.SearchDebounceMS = 300
	}
	if e.SuggestDebounceMS == 0 {
		e.SuggestDebounceMS = 150
	}

	f := &cfg.Feedback
	if f.DecayPerDay == 0 {
		f.DecayPerDay = 0.95
	}
	if f.MinEvents == 0 {
		f.MinEvents = 3
	}
	if f.DwellMaxBonusMS == 0 {
		f.DwellMaxBonusMS = 5000
	}
	if f.QuickFeedbackMS == 0 {
		f.QuickFeedbackMS = 2000
	}
	if f.QuickFeedbackDiscount == 0 {
		f.QuickFeedbackDiscount = 0.3
	}
	if f.CategoryAffinityWeight == 0 {
		f.CategoryAffinityWeight = 0.3
	}
	if f.KeywordAffinityWeight == 0 {
		f.KeywordAffinityWeight = 0.2
	}
	if f.AdaptiveWeight == 0 {
		f.AdaptiveWeight = 0.4
	}
}
