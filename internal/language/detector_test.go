package language

import (
	"testing"

	"github.com/lexhr/zakon/models"
)

func TestDetector_Detect(t *testing.T) {
	d := NewDetector(nil)

	tests := []struct {
		name    string
		text    string
		current string
		want    string
	}{
		{
			name:    "croatian diacritics win",
			text:    "godišnji odmor i plaća",
			current: models.LanguageEnglish,
			want:    models.LanguageCroatian,
		},
		{
			name:    "english vocabulary wins",
			text:    "what is the overtime law for working hours",
			current: models.LanguageCroatian,
			want:    models.LanguageEnglish,
		},
		{
			name:    "spanish vocabulary and diacritics win",
			text:    "cuál es el salario por despido",
			current: models.LanguageEnglish,
			want:    models.LanguageSpanish,
		},
		{
			name:    "insignificant input keeps current",
			text:    "xyz",
			current: models.LanguageEnglish,
			want:    models.LanguageEnglish,
		},
		{
			name:    "empty input keeps current",
			text:    "   ",
			current: models.LanguageSpanish,
			want:    models.LanguageSpanish,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Detect(tt.text, tt.current); got != tt.want {
				t.Errorf("Detect(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetector_Score(t *testing.T) {
	d := NewDetector(nil)

	// Each Croatian diacritic contributes the full diacritic weight.
	score := d.Score("čžš", models.LanguageCroatian)
	if score != 30 {
		t.Errorf("Score(čžš, hr) = %v, want 30", score)
	}

	// A lone stop word must stay under the significance threshold.
	if got := d.Detect("the", models.LanguageCroatian); got != models.LanguageCroatian {
		t.Errorf("single stop word switched language to %q", got)
	}
}
