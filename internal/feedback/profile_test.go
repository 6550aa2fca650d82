package feedback

import (
	"context"
	"testing"

	"github.com/lexhr/zakon/internal/state"
	"github.com/lexhr/zakon/models"
)

func almostEqual(a, b float64) bool {
	diff := a - b
	return diff < 1e-9 && diff > -1e-9
}

func TestTally_Affinity(t *testing.T) {
	tests := []struct {
		name  string
		tally Tally
		want  float64
	}{
		{"no data is neutral", Tally{}, 0},
		{"all helpful", Tally{Helpful: 3}, 1},
		{"all not helpful", Tally{NotHelpful: 3}, -1},
		{"even split", Tally{Helpful: 2, NotHelpful: 2}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tally.Affinity(); got != tt.want {
				t.Errorf("Affinity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPersonalizer_NeutralWithoutHistory(t *testing.T) {
	p := NewPersonalizer(nil, nil, nil)
	a := &models.Article{ID: "a", Title: "t", Content: "c", Category: "leave", Keywords: []string{"odmor"}}
	if got := p.Score(a, 0); got != 1.0 {
		t.Errorf("Score() with no history = %v, want 1.0", got)
	}
	if p.UserID() == "" {
		t.Error("expected a generated user id")
	}
}

func TestPersonalizer_ScoreBlend(t *testing.T) {
	p := NewPersonalizer(nil, nil, nil)
	a := &models.Article{ID: "a", Title: "t", Content: "c", Category: "leave", Keywords: []string{"odmor"}}

	p.RecordFeedback(a, true)

	// Category and keyword affinity are both +1 after one helpful vote:
	// 1.0 + 0.3*1 + 0.2*1 + 0.4*adaptive.
	if got, want := p.Score(a, 0), 1.5; !almostEqual(got, want) {
		t.Errorf("Score() = %v, want %v", got, want)
	}
	if got, want := p.Score(a, 1), 1.9; !almostEqual(got, want) {
		t.Errorf("Score() with adaptive = %v, want %v", got, want)
	}

	// A strongly negative profile clamps at the floor, never below.
	b := &models.Article{ID: "b", Title: "t", Content: "c", Category: "wages", Keywords: []string{"plaća"}}
	for i := 0; i < 5; i++ {
		p.RecordFeedback(b, false)
	}
	if got := p.Score(b, -1); got < 0 || got > 3 {
		t.Errorf("Score() = %v outside [0, 3]", got)
	}
}

func TestPersonalizer_PersistsProfile(t *testing.T) {
	st := state.NewMemStore()
	p := NewPersonalizer(nil, st, nil)
	a := &models.Article{ID: "a", Title: "t", Content: "c", Category: "leave", Keywords: []string{"odmor"}}
	p.RecordFeedback(a, true)
	id := p.UserID()

	again := NewPersonalizer(nil, st, nil)
	if again.UserID() != id {
		t.Errorf("UserID after reload = %q, want %q", again.UserID(), id)
	}
	if got := again.Score(a, 0); !almostEqual(got, 1.5) {
		t.Errorf("Score after reload = %v, want 1.5", got)
	}
}

func TestPersonalizer_CorruptProfileStartsNewUser(t *testing.T) {
	st := state.NewMemStore()
	if err := st.Put(context.Background(), "user_profile", []byte("garbage")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	p := NewPersonalizer(nil, st, nil)
	if p.UserID() == "" {
		t.Error("corrupt profile must degrade to a fresh user id")
	}
	a := &models.Article{ID: "a", Title: "t", Content: "c", Category: "leave"}
	if got := p.Score(a, 0); got != 1.0 {
		t.Errorf("Score() for fresh user = %v, want 1.0", got)
	}
}

func TestPersonalizer_Reset(t *testing.T) {
	st := state.NewMemStore()
	p := NewPersonalizer(nil, st, nil)
	a := &models.Article{ID: "a", Title: "t", Content: "c", Category: "leave"}
	p.RecordFeedback(a, true)
	old := p.UserID()

	p.Reset()
	if p.UserID() == old {
		t.Error("Reset must generate a new user id")
	}
	if got := p.Score(a, 0); got != 1.0 {
		t.Errorf("Score() after Reset = %v, want 1.0", got)
	}
}
