package feedback

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lexhr/zakon/config"
	"github.com/lexhr/zakon/internal/state"
	"github.com/lexhr/zakon/models"
)

const profileStateKey = "user_profile"

// Tally counts helpful / not-helpful reactions for one category or keyword.
type Tally struct {
	Helpful    uint64 `json:"helpful"`
	NotHelpful uint64 `json:"notHelpful"`
}

// Affinity maps the tally to [-1, 1]: all-helpful is +1, all-not-helpful -1,
// no data 0.
func (t *Tally) Affinity() float64 {
	total := t.Helpful + t.NotHelpful
	if total == 0 {
		return 0
	}
	return float64(t.Helpful)/float64(total)*2 - 1
}

// Profile is the locally persisted per-user feedback state: an opaque
// generated id plus per-category and per-keyword tallies.
type Profile struct {
	UserID     string            `json:"userId"`
	CreatedAt  time.Time         `json:"createdAt"`
	Categories map[string]*Tally `json:"categories"`
	Keywords   map[string]*Tally `json:"keywords"`
}

func newProfile() *Profile {
	return &Profile{
		UserID:     uuid.NewString(),
		CreatedAt:  time.Now(),
		Categories: make(map[string]*Tally),
		Keywords:   make(map[string]*Tally),
	}
}

// Personalizer maintains the user profile and computes personalized article
// scores blending category affinity, keyword affinity, and adaptive score.
type Personalizer struct {
	cfg     *config.FeedbackConfig
	profile *Profile
	store   state.Store
	logger  *zap.Logger
}

// NewPersonalizer loads the persisted profile or creates a fresh one. Storage
// problems degrade to a new-user profile; they are never fatal.
func NewPersonalizer(cfg *config.FeedbackConfig, st state.Store, logger *zap.Logger) *Personalizer {
	if cfg == nil {
		cfg = &config.Default().Feedback
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Personalizer{cfg: cfg, store: st, logger: logger}
	p.profile = p.loadProfile()
	return p
}

func (p *Personalizer) loadProfile() *Profile {
	if p.store == nil {
		return newProfile()
	}
	data, err := p.store.Get(context.Background(), profileStateKey)
	if err != nil {
		if !errors.Is(err, state.ErrKeyNotFound) {
			p.logger.Warn("failed to load user profile, starting as new user", zap.Error(err))
		}
		return newProfile()
	}
	var profile Profile
	if err := json.Unmarshal(data, &profile); err != nil || profile.UserID == "" {
		p.logger.Warn("corrupt user profile, starting as new user", zap.Error(err))
		return newProfile()
	}
	if profile.Categories == nil {
		profile.Categories = make(map[string]*Tally)
	}
	if profile.Keywords == nil {
		profile.Keywords = make(map[string]*Tally)
	}
	return &profile
}

func (p *Personalizer) persist() {
	if p.store == nil {
		return
	}
	data, err := json.Marshal(p.profile)
	if err != nil {
		p.logger.Warn("failed to encode user profile", zap.Error(err))
		return
	}
	if err := p.store.Put(context.Background(), profileStateKey, data); err != nil {
		p.logger.Warn("failed to persist user profile", zap.Error(err))
	}
}

// UserID returns the opaque locally generated user id.
func (p *Personalizer) UserID() string {
	return p.profile.UserID
}

// RecordFeedback updates the per-category and per-keyword tallies from one
// feedback action on an article.
func (p *Personalizer) RecordFeedback(a *models.Article, helpful bool) {
	bump := func(t *Tally) {
		if helpful {
			t.Helpful++
		} else {
			t.NotHelpful++
		}
	}

	if a.Category != "" {
		t, ok := p.profile.Categories[a.Category]
		if !ok {
			t = &Tally{}
			p.profile.Categories[a.Category] = t
		}
		bump(t)
	}
	for _, kw := range a.Keywords {
		key := strings.ToLower(strings.TrimSpace(kw))
		if key == "" {
			continue
		}
		t, ok := p.profile.Keywords[key]
		if !ok {
			t = &Tally{}
			p.profile.Keywords[key] = t
		}
		bump(t)
	}
	p.persist()
}

// Score computes the personalized score for an article: a base of 1.0 plus
// weighted category affinity, keyword affinity, and the article's adaptive
// score, clamped to [0, 3]. With no feedback history it is exactly 1.0.
func (p *Personalizer) Score(a *models.Article, adaptive float64) float64 {
	catAffinity := 0.0
	if t, ok := p.profile.Categories[a.Category]; ok {
		catAffinity = t.Affinity()
	}

	kwAffinity := 0.0
	kwSeen := 0
	for _, kw := range a.Keywords {
		if t, ok := p.profile.Keywords[strings.ToLower(strings.TrimSpace(kw))]; ok {
			kwAffinity += t.Affinity()
			kwSeen++
		}
	}
	if kwSeen > 0 {
		kwAffinity /= float64(kwSeen)
	}

	score := models.RelevanceNeutral +
		p.cfg.CategoryAffinityWeight*catAffinity +
		p.cfg.KeywordAffinityWeight*kwAffinity +
		p.cfg.AdaptiveWeight*adaptive
	return models.ClampRelevance(score)
}

// Reset discards the profile and starts over as a new user.
func (p *Personalizer) Reset() {
	p.profile = newProfile()
	if p.store != nil {
		if err := p.store.Delete(context.Background(), profileStateKey); err != nil {
			p.logger.Warn("failed to clear persisted profile", zap.Error(err))
		}
	}
	p.persist()
}
