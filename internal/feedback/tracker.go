// Package feedback accumulates user feedback and derives adaptive,
// time-decayed per-article scores from it.
package feedback

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/lexhr/zakon/config"
	"github.com/lexhr/zakon/internal/state"
)

const eventsStateKey = "feedback_events"

// Event is one recorded feedback action. Value is +1 (helpful) or -1
// (not helpful); Confidence in [0, 1] reflects how deliberate the action
// looked (dwell time, distance from the triggering search).
type Event struct {
	Value      int       `json:"value"`
	Confidence float64   `json:"confidence"`
	Timestamp  time.Time `json:"timestamp"`
}

// Tracker keeps per-article feedback event histories and their adaptive
// scores. It persists event history through a state.Store; persistence
// failures are logged and otherwise ignored.
type Tracker struct {
	cfg    *config.FeedbackConfig
	events map[string][]Event
	store  state.Store
	logger *zap.Logger
	now    func() time.Time
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithClock overrides the tracker's time source, for tests.
func WithClock(now func() time.Time) TrackerOption {
	return func(t *Tracker) { t.now = now }
}

// NewTracker creates a Tracker, loading any persisted event history from the
// store. A corrupt or missing history starts fresh.
func NewTracker(cfg *config.FeedbackConfig, st state.Store, logger *zap.Logger, opts ...TrackerOption) *Tracker {
	if cfg == nil {
		cfg = &config.Default().Feedback
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	t := &Tracker{
		cfg:    cfg,
		events: make(map[string][]Event),
		store:  st,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.load()
	return t
}

func (t *Tracker) load() {
	if t.store == nil {
		return
	}
	data, err := t.store.Get(context.Background(), eventsStateKey)
	if err != nil {
		if !errors.Is(err, state.ErrKeyNotFound) {
			t.logger.Warn("failed to load feedback history, starting fresh", zap.Error(err))
		}
		return
	}
	var events map[string][]Event
	if err := json.Unmarshal(data, &events); err != nil {
		t.logger.Warn("corrupt feedback history, starting fresh", zap.Error(err))
		return
	}
	t.events = events
}

func (t *Tracker) persist() {
	if t.store == nil {
		return
	}
	data, err := json.Marshal(t.events)
	if err != nil {
		t.logger.Warn("failed to encode feedback history", zap.Error(err))
		return
	}
	if err := t.store.Put(context.Background(), eventsStateKey, data); err != nil {
		t.logger.Warn("failed to persist feedback history", zap.Error(err))
	}
}

// Record appends one feedback event for an article. dwell is how long the
// user viewed the article before reacting; sinceSearch is the time elapsed
// since the search that surfaced it.
func (t *Tracker) Record(articleID string, helpful bool, dwell, sinceSearch time.Duration) {
	value := 1
	if !helpful {
		value = -1
	}
	ev := Event{
		Value:      value,
		Confidence: t.Confidence(dwell, sinceSearch),
		Timestamp:  t.now(),
	}
	t.events[articleID] = append(t.events[articleID], ev)
	t.persist()
}

// Confidence derives an event weight in [0, 1]: half the weight is granted
// up front, the rest grows linearly with dwell time up to the configured
// maximum. Feedback fired within the quick-feedback window of a search is
// likely accidental and gets discounted.
func (t *Tracker) Confidence(dwell, sinceSearch time.Duration) float64 {
	maxDwell := t.cfg.DwellMaxBonus()
	ratio := 1.0
	if maxDwell > 0 && dwell < maxDwell {
		if dwell < 0 {
			dwell = 0
		}
		ratio = float64(dwell) / float64(maxDwell)
	}
	confidence := 0.5 + 0.5*ratio

	if sinceSearch >= 0 && sinceSearch < t.cfg.QuickFeedbackWindow() {
		confidence *= t.cfg.QuickFeedbackDiscount
	}
	return confidence
}

// EventCount returns the number of recorded events for an article.
func (t *Tracker) EventCount(articleID string) int {
	return len(t.events[articleID])
}

// AdaptiveScore returns the article's adaptive score in [-1, 1]: the
// confidence-weighted, exponentially decayed average of signed feedback
// values. Articles below the minimum event threshold score 0 (neutral).
func (t *Tracker) AdaptiveScore(articleID string) float64 {
	events := t.events[articleID]
	if len(events) < t.cfg.MinEvents {
		return 0
	}

	now := t.now()
	weightedSum := 0.0
	weightTotal := 0.0
	for _, ev := range events {
		days := now.Sub(ev.Timestamp).Hours() / 24
		if days < 0 {
			days = 0
		}
		weight := ev.Confidence * math.Pow(t.cfg.DecayPerDay, days)
		weightedSum += float64(ev.Value) * weight
		weightTotal += weight
	}
	if weightTotal == 0 {
		return 0
	}
	return weightedSum / weightTotal
}

// Reset drops all recorded feedback, in memory and persisted.
func (t *Tracker) Reset() {
	t.events = make(map[string][]Event)
	if t.store != nil {
		if err := t.store.Delete(context.Background(), eventsStateKey); err != nil {
			t.logger.Warn("failed to clear persisted feedback history", zap.Error(err))
		}
	}
}
