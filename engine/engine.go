// Package engine composes the article store, scorer, indexes, cross-language
// resolver, and feedback tracking into one search façade.
package engine

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/lexhr/zakon/config"
	"github.com/lexhr/zakon/internal/feedback"
	"github.com/lexhr/zakon/internal/index"
	"github.com/lexhr/zakon/internal/language"
	"github.com/lexhr/zakon/internal/ranking"
	"github.com/lexhr/zakon/internal/state"
	"github.com/lexhr/zakon/internal/store"
	"github.com/lexhr/zakon/models"
	"github.com/lexhr/zakon/pkg/utils"
)

// Engine is the query orchestrator. All operations serialize on one internal
// mutex, mirroring the single-threaded mutation discipline the scoring model
// assumes: any relevance mutation invalidates the query cache before the next
// query can observe it.
type Engine struct {
	mu sync.Mutex

	cfg      *config.Config
	store    *store.Store
	scorer   *ranking.Scorer
	keywords *index.KeywordIndex
	cache    *index.QueryCache
	resolver *language.Resolver
	detector *language.Detector
	tracker  *feedback.Tracker
	personal *feedback.Personalizer
	states   state.Store
	logger   *zap.Logger
	now      func() time.Time

	displayLanguage string
	lastSearchAt    time.Time

	searchDebounce  *Debouncer
	suggestDebounce *Debouncer
}

// Option configures an Engine.
type Option func(*options)

type options struct {
	logger *zap.Logger
	states state.Store
	now    func() time.Time
}

// WithLogger sets the engine logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithStateStore overrides the local state store (profile and feedback
// persistence). Overrides any configured database path.
func WithStateStore(s state.Store) Option {
	return func(o *options) { o.states = s }
}

// WithClock overrides the engine's time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// New builds an Engine over the loaded corpus. The corpus is validated
// eagerly; a structurally invalid article fails construction.
func New(cfg *config.Config, articles []*models.Article, opts ...Option) (*Engine, error) {
	if cfg == nil {
		cfg = config.Default()
	} else {
		config.ApplyDefaults(cfg)
	}

	o := &options{now: time.Now}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		l, err := utils.NewLogger(cfg.Debug)
		if err != nil {
			l = zap.NewNop()
		}
		o.logger = l
	}

	corpus, err := store.New(articles)
	if err != nil {
		return nil, err
	}

	states := o.states
	if states == nil {
		if cfg.State.DatabasePath != "" {
			sqlite, err := state.NewSQLiteStore(cfg.State.DatabasePath)
			if err != nil {
				// Persistence is best effort; continue with in-memory state.
				o.logger.Warn("failed to open state database, feedback will not persist", zap.Error(err))
				states = state.NewMemStore()
			} else {
				states = sqlite
			}
		} else {
			states = state.NewMemStore()
		}
	}

	e := &Engine{
		cfg:             cfg,
		store:           corpus,
		scorer:          ranking.NewScorer(&cfg.Scoring),
		keywords:        index.Build(corpus.All()),
		cache:           index.NewQueryCache(),
		resolver:        language.NewResolver(corpus),
		detector:        language.NewDetector(&cfg.Scoring),
		tracker:         feedback.NewTracker(&cfg.Feedback, states, o.logger, feedback.WithClock(o.now)),
		personal:        feedback.NewPersonalizer(&cfg.Feedback, states, o.logger),
		states:          states,
		logger:          o.logger,
		now:             o.now,
		displayLanguage: models.LanguageCroatian,
		searchDebounce:  NewDebouncer(cfg.Engine.SearchDebounce()),
		suggestDebounce: NewDebouncer(cfg.Engine.SuggestDebounce()),
	}

	e.logger.Info("engine ready",
		zap.Int("articles", corpus.Size()),
		zap.Int("keyword_terms", e.keywords.TermCount()),
		zap.String("user_id", e.personal.UserID()))
	return e, nil
}

// Search runs one query through the full pipeline and returns the ranked
// result envelope. Identical invocations with no intervening feedback are
// served from the query cache and are structurally identical to a fresh
// evaluation.
func (e *Engine) Search(ctx context.Context, q *models.SearchQuery) (*models.SearchResponse, error) {
	start := time.Now()
	if q == nil {
		q = &models.SearchQuery{}
	}
	if q.Language == "" {
		q.Language = e.DisplayLanguage()
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	// Configured bounds may be tighter than the model caps.
	if n := utf8.RuneCountInString(q.Query); n > e.cfg.Engine.MaxQueryLength {
		return nil, &models.InvalidInputError{
			Reason: fmt.Sprintf("query length %d exceeds maximum %d", n, e.cfg.Engine.MaxQueryLength),
		}
	}
	if q.Limit > e.cfg.Engine.MaxLimit {
		q.Limit = e.cfg.Engine.MaxLimit
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastSearchAt = e.now()

	key := index.NewCacheKey(q)
	if resp, ok := e.cache.Get(key); ok {
		e.logger.Debug("query cache hit", zap.String("query", q.Query))
		return resp, nil
	}

	pool := e.store.All()
	if q.Category != "" {
		pool = e.store.ByCategory(q.Category)
	}

	terms := ranking.Tokenize(q.Query)
	var results []*models.SearchResult
	if len(terms) == 0 {
		results = e.browse(pool)
	} else {
		results = e.rank(pool, terms, q.Language)
	}

	total := len(results)
	startIdx := q.Offset
	if startIdx > total {
		startIdx = total
	}
	endIdx := startIdx + q.Limit
	if endIdx > total {
		endIdx = total
	}
	page := results[startIdx:endIdx]
	for i, res := range page {
		res.Rank = startIdx + i + 1
	}

	resp := &models.SearchResponse{
		Results:    page,
		Total:      total,
		HasMore:    q.Offset+q.Limit < total,
		Query:      q.Query,
		Language:   q.Language,
		SearchTime: time.Since(start).Milliseconds(),
	}
	e.cache.Put(key, resp)

	e.logger.Debug("search evaluated",
		zap.String("query", utils.Truncate(q.Query, 80)),
		zap.String("category", q.Category),
		zap.Int("total", total),
		zap.Int("returned", len(page)))
	return resp, nil
}

// browse returns the pool ordered purely by relevance score descending, with
// ties keeping corpus order. No text scoring is applied.
func (e *Engine) browse(pool []*models.Article) []*models.SearchResult {
	results := make([]*models.SearchResult, 0, len(pool))
	for _, a := range pool {
		results = append(results, &models.SearchResult{
			Article: a,
			Score:   a.RelevanceScore,
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// rank runs the scoring pipeline over the pool: lexical score per article,
// relevance blend, personalization multiplier, cross-language resolution,
// stable descending sort.
func (e *Engine) rank(pool []*models.Article, terms []string, displayLanguage string) []*models.SearchResult {
	matchedLanguages := make(map[string]map[string]bool)
	results := make([]*models.SearchResult, 0, len(pool))

	for _, a := range pool {
		textScore := e.scorer.TextScore(a, terms, displayLanguage)
		if textScore <= 0 {
			continue
		}

		group := a.GroupKey()
		langs, ok := matchedLanguages[group]
		if !ok {
			langs = make(map[string]bool)
			matchedLanguages[group] = langs
		}
		langs[a.Language] = true

		combined := e.scorer.Combined(textScore, a.RelevanceScore)
		// Personalization acts as a multiplier on the blended score, neutral
		// at 1.0 for users with no feedback history.
		personalized := e.personal.Score(a, e.tracker.AdaptiveScore(a.ID))
		results = append(results, &models.SearchResult{
			Article:   a,
			TextScore: textScore,
			Score:     combined * personalized,
		})
	}

	e.resolver.Resolve(results, displayLanguage, matchedLanguages)

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// Suggest returns autocomplete suggestions for a partial query, capped at
// limit. Suggestions carry no relevance scoring; order is first-match order
// over the keyword index, then titles.
func (e *Engine) Suggest(partial string, limit int) []string {
	if limit <= 0 {
		limit = e.cfg.Engine.DefaultLimit
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.keywords.Suggest(partial, limit)
}

// FeedbackOptions carries optional signal-quality metadata for a feedback event.
type FeedbackOptions struct {
	// Dwell is how long the user viewed the article before reacting.
	Dwell time.Duration
	// SinceSearch is the elapsed time between the triggering search and the
	// feedback. Negative means unknown.
	SinceSearch time.Duration
}

// SubmitFeedback records one helpful / not-helpful vote. Dwell and
// since-search are measured from the last search the engine served.
func (e *Engine) SubmitFeedback(ctx context.Context, articleID string, helpful bool) error {
	e.mu.Lock()
	sinceSearch := time.Duration(-1)
	if !e.lastSearchAt.IsZero() {
		sinceSearch = e.now().Sub(e.lastSearchAt)
	}
	e.mu.Unlock()
	return e.SubmitFeedbackWithOptions(ctx, articleID, helpful, FeedbackOptions{
		Dwell:       sinceSearch,
		SinceSearch: sinceSearch,
	})
}

// SubmitFeedbackWithOptions records a vote with explicit dwell metadata.
// The article's relevance score is recomputed and the query cache is cleared
// before returning, so no later search can observe stale rankings.
func (e *Engine) SubmitFeedbackWithOptions(_ context.Context, articleID string, helpful bool, opts FeedbackOptions) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	a, err := e.store.ApplyFeedback(articleID, helpful)
	if err != nil {
		return err
	}
	e.tracker.Record(articleID, helpful, opts.Dwell, opts.SinceSearch)
	e.personal.RecordFeedback(a, helpful)
	e.cache.Clear()

	e.logger.Debug("feedback recorded",
		zap.String("article", articleID),
		zap.Bool("helpful", helpful),
		zap.Float64("relevance", a.RelevanceScore))
	return nil
}

// Article looks up an article by id.
func (e *Engine) Article(id string) (*models.Article, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.Get(id)
}

// AdaptiveScore returns the current adaptive score for an article (0 until
// the article accumulates the minimum number of feedback events).
func (e *Engine) AdaptiveScore(articleID string) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tracker.AdaptiveScore(articleID)
}

// UserID returns the locally generated opaque user id.
func (e *Engine) UserID() string {
	return e.personal.UserID()
}

// DetectLanguage guesses the language of free-text input and switches the
// active display language when the detection is significant enough.
// Returns the (possibly unchanged) active language.
func (e *Engine) DetectLanguage(text string) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.displayLanguage = e.detector.Detect(text, e.displayLanguage)
	return e.displayLanguage
}

// DisplayLanguage returns the active display language.
func (e *Engine) DisplayLanguage() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.displayLanguage
}

// SetDisplayLanguage sets the active display language explicitly.
func (e *Engine) SetDisplayLanguage(lang string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.displayLanguage = lang
}

// Reload replaces the corpus wholesale: the store and keyword index are
// rebuilt and the query cache is cleared. Feedback history and the user
// profile survive a reload.
func (e *Engine) Reload(articles []*models.Article) error {
	corpus, err := store.New(articles)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.store = corpus
	e.keywords = index.Build(corpus.All())
	e.resolver = language.NewResolver(corpus)
	e.cache.Clear()
	e.logger.Info("corpus replaced", zap.Int("articles", corpus.Size()))
	return nil
}

// ResetProfile clears all locally stored feedback state and starts over as a
// new user.
func (e *Engine) ResetProfile() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tracker.Reset()
	e.personal.Reset()
	e.cache.Clear()
}

// Close stops the debouncers and closes the state store.
func (e *Engine) Close() error {
	e.searchDebounce.Stop()
	e.suggestDebounce.Stop()
	return e.states.Close()
}
