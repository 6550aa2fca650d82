package engine

import (
	"context"
	"sync"
	"time"

	"github.com/lexhr/zakon/models"
)

// Debouncer collapses rapid successive calls into a single trailing
// invocation: each Do replaces any pending call, so only the last one within
// a quiet period fires. This bounds search work under fast typing and
// guarantees a stale invocation can never land after a fresher one.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

// NewDebouncer creates a Debouncer with the given quiet period.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Do schedules fn after the quiet period, cancelling any pending call.
func (d *Debouncer) Do(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending call.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// DebouncedSearch schedules a search after the search quiet period (default
// 300ms). A newer call supersedes a pending one; callback receives the result
// of the call that actually ran.
func (e *Engine) DebouncedSearch(ctx context.Context, q *models.SearchQuery, callback func(*models.SearchResponse, error)) {
	e.searchDebounce.Do(func() {
		callback(e.Search(ctx, q))
	})
}

// DebouncedSuggest schedules a suggestion fetch after the suggestion quiet
// period, which is shorter than the search period so suggestions can appear
// before results.
func (e *Engine) DebouncedSuggest(partial string, limit int, callback func([]string)) {
	e.suggestDebounce.Do(func() {
		callback(e.Suggest(partial, limit))
	})
}
