package index

import (
	"strings"

	"github.com/lexhr/zakon/models"
)

// CacheKey identifies one exact search invocation. Two searches with the same
// key must produce structurally identical envelopes.
type CacheKey struct {
	Query    string
	Category string
	Language string
	Limit    int
	Offset   int
}

// NewCacheKey builds the cache key from a validated query. The query text is
// normalized the same way the tokenizer sees it.
func NewCacheKey(q *models.SearchQuery) CacheKey {
	return CacheKey{
		Query:    strings.ToLower(strings.TrimSpace(q.Query)),
		Category: q.Category,
		Language: q.Language,
		Limit:    q.Limit,
		Offset:   q.Offset,
	}
}

// QueryCache memoizes full result envelopes by exact parameter tuple.
// Unbounded growth is acceptable at this corpus scale; the cache must be
// cleared in full whenever any article's relevance score changes, and on
// corpus reload.
type QueryCache struct {
	entries map[CacheKey]*models.SearchResponse
}

// NewQueryCache creates an empty cache.
func NewQueryCache() *QueryCache {
	return &QueryCache{entries: make(map[CacheKey]*models.SearchResponse)}
}

// Get returns the cached envelope for the key, if present.
func (c *QueryCache) Get(key CacheKey) (*models.SearchResponse, bool) {
	resp, ok := c.entries[key]
	return resp, ok
}

// Put stores an envelope under the key.
func (c *QueryCache) Put(key CacheKey, resp *models.SearchResponse) {
	c.entries[key] = resp
}

// Clear drops every cached envelope. This is the only mutation entry point
// besides Put; feedback ingestion must call it before the next query runs.
func (c *QueryCache) Clear() {
	c.entries = make(map[CacheKey]*models.SearchResponse)
}

// Len returns the number of cached envelopes.
func (c *QueryCache) Len() int {
	return len(c.entries)
}
