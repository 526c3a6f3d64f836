// Package track decides whether a remote refresh of a resource is due.
// State lives in process memory only; a restart forgets everything, which
// guarantees one re-check after startup.
package track

import (
	"fmt"
	"sync"
	"time"
)

// Key identifies a refreshable resource.
type Key string

const (
	KeyCategories        Key = "categories"
	KeyVirtualCategories Key = "vcategories"
	KeyCounters          Key = "counters"
)

// ArticlesKey tracks the headline refresh of one feed or category.
func ArticlesKey(scopeID int64) Key {
	return Key(fmt.Sprintf("articles/%d", scopeID))
}

// FeedsKey tracks the feed-list refresh of one category.
func FeedsKey(categoryID int64) Key {
	return Key(fmt.Sprintf("feeds/%d", categoryID))
}

// Tracker maps resource keys to their last successful refresh time.
// Checks are advisory: a stale false positive costs one redundant fetch, a
// false negative delays a refresh by one interval. Nothing stronger than
// map-level locking is needed.
type Tracker struct {
	mu          sync.Mutex
	lastUpdated map[Key]time.Time
	now         func() time.Time
}

func New() *Tracker {
	return &Tracker{
		lastUpdated: make(map[Key]time.Time),
		now:         time.Now,
	}
}

// IsStale reports whether the resource has not been refreshed within
// minInterval. Unknown keys are always stale.
func (t *Tracker) IsStale(key Key, minInterval time.Duration) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.now().Sub(t.lastUpdated[key]) > minInterval
}

// Touch records a successful refresh now.
func (t *Tracker) Touch(key Key) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lastUpdated[key] = t.now()
}

// Reset forces the next check for the given keys to come back stale. Used
// on force-refresh and when a cached counter disagrees with row state.
func (t *Tracker) Reset(keys ...Key) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, key := range keys {
		delete(t.lastUpdated, key)
	}
}
