package quest

import (
	"context"
	"errors"
	"sort"
	"sync"
)

// Fetcher is the Quest Fetch contract: retrieve a quest definition by id
// from the external quest store.
type Fetcher interface {
	Fetch(ctx context.Context, id string) (*Quest, error)
}

// FetcherFunc adapts a function to the Fetcher interface
type FetcherFunc func(ctx context.Context, id string) (*Quest, error)

func (f FetcherFunc) Fetch(ctx context.Context, id string) (*Quest, error) {
	return f(ctx, id)
}

// Loader fetches, validates, and caches quest definitions
type Loader struct {
	mu      sync.RWMutex
	fetcher Fetcher
	cache   map[string]*Quest
}

// NewLoader creates a loader backed by the given fetcher
func NewLoader(fetcher Fetcher) *Loader {
	return &Loader{
		fetcher: fetcher,
		cache:   make(map[string]*Quest),
	}
}

// Load returns the cached quest for id if present; otherwise it fetches,
// validates, caches, and returns it. Validation failures surface as
// *InvalidQuestError and are never cached; fetch failures surface as
// *LoadFailedError carrying the quest id.
func (l *Loader) Load(ctx context.Context, id string) (*Quest, error) {
	l.mu.RLock()
	cached, ok := l.cache[id]
	l.mu.RUnlock()
	if ok {
		return cached, nil
	}

	q, err := l.fetcher.Fetch(ctx, id)
	if err != nil {
		var invalid *InvalidQuestError
		var failed *LoadFailedError
		if errors.As(err, &invalid) || errors.As(err, &failed) {
			return nil, err
		}
		return nil, &LoadFailedError{QuestID: id, Err: err}
	}

	if err := Validate(q); err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.cache[id] = q
	l.mu.Unlock()
	return q, nil
}

// IsCached reports whether a quest id has been loaded and cached
func (l *Loader) IsCached(id string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.cache[id]
	return ok
}

// ClearCache drops every cached quest. Used for test isolation and to
// force a refresh from the quest store.
func (l *Loader) ClearCache() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[string]*Quest)
}

// CachedIDs returns the ids currently cached, sorted
func (l *Loader) CachedIDs() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	ids := make([]string, 0, len(l.cache))
	for id := range l.cache {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
