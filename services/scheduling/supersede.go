package scheduling

import "sync"

// QueryTracker records, per facility, the most recent query key a caller
// asked for. A computation captures its key when it starts and checks it
// is still current before publishing; when the caller has moved on (new
// date, new duration) the stale result is discarded instead of being
// cached or returned.
type QueryTracker struct {
	mu      sync.Mutex
	current map[string]SlotCacheKey
}

func NewQueryTracker() *QueryTracker {
	return &QueryTracker{current: make(map[string]SlotCacheKey)}
}

// Begin marks key as the facility's current query.
func (t *QueryTracker) Begin(facilityID string, key SlotCacheKey) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current[facilityID] = key
}

// IsCurrent reports whether key is still the facility's current query.
func (t *QueryTracker) IsCurrent(facilityID string, key SlotCacheKey) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	cur, ok := t.current[facilityID]
	return ok && cur == key
}
