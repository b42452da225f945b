package keys

import (
	"sync"
)

// Rotator hands out API keys round-robin and is safe for concurrent use.
type Rotator struct {
	keys  []string
	index int
	mutex sync.Mutex
}

// NewRotator creates a Rotator over the given keys. Empty entries are skipped
// and duplicates are kept only once, preserving order.
func NewRotator(keys ...string) *Rotator {
	seen := make(map[string]struct{}, len(keys))
	kept := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		kept = append(kept, k)
	}
	return &Rotator{keys: kept}
}

// Len returns the number of usable keys.
func (r *Rotator) Len() int {
	return len(r.keys)
}

// Next returns the next API key, or "" when no key is configured.
func (r *Rotator) Next() string {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if len(r.keys) == 0 {
		return ""
	}

	key := r.keys[r.index]
	r.index = (r.index + 1) % len(r.keys)
	return key
}
