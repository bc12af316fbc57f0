package cart

import (
	"sync"
)

// MutationLocks serializes cart mutations per cart id. Two overlapping mutations against
// the same cart would otherwise race on the authoritative snapshot, letting a slow first
// response overwrite a fast second one with stale data.
//
// Entries are reference counted and removed when the last holder releases, so the map
// stays bounded by the number of carts with an in-flight mutation.
type MutationLocks struct {
	mu    sync.Mutex
	locks map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// NewMutationLocks creates an empty lock registry.
func NewMutationLocks() *MutationLocks {
	return &MutationLocks{
		locks: make(map[string]*lockEntry),
	}
}

// Lock acquires the mutex for the given cart id, creating it on first use.
// It returns the release function; callers must invoke it exactly once.
func (l *MutationLocks) Lock(cartID string) func() {
	l.mu.Lock()
	entry, ok := l.locks[cartID]
	if !ok {
		entry = &lockEntry{}
		l.locks[cartID] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, cartID)
		}
		l.mu.Unlock()
	}
}
