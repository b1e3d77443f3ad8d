// internal/store/locks.go
//
// Per-session locking. A request loads a session, applies one transition and
// saves it back; holding the session's lock across that sequence keeps two
// parallel requests on the same cookie from overwriting each other.

package store

import "sync"

// Locks hands out one mutex per session ID. Entries are dropped once no
// request holds or waits on them.
type Locks struct {
	mu    sync.Mutex
	byKey map[string]*keyLock
}

type keyLock struct {
	mu   sync.Mutex
	refs int
}

// NewLocks returns an empty lock table.
func NewLocks() *Locks {
	return &Locks{byKey: make(map[string]*keyLock)}
}

// Lock blocks until id is free and returns the matching unlock func.
func (l *Locks) Lock(id string) (unlock func()) {
	l.mu.Lock()
	k, ok := l.byKey[id]
	if !ok {
		k = &keyLock{}
		l.byKey[id] = k
	}
	k.refs++
	l.mu.Unlock()

	k.mu.Lock()
	return func() {
		k.mu.Unlock()
		l.mu.Lock()
		k.refs--
		if k.refs == 0 {
			delete(l.byKey, id)
		}
		l.mu.Unlock()
	}
}

// Len is the number of IDs currently locked or waited on.
func (l *Locks) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.byKey)
}
