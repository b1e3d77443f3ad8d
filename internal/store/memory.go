// internal/store/memory.go
//
// In-memory session store.
// Sessions are ephemeral by design: they live for the lifetime of the browser
// session cookie and are lost when the process restarts.
//
// Characteristics:
//   - Stores game.Session values keyed by session ID.
//   - Values are copied in and out, so callers never share state.
//   - Concurrency-safe via RWMutex.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/wordplay/internal/game"
)

// ErrNotFound is returned by Get for unknown session IDs.
var ErrNotFound = errors.New("session not found")

// Store defines the persistence interface for player sessions.
type Store interface {
	// Save persists or replaces the session stored under id.
	Save(ctx context.Context, id string, s game.Session) error

	// Get retrieves the session stored under id, or ErrNotFound.
	Get(ctx context.Context, id string) (game.Session, error)

	// Delete forgets id. Deleting a missing id is not an error.
	Delete(ctx context.Context, id string) error
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex
	sessions map[string]game.Session
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]game.Session)}
}

func (m *memory) Save(ctx context.Context, id string, s game.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = s
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (game.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return game.Session{}, ErrNotFound
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}
