// internal/store/memory.go
//
// In-memory store of solver sessions for the HTTP API.
//
// Characteristics:
//   - Sessions keyed by random UUID.
//   - Map guarded by RWMutex (concurrent lookups allowed, writes exclusive).
//   - Each entry has its own mutex; solver.Session is not safe for concurrent
//     use, so all access goes through Entry.Do.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

// ErrNotFound is returned for unknown session IDs.
var ErrNotFound = errors.New("session not found")

// Store defines the persistence interface for solver sessions.
type Store interface {
	// Create registers s under a fresh ID.
	Create(ctx context.Context, s *solver.Session) (*Entry, error)

	// Get retrieves a session by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*Entry, error)

	// Delete removes a session, or returns ErrNotFound.
	Delete(ctx context.Context, id string) error
}

// Entry is one stored session.
type Entry struct {
	ID      string
	Created time.Time

	mu      sync.Mutex
	session *solver.Session
}

// Do runs fn with exclusive access to the session.
func (e *Entry) Do(fn func(s *solver.Session) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.session)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex
	sessions map[string]*Entry
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*Entry)}
}

func (m *memory) Create(ctx context.Context, s *solver.Session) (*Entry, error) {
	e := &Entry{
		ID:      uuid.NewString(),
		Created: time.Now().UTC(),
		session: s,
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[e.ID] = e
	return e, nil
}

func (m *memory) Get(ctx context.Context, id string) (*Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.sessions[id]; ok {
		return e, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(m.sessions, id)
	return nil
}
