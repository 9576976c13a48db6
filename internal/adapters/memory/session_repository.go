package memory

import (
	"context"
	"sync"
	"time"

	portsrepo "github.com/SscSPs/hr_dashboard/internal/core/ports/repositories"
)

type sessionEntry[T any] struct {
	value    T
	lastSeen time.Time
}

// SessionRepository keeps per-session state in process memory.
type SessionRepository[T any] struct {
	mu      sync.RWMutex
	entries map[string]*sessionEntry[T]
	now     func() time.Time
}

// NewSessionRepository creates an empty in-memory session repository.
func NewSessionRepository[T any]() *SessionRepository[T] {
	return &SessionRepository[T]{
		entries: make(map[string]*sessionEntry[T]),
		now:     time.Now,
	}
}

// Ensure SessionRepository implements the SessionRepositoryFacade interface
var _ portsrepo.SessionRepositoryFacade[int] = (*SessionRepository[int])(nil)

// Find returns the state stored for sessionID and marks it as used.
func (r *SessionRepository[T]) Find(_ context.Context, sessionID string) (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[sessionID]
	if !ok {
		var zero T
		return zero, false
	}
	e.lastSeen = r.now()
	return e.value, true
}

// FindOrCreate returns the state for sessionID, building it when absent.
func (r *SessionRepository[T]) FindOrCreate(_ context.Context, sessionID string, create func() T) (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[sessionID]; ok {
		e.lastSeen = r.now()
		return e.value, false
	}
	e := &sessionEntry[T]{value: create(), lastSeen: r.now()}
	r.entries[sessionID] = e
	return e.value, true
}

// Delete drops the state for sessionID.
func (r *SessionRepository[T]) Delete(_ context.Context, sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, sessionID)
}

// Count returns the number of live sessions.
func (r *SessionRepository[T]) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Sweep drops entries idle for longer than idle.
func (r *SessionRepository[T]) Sweep(_ context.Context, idle time.Duration) int {
	cutoff := r.now().Add(-idle)
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, e := range r.entries {
		if e.lastSeen.Before(cutoff) {
			delete(r.entries, id)
			removed++
		}
	}
	return removed
}
