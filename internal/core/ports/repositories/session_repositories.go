package repositories

import (
	"context"
	"time"
)

// SessionReader defines read operations for per-session state.
type SessionReader[T any] interface {
	// Find returns the state stored for sessionID, if any.
	Find(ctx context.Context, sessionID string) (T, bool)

	// Count returns the number of live sessions.
	Count(ctx context.Context) int
}

// SessionWriter defines write operations for per-session state.
type SessionWriter[T any] interface {
	// FindOrCreate returns the state for sessionID, building it with create
	// when absent. The boolean reports whether a new entry was created.
	FindOrCreate(ctx context.Context, sessionID string, create func() T) (T, bool)

	// Delete drops the state for sessionID.
	Delete(ctx context.Context, sessionID string)

	// Sweep drops every entry not touched for longer than idle and returns
	// how many were removed.
	Sweep(ctx context.Context, idle time.Duration) int
}

// SessionRepositoryFacade combines all session repository interfaces
type SessionRepositoryFacade[T any] interface {
	SessionReader[T]
	SessionWriter[T]
}
