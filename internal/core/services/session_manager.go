package services

import (
	"context"
	"log/slog"
	"time"

	portsrepo "github.com/SscSPs/hr_dashboard/internal/core/ports/repositories"
)

// WorkspaceFactory builds the initial workspace of a new session.
type WorkspaceFactory func(sessionID string) *Workspace

// SessionManager hands out one Workspace per session id and evicts idle ones.
type SessionManager struct {
	BaseService
	store   portsrepo.SessionRepositoryFacade[*Workspace]
	factory WorkspaceFactory
	idle    time.Duration
}

// NewSessionManager creates a session manager backed by store.
func NewSessionManager(store portsrepo.SessionRepositoryFacade[*Workspace], factory WorkspaceFactory, idle time.Duration) *SessionManager {
	return &SessionManager{
		store:   store,
		factory: factory,
		idle:    idle,
	}
}

// Workspace returns the workspace of sessionID, creating it on first use.
func (m *SessionManager) Workspace(ctx context.Context, sessionID string) *Workspace {
	ws, created := m.store.FindOrCreate(ctx, sessionID, func() *Workspace {
		return m.factory(sessionID)
	})
	if created {
		m.LogInfo(ctx, "Workspace created", slog.String("session_id", sessionID))
	}
	return ws
}

// Sweep evicts sessions idle for longer than the configured timeout.
func (m *SessionManager) Sweep(ctx context.Context) int {
	removed := m.store.Sweep(ctx, m.idle)
	if removed > 0 {
		m.LogInfo(ctx, "Idle workspaces evicted",
			slog.Int("removed", removed),
			slog.Int("remaining", m.store.Count(ctx)))
	}
	return removed
}

// RunSweeper calls Sweep every interval until ctx is done.
func (m *SessionManager) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Sweep(ctx)
		}
	}
}
