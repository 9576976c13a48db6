package services

import (
	"github.com/SscSPs/hr_dashboard/internal/core/domain"
	"github.com/SscSPs/hr_dashboard/internal/core/ports"
	portsrepo "github.com/SscSPs/hr_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hr_dashboard/internal/core/ports/services"
	"github.com/SscSPs/hr_dashboard/internal/platform/config"
	"github.com/SscSPs/hr_dashboard/internal/seed"
)

// NewSeededWorkspaceFactory builds every new session from the mock records;
// the pending dialog starts with the records still awaiting payment.
func NewSeededWorkspaceFactory(settings domain.ReportSettings) WorkspaceFactory {
	return func(sessionID string) *Workspace {
		records := seed.PaymentRecords()
		table := NewRecordTable(records, WithReportSettings(settings))
		return NewWorkspace(sessionID, table, PendingFromRecords(records))
	}
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(
	cfg *config.Config,
	store portsrepo.SessionRepositoryFacade[*Workspace],
	renderer ports.DocumentRenderer,
) (*portssvc.ServiceContainer, *SessionManager) {
	settings := domain.ReportSettings{Title: cfg.ReportTitle, Filename: cfg.ReportFilename}
	sessions := NewSessionManager(store, NewSeededWorkspaceFactory(settings), cfg.SessionIdleTimeout)

	container := &portssvc.ServiceContainer{
		Report:    NewReportService(sessions, renderer),
		Dashboard: NewDashboardService(sessions, cfg.CompanyName, seed.Attendance()),
	}
	return container, sessions
}
