package services

import (
	"context"

	"github.com/SscSPs/hr_dashboard/internal/core/domain"
)

// DashboardReaderSvc defines read operations for the attendance summary
type DashboardReaderSvc interface {
	// GetDashboard returns the summary for the session without touching the dialog.
	GetDashboard(ctx context.Context, sessionID string) (*domain.Dashboard, error)

	// MountDashboard is called when the summary page is (re)loaded and lets the
	// pending dialog open again if there is anything to show.
	MountDashboard(ctx context.Context, sessionID string) (*domain.Dashboard, error)
}

// NotificationSvc defines the pending payments dialog actions
type NotificationSvc interface {
	DismissDialog(ctx context.Context, sessionID string) error
	DismissNotification(ctx context.Context, sessionID string, notificationID int) error
	NavigateToDetail(ctx context.Context, sessionID string) (string, error)
}

// DashboardSvcFacade combines all dashboard-related service interfaces
type DashboardSvcFacade interface {
	DashboardReaderSvc
	NotificationSvc
}
