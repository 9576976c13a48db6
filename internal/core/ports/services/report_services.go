package services

import (
	"context"

	"github.com/SscSPs/hr_dashboard/internal/core/domain"
)

// ReportReaderSvc defines read operations for the payment details report
type ReportReaderSvc interface {
	// GetTable returns the sorted view and dialog state of the session's table.
	GetTable(ctx context.Context, sessionID string) (*domain.TableState, error)

	// Export renders the unsorted records of the session's table.
	Export(ctx context.Context, sessionID string) (*domain.ReportDocument, []byte, error)
}

// ReportSorterSvc defines the view ordering operation
type ReportSorterSvc interface {
	// Sort selects the sort column and flips the shared direction toggle.
	Sort(ctx context.Context, sessionID string, column domain.Column) (*domain.TableState, error)
}

// ReportDraftSvc defines the add/edit dialog workflow
type ReportDraftSvc interface {
	BeginAdd(ctx context.Context, sessionID string) (*domain.Record, error)
	BeginEdit(ctx context.Context, sessionID string, recordID int) (*domain.Record, error)
	UpdateDraftField(ctx context.Context, sessionID string, column domain.Column, value string) error
	CommitDraft(ctx context.Context, sessionID string) (domain.CommitOutcome, error)
	CancelDraft(ctx context.Context, sessionID string) error
}

// ReportDeleteSvc defines the delete confirmation workflow
type ReportDeleteSvc interface {
	BeginDelete(ctx context.Context, sessionID string, recordID int) error
	ConfirmDelete(ctx context.Context, sessionID string) (domain.CommitOutcome, error)
	CancelDelete(ctx context.Context, sessionID string) error
}

// ReportSvcFacade combines all report-related service interfaces
type ReportSvcFacade interface {
	ReportReaderSvc
	ReportSorterSvc
	ReportDraftSvc
	ReportDeleteSvc
}
