package services

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/hr_dashboard/internal/apperrors"
	"github.com/SscSPs/hr_dashboard/internal/core/domain"
	"github.com/SscSPs/hr_dashboard/internal/core/ports"
	portssvc "github.com/SscSPs/hr_dashboard/internal/core/ports/services"
)

// reportService implements the ReportSvcFacade interface on top of the
// per-session record tables.
type reportService struct {
	BaseService
	sessions *SessionManager
	renderer ports.DocumentRenderer
}

// NewReportService creates a new report service.
func NewReportService(sessions *SessionManager, renderer ports.DocumentRenderer) portssvc.ReportSvcFacade {
	return &reportService{
		sessions: sessions,
		renderer: renderer,
	}
}

// Ensure reportService implements the ReportSvcFacade interface
var _ portssvc.ReportSvcFacade = (*reportService)(nil)

func (s *reportService) withTable(ctx context.Context, sessionID string, fn func(t *RecordTable) error) error {
	ws := s.sessions.Workspace(ctx, sessionID)
	return ws.Do(func(t *RecordTable, _ *NotificationDialog) error {
		return fn(t)
	})
}

// GetTable returns the sorted view of the session's table.
func (s *reportService) GetTable(ctx context.Context, sessionID string) (*domain.TableState, error) {
	var state domain.TableState
	err := s.withTable(ctx, sessionID, func(t *RecordTable) error {
		state = t.State()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// Sort changes the sort column of the session's table.
func (s *reportService) Sort(ctx context.Context, sessionID string, column domain.Column) (*domain.TableState, error) {
	var state domain.TableState
	err := s.withTable(ctx, sessionID, func(t *RecordTable) error {
		if err := t.Sort(column); err != nil {
			return err
		}
		state = t.State()
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.LogDebug(ctx, "Report sorted",
		slog.String("column", string(state.Sort.Key)),
		slog.String("direction", string(state.Sort.Direction)))
	return &state, nil
}

// BeginAdd opens the add dialog.
func (s *reportService) BeginAdd(ctx context.Context, sessionID string) (*domain.Record, error) {
	var draft domain.Record
	err := s.withTable(ctx, sessionID, func(t *RecordTable) error {
		var err error
		draft, err = t.BeginAdd()
		return err
	})
	if err != nil {
		return nil, err
	}
	s.LogDebug(ctx, "Add dialog opened", slog.Int("draft_id", draft.ID))
	return &draft, nil
}

// BeginEdit opens the edit dialog for recordID.
func (s *reportService) BeginEdit(ctx context.Context, sessionID string, recordID int) (*domain.Record, error) {
	var draft domain.Record
	err := s.withTable(ctx, sessionID, func(t *RecordTable) error {
		var err error
		draft, err = t.BeginEdit(recordID)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.LogDebug(ctx, "Edit dialog opened", slog.Int("record_id", recordID))
	return &draft, nil
}

// UpdateDraftField overwrites one field of the open draft.
func (s *reportService) UpdateDraftField(ctx context.Context, sessionID string, column domain.Column, value string) error {
	return s.withTable(ctx, sessionID, func(t *RecordTable) error {
		return t.UpdateDraftField(column, value)
	})
}

// CommitDraft saves the open draft.
func (s *reportService) CommitDraft(ctx context.Context, sessionID string) (domain.CommitOutcome, error) {
	var outcome domain.CommitOutcome
	err := s.withTable(ctx, sessionID, func(t *RecordTable) error {
		var err error
		outcome, err = t.CommitDraft()
		return err
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to commit draft")
		}
		return outcome, err
	}
	s.LogInfo(ctx, "Draft committed", slog.String("outcome", string(outcome)))
	return outcome, nil
}

// CancelDraft discards the open draft.
func (s *reportService) CancelDraft(ctx context.Context, sessionID string) error {
	return s.withTable(ctx, sessionID, func(t *RecordTable) error {
		t.CancelDraft()
		return nil
	})
}

// BeginDelete opens the delete confirmation for recordID.
func (s *reportService) BeginDelete(ctx context.Context, sessionID string, recordID int) error {
	return s.withTable(ctx, sessionID, func(t *RecordTable) error {
		return t.BeginDelete(recordID)
	})
}

// ConfirmDelete removes the record awaiting confirmation.
func (s *reportService) ConfirmDelete(ctx context.Context, sessionID string) (domain.CommitOutcome, error) {
	var outcome domain.CommitOutcome
	err := s.withTable(ctx, sessionID, func(t *RecordTable) error {
		outcome = t.ConfirmDelete()
		return nil
	})
	if err != nil {
		return outcome, err
	}
	s.LogInfo(ctx, "Delete confirmed", slog.String("outcome", string(outcome)))
	return outcome, nil
}

// CancelDelete closes the delete confirmation.
func (s *reportService) CancelDelete(ctx context.Context, sessionID string) error {
	return s.withTable(ctx, sessionID, func(t *RecordTable) error {
		t.CancelDelete()
		return nil
	})
}

// Export renders the unsorted records of the session's table. The table is
// only held while the snapshot is taken, not while the document renders.
func (s *reportService) Export(ctx context.Context, sessionID string) (*domain.ReportDocument, []byte, error) {
	var doc domain.ReportDocument
	err := s.withTable(ctx, sessionID, func(t *RecordTable) error {
		doc = t.Document()
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	data, err := s.renderer.Render(ctx, doc)
	if err != nil {
		s.LogError(ctx, err, "Failed to render report", slog.String("filename", doc.Filename))
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "Failed to render "+doc.Filename, err)
	}
	s.LogInfo(ctx, "Report exported",
		slog.String("filename", doc.Filename),
		slog.Int("row_count", len(doc.Rows)),
		slog.Int("bytes", len(data)))
	return &doc, data, nil
}
