package services

import (
	"context"
	"fmt"
	"slices"

	"github.com/SscSPs/hr_dashboard/internal/apperrors"
	"github.com/SscSPs/hr_dashboard/internal/core/domain"
	"github.com/SscSPs/hr_dashboard/internal/core/ports"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var draftValidator = validator.New()

// IDGenerator hands out record ids for new drafts.
type IDGenerator interface {
	Next() int
}

// SequentialIDs is a strictly increasing id counter. Ids are never reused,
// even after the record that held them is deleted.
type SequentialIDs struct {
	last int
}

// NewSequentialIDs starts the counter above the largest id in records.
func NewSequentialIDs(records []domain.Record) *SequentialIDs {
	last := 0
	for _, r := range records {
		last = max(last, r.ID)
	}
	return &SequentialIDs{last: last}
}

// Next returns the next unused id.
func (g *SequentialIDs) Next() int {
	g.last++
	return g.last
}

// RecordTable owns an ordered collection of payment records together with
// its sort configuration and dialog state. It is not safe for concurrent
// use; callers serialise access (see Workspace).
type RecordTable struct {
	records  []domain.Record
	sort     domain.SortConfig
	modal    domain.Modal
	ids      IDGenerator
	collator *collate.Collator
	settings domain.ReportSettings
}

// TableOption configures a RecordTable.
type TableOption func(*RecordTable)

// WithIDGenerator overrides the default sequential id counter.
func WithIDGenerator(ids IDGenerator) TableOption {
	return func(t *RecordTable) {
		t.ids = ids
	}
}

// WithReportSettings overrides the export title and filename.
func WithReportSettings(settings domain.ReportSettings) TableOption {
	return func(t *RecordTable) {
		t.settings = settings
	}
}

// NewRecordTable creates an idle table over a private copy of records.
func NewRecordTable(records []domain.Record, opts ...TableOption) *RecordTable {
	t := &RecordTable{
		records:  slices.Clone(records),
		sort:     domain.DefaultSortConfig(),
		modal:    domain.Closed{},
		collator: collate.New(language.English),
		settings: domain.DefaultReportSettings(),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.ids == nil {
		t.ids = NewSequentialIDs(t.records)
	}
	return t
}

// Records returns the base collection in insertion order.
func (t *RecordTable) Records() []domain.Record {
	return slices.Clone(t.records)
}

// SortConfig returns the active ordering.
func (t *RecordTable) SortConfig() domain.SortConfig {
	return t.sort
}

// Modal returns the current dialog state.
func (t *RecordTable) Modal() domain.Modal {
	return t.modal
}

// State bundles the sorted view with sort and dialog state.
func (t *RecordTable) State() domain.TableState {
	return domain.TableState{
		Rows:  t.View(),
		Sort:  t.sort,
		Modal: t.modal,
	}
}

// Sort makes column the sort key and flips the direction. The direction is a
// single toggle shared by all columns: switching columns does not reset it.
func (t *RecordTable) Sort(column domain.Column) error {
	if _, err := domain.ParseColumn(string(column)); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	t.sort = domain.SortConfig{Key: column, Direction: t.sort.Direction.Flip()}
	return nil
}

// View returns a freshly ordered copy of the records. The base collection is
// never reordered.
func (t *RecordTable) View() []domain.Record {
	view := slices.Clone(t.records)
	key := t.sort.Key
	if key == domain.ColumnNone {
		return view
	}
	sign := 1
	if t.sort.Direction == domain.Descending {
		sign = -1
	}
	slices.SortStableFunc(view, func(a, b domain.Record) int {
		return sign * t.collator.CompareString(a.Field(key), b.Field(key))
	})
	return view
}

// BeginAdd opens the dialog with a blank pending draft.
func (t *RecordTable) BeginAdd() (domain.Record, error) {
	if err := t.requireIdle(); err != nil {
		return domain.Record{}, err
	}
	draft := domain.Record{ID: t.ids.Next(), Status: domain.StatusPending}
	t.modal = domain.Adding{Draft: draft}
	return draft, nil
}

// BeginEdit opens the dialog with a copy of the record identified by id.
func (t *RecordTable) BeginEdit(id int) (domain.Record, error) {
	if err := t.requireIdle(); err != nil {
		return domain.Record{}, err
	}
	idx := t.indexOf(id)
	if idx < 0 {
		return domain.Record{}, fmt.Errorf("record %d: %w", id, apperrors.ErrNotFound)
	}
	draft := t.records[idx]
	t.modal = domain.Editing{Draft: draft, TargetID: id}
	return draft, nil
}

// UpdateDraftField overwrites one field of the open draft. Without an open
// draft it does nothing.
func (t *RecordTable) UpdateDraftField(column domain.Column, value string) error {
	switch m := t.modal.(type) {
	case domain.Adding:
		draft, err := m.Draft.WithField(column, value)
		if err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		t.modal = domain.Adding{Draft: draft}
	case domain.Editing:
		draft, err := m.Draft.WithField(column, value)
		if err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		t.modal = domain.Editing{Draft: draft, TargetID: m.TargetID}
	}
	return nil
}

// CommitDraft saves the open draft. Fields are free text and may be empty;
// only the status must be one of the known values, and a draft with any
// other status stays open. An edit whose target has disappeared closes the dialog
// without touching the collection and reports OutcomeNotFound.
func (t *RecordTable) CommitDraft() (domain.CommitOutcome, error) {
	draft, ok := domain.DraftOf(t.modal)
	if !ok {
		return domain.OutcomeNoop, nil
	}
	if err := draftValidator.Struct(draft); err != nil {
		return domain.OutcomeValidationFailed, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	switch m := t.modal.(type) {
	case domain.Adding:
		t.records = append(t.records, m.Draft)
	case domain.Editing:
		t.modal = domain.Closed{}
		idx := t.indexOf(m.TargetID)
		if idx < 0 {
			return domain.OutcomeNotFound, nil
		}
		t.records[idx] = m.Draft
	}
	t.modal = domain.Closed{}
	return domain.OutcomeOK, nil
}

// CancelDraft discards the open draft.
func (t *RecordTable) CancelDraft() {
	if _, ok := domain.DraftOf(t.modal); ok {
		t.modal = domain.Closed{}
	}
}

// BeginDelete asks for confirmation before removing the record identified by id.
func (t *RecordTable) BeginDelete(id int) error {
	if err := t.requireIdle(); err != nil {
		return err
	}
	idx := t.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("record %d: %w", id, apperrors.ErrNotFound)
	}
	t.modal = domain.ConfirmingDelete{TargetID: id, Name: t.records[idx].Name}
	return nil
}

// ConfirmDelete removes the record awaiting confirmation. With nothing
// awaiting confirmation it does nothing.
func (t *RecordTable) ConfirmDelete() domain.CommitOutcome {
	m, ok := t.modal.(domain.ConfirmingDelete)
	if !ok {
		return domain.OutcomeNoop
	}
	t.modal = domain.Closed{}
	before := len(t.records)
	t.records = slices.DeleteFunc(t.records, func(r domain.Record) bool {
		return r.ID == m.TargetID
	})
	if len(t.records) == before {
		return domain.OutcomeNotFound
	}
	return domain.OutcomeOK
}

// CancelDelete closes the confirmation dialog.
func (t *RecordTable) CancelDelete() {
	if _, ok := t.modal.(domain.ConfirmingDelete); ok {
		t.modal = domain.Closed{}
	}
}

// Document lays out the unsorted base collection for export.
func (t *RecordTable) Document() domain.ReportDocument {
	return domain.NewReportDocument(t.settings, t.records)
}

// Export renders the unsorted base collection with renderer.
func (t *RecordTable) Export(ctx context.Context, renderer ports.DocumentRenderer) (domain.ReportDocument, []byte, error) {
	doc := t.Document()
	data, err := renderer.Render(ctx, doc)
	if err != nil {
		return doc, nil, fmt.Errorf("failed to render %s: %w", doc.Filename, err)
	}
	return doc, data, nil
}

func (t *RecordTable) requireIdle() error {
	if t.modal.Kind() != domain.ModalClosed {
		return fmt.Errorf("%w: %s", apperrors.ErrModalOpen, t.modal.Kind())
	}
	return nil
}

func (t *RecordTable) indexOf(id int) int {
	return slices.IndexFunc(t.records, func(r domain.Record) bool {
		return r.ID == id
	})
}
