package dto

import (
	"github.com/SscSPs/hr_dashboard/internal/core/domain"
)

// SortRequest selects the column to sort the payment report by.
type SortRequest struct {
	Column string `json:"column" binding:"required,oneof=name company amount status details date"`
}

// UpdateDraftFieldRequest overwrites one field of the open draft.
// Value may be empty; the draft accepts blank fields.
type UpdateDraftFieldRequest struct {
	Field string `json:"field" binding:"required,oneof=name company amount status details date"`
	Value string `json:"value"`
}

// RecordResponse is one payment report row.
type RecordResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Company string `json:"company"`
	Amount  string `json:"amount"`
	Status  string `json:"status"`
	Tone    string `json:"tone"` // danger, warning or success
	Details string `json:"details"`
	Date    string `json:"date"`
}

// SortResponse is the active ordering; Key is empty while unsorted.
type SortResponse struct {
	Key       string `json:"key"`
	Direction string `json:"direction"`
}

// ModalResponse describes the open dialog of the report page.
type ModalResponse struct {
	Kind     string          `json:"kind"`
	Title    string          `json:"title,omitempty"`
	Draft    *RecordResponse `json:"draft,omitempty"`
	TargetID *int            `json:"targetID,omitempty"`
	Name     string          `json:"name,omitempty"` // record awaiting delete confirmation
}

// ReportResponse is the sorted payment report with its dialog state.
type ReportResponse struct {
	Rows    []RecordResponse `json:"rows"`
	Columns []ColumnResponse `json:"columns"`
	Sort    SortResponse     `json:"sort"`
	Modal   ModalResponse    `json:"modal"`
}

// ColumnResponse is a sortable report column.
type ColumnResponse struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// CommitResponse reports what a confirming action did.
type CommitResponse struct {
	Outcome domain.CommitOutcome `json:"outcome"`
}

// ToRecordResponse converts a domain.Record to RecordResponse DTO
func ToRecordResponse(r domain.Record) RecordResponse {
	return RecordResponse{
		ID:      r.ID,
		Name:    r.Name,
		Company: r.Company,
		Amount:  r.Amount,
		Status:  string(r.Status),
		Tone:    r.Status.Tone(),
		Details: r.Details,
		Date:    r.Date,
	}
}

// ToListRecordResponse converts a slice of domain.Record to RecordResponse DTOs
func ToListRecordResponse(records []domain.Record) []RecordResponse {
	res := make([]RecordResponse, len(records))
	for i, r := range records {
		res[i] = ToRecordResponse(r)
	}
	return res
}

// ToModalResponse converts the dialog state of a table.
func ToModalResponse(m domain.Modal) ModalResponse {
	if m == nil {
		return ModalResponse{Kind: string(domain.ModalClosed)}
	}
	res := ModalResponse{Kind: string(m.Kind()), Title: domain.ModalTitle(m)}
	switch v := m.(type) {
	case domain.Adding:
		draft := ToRecordResponse(v.Draft)
		res.Draft = &draft
	case domain.Editing:
		draft := ToRecordResponse(v.Draft)
		target := v.TargetID
		res.Draft = &draft
		res.TargetID = &target
	case domain.ConfirmingDelete:
		target := v.TargetID
		res.TargetID = &target
		res.Name = v.Name
	}
	return res
}

// ToReportResponse converts a table snapshot to ReportResponse DTO
func ToReportResponse(state *domain.TableState) ReportResponse {
	columns := make([]ColumnResponse, len(domain.Columns))
	for i, c := range domain.Columns {
		columns[i] = ColumnResponse{Key: string(c), Label: c.Label()}
	}
	return ReportResponse{
		Rows:    ToListRecordResponse(state.Rows),
		Columns: columns,
		Sort: SortResponse{
			Key:       string(state.Sort.Key),
			Direction: string(state.Sort.Direction),
		},
		Modal: ToModalResponse(state.Modal),
	}
}
