package domain

import "fmt"

// Status is the payment state of a report row.
type Status string

const (
	StatusPending Status = "Pending"
	StatusProcess Status = "Process"
	StatusPaid    Status = "Paid"
)

// Statuses lists the selectable payment states in display order.
var Statuses = []Status{StatusPending, StatusProcess, StatusPaid}

// Tone maps a status to the colour family used when rendering it.
// Anything that is neither pending nor in process renders as settled.
func (s Status) Tone() string {
	switch s {
	case StatusPending:
		return "danger"
	case StatusProcess:
		return "warning"
	default:
		return "success"
	}
}

// Column identifies a sortable, editable field of a Record.
type Column string

const (
	ColumnNone    Column = ""
	ColumnName    Column = "name"
	ColumnCompany Column = "company"
	ColumnAmount  Column = "amount"
	ColumnStatus  Column = "status"
	ColumnDetails Column = "details"
	ColumnDate    Column = "date"
)

// Columns lists the report columns in display order.
var Columns = []Column{ColumnName, ColumnCompany, ColumnAmount, ColumnStatus, ColumnDetails, ColumnDate}

var columnLabels = map[Column]string{
	ColumnName:    "Name",
	ColumnCompany: "Company",
	ColumnAmount:  "Amount",
	ColumnStatus:  "Status",
	ColumnDetails: "Details",
	ColumnDate:    "Date",
}

// ParseColumn validates a raw column key.
func ParseColumn(raw string) (Column, error) {
	c := Column(raw)
	if _, ok := columnLabels[c]; !ok {
		return ColumnNone, fmt.Errorf("unknown column %q", raw)
	}
	return c, nil
}

// Label returns the human readable header for the column.
func (c Column) Label() string {
	return columnLabels[c]
}

// Record is one row of the payment details report.
// Amount is display text only and is never parsed.
type Record struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Company string `json:"company"`
	Amount  string `json:"amount"`
	Status  Status `json:"status" validate:"oneof=Pending Process Paid"`
	Details string `json:"details"`
	Date    string `json:"date"`
}

// Field returns the value of the given column.
func (r Record) Field(c Column) string {
	switch c {
	case ColumnName:
		return r.Name
	case ColumnCompany:
		return r.Company
	case ColumnAmount:
		return r.Amount
	case ColumnStatus:
		return string(r.Status)
	case ColumnDetails:
		return r.Details
	case ColumnDate:
		return r.Date
	}
	return ""
}

// WithField returns a copy of the record with one column overwritten.
func (r Record) WithField(c Column, value string) (Record, error) {
	switch c {
	case ColumnName:
		r.Name = value
	case ColumnCompany:
		r.Company = value
	case ColumnAmount:
		r.Amount = value
	case ColumnStatus:
		r.Status = Status(value)
	case ColumnDetails:
		r.Details = value
	case ColumnDate:
		r.Date = value
	default:
		return r, fmt.Errorf("unknown column %q", c)
	}
	return r, nil
}

// Row renders the record in report column order.
func (r Record) Row() []string {
	row := make([]string, len(Columns))
	for i, c := range Columns {
		row[i] = r.Field(c)
	}
	return row
}

// Direction is the sort order of the report view.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// SortConfig is the active ordering of the report view.
type SortConfig struct {
	Key       Column    `json:"key"`
	Direction Direction `json:"direction"`
}

// DefaultSortConfig is the unsorted initial state.
func DefaultSortConfig() SortConfig {
	return SortConfig{Key: ColumnNone, Direction: Ascending}
}

// CommitOutcome reports what a confirming table action actually did.
type CommitOutcome string

const (
	OutcomeOK               CommitOutcome = "ok"
	OutcomeNotFound         CommitOutcome = "not_found"
	OutcomeValidationFailed CommitOutcome = "validation_failed"
	OutcomeNoop             CommitOutcome = "noop"
)

// TableState is a read-only snapshot of a report table for rendering.
type TableState struct {
	Rows  []Record
	Sort  SortConfig
	Modal Modal
}
