package services

import (
	"slices"
	"sync"

	"github.com/SscSPs/hr_dashboard/internal/core/domain"
)

// Workspace is the state of one browser session: the payment report table,
// the dashboard dialog and the pending list the dialog reads. All access goes
// through Do, which serialises concurrent requests of the same session.
type Workspace struct {
	mu      sync.Mutex
	id      string
	table   *RecordTable
	dialog  *NotificationDialog
	pending []domain.NotificationItem
}

// NewWorkspace builds a workspace and mounts the dialog on the pending list.
func NewWorkspace(id string, table *RecordTable, pending []domain.NotificationItem) *Workspace {
	w := &Workspace{
		id:      id,
		table:   table,
		pending: slices.Clone(pending),
	}
	w.dialog = NewNotificationDialog(w.removePending)
	w.dialog.Mount(w.pending)
	return w
}

// ID returns the session id the workspace belongs to.
func (w *Workspace) ID() string {
	return w.id
}

// Do runs fn with exclusive access to the workspace.
func (w *Workspace) Do(fn func(table *RecordTable, dialog *NotificationDialog) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return fn(w.table, w.dialog)
}

// removePending is the host side of a dismissal: it owns the list, so it
// drops the item and hands the dialog the new list.
func (w *Workspace) removePending(id int) {
	w.pending = slices.DeleteFunc(slices.Clone(w.pending), func(n domain.NotificationItem) bool {
		return n.ID == id
	})
	w.dialog.Update(w.pending)
}

// PendingFromRecords lists the records still awaiting payment as notifications.
func PendingFromRecords(records []domain.Record) []domain.NotificationItem {
	var items []domain.NotificationItem
	for _, r := range records {
		if r.Status != domain.StatusPending {
			continue
		}
		items = append(items, domain.NotificationItem{
			ID:      r.ID,
			Name:    r.Name,
			Amount:  r.Amount,
			Date:    r.Date,
			Company: r.Company,
		})
	}
	return items
}
