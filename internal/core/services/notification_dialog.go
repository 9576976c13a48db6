package services

import (
	"slices"

	"github.com/SscSPs/hr_dashboard/internal/core/domain"
)

// DismissFunc asks the owner of the pending list to drop one item.
type DismissFunc func(notificationID int)

// NotificationDialog is the pending payments popup of the dashboard. It reads
// a list owned by its host and opens itself when that list goes from empty to
// non-empty; after that, open state belongs to the user.
type NotificationDialog struct {
	items    []domain.NotificationItem
	hadItems bool
	open     bool
	dismiss  DismissFunc
}

// NewNotificationDialog creates a closed dialog that reports dismissals to dismiss.
func NewNotificationDialog(dismiss DismissFunc) *NotificationDialog {
	return &NotificationDialog{dismiss: dismiss}
}

// Mount resets the dialog as if the page had just been rendered and applies items.
// It returns whether the dialog opened.
func (d *NotificationDialog) Mount(items []domain.NotificationItem) bool {
	d.open = false
	d.hadItems = false
	return d.Update(items)
}

// Update hands the dialog the host's current list. The dialog opens only on
// the empty to non-empty edge, so handing it the same non-empty contents
// again never reopens a dialog the user closed. It returns whether the dialog opened.
func (d *NotificationDialog) Update(items []domain.NotificationItem) bool {
	d.items = items
	nonEmpty := len(items) > 0
	opened := nonEmpty && !d.hadItems
	if opened {
		d.open = true
	}
	d.hadItems = nonEmpty
	return opened
}

// Open reports whether the dialog is showing.
func (d *NotificationDialog) Open() bool {
	return d.open
}

// Items returns the list last handed to the dialog.
func (d *NotificationDialog) Items() []domain.NotificationItem {
	return slices.Clone(d.items)
}

// Dismiss closes the dialog. The list is left alone.
func (d *NotificationDialog) Dismiss() {
	d.open = false
}

// DismissNotification forwards a dismissal to the host. The dialog keeps no
// copy of its own to remove the item from.
func (d *NotificationDialog) DismissNotification(id int) {
	if d.dismiss != nil {
		d.dismiss(id)
	}
}

// NavigateToDetail returns the route of the pending payments report.
func (d *NotificationDialog) NavigateToDetail() string {
	return domain.PaymentPendingRoute
}
