package services_test

import (
	"testing"

	"github.com/SscSPs/hr_dashboard/internal/core/domain"
	"github.com/SscSPs/hr_dashboard/internal/core/services"
	"github.com/SscSPs/hr_dashboard/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingItems() []domain.NotificationItem {
	return []domain.NotificationItem{
		{ID: 1, Name: "Arun Kumar", Amount: "₹10,000", Date: "2024-02-01", Company: "Chennai ABC Pvt Ltd"},
		{ID: 4, Name: "Vignesh", Amount: "₹20,000", Date: "2024-02-04", Company: "Trichy DEF Solutions"},
	}
}

func TestNotificationDialog_MountOpensWhenItemsPresent(t *testing.T) {
	d := services.NewNotificationDialog(nil)
	assert.True(t, d.Mount(pendingItems()))
	assert.True(t, d.Open())
	assert.Len(t, d.Items(), 2)
}

func TestNotificationDialog_MountStaysClosedWhenEmpty(t *testing.T) {
	d := services.NewNotificationDialog(nil)
	assert.False(t, d.Mount(nil))
	assert.False(t, d.Open())
}

func TestNotificationDialog_OpensOnEmptyToNonEmptyEdge(t *testing.T) {
	d := services.NewNotificationDialog(nil)
	d.Mount(nil)

	assert.True(t, d.Update(pendingItems()))
	assert.True(t, d.Open())

	d.Dismiss()
	assert.False(t, d.Update(pendingItems()), "same contents again must not reopen")
	assert.False(t, d.Open())

	assert.False(t, d.Update(pendingItems()[:1]), "shrinking is not an edge")
	assert.False(t, d.Open())

	d.Update(nil)
	assert.True(t, d.Update(pendingItems()), "emptying and refilling reopens")
	assert.True(t, d.Open())
}

func TestNotificationDialog_EmptyingDoesNotClose(t *testing.T) {
	d := services.NewNotificationDialog(nil)
	d.Mount(pendingItems())

	d.Update(nil)

	assert.True(t, d.Open())
	assert.Empty(t, d.Items())
}

func TestNotificationDialog_MountReopensAfterDismiss(t *testing.T) {
	d := services.NewNotificationDialog(nil)
	d.Mount(pendingItems())
	d.Dismiss()

	assert.True(t, d.Mount(d.Items()))
	assert.True(t, d.Open())
}

func TestNotificationDialog_DismissKeepsItems(t *testing.T) {
	d := services.NewNotificationDialog(nil)
	d.Mount(pendingItems())

	d.Dismiss()

	assert.False(t, d.Open())
	assert.Equal(t, pendingItems(), d.Items())
}

func TestNotificationDialog_DismissNotificationDelegatesToHost(t *testing.T) {
	var got []int
	d := services.NewNotificationDialog(func(id int) { got = append(got, id) })
	d.Mount(pendingItems())

	d.DismissNotification(4)

	assert.Equal(t, []int{4}, got)
	assert.Len(t, d.Items(), 2, "the dialog never edits the host's list itself")
}

func TestNotificationDialog_DismissNotificationWithoutHost(t *testing.T) {
	d := services.NewNotificationDialog(nil)
	d.Mount(pendingItems())
	assert.NotPanics(t, func() { d.DismissNotification(1) })
}

func TestNotificationDialog_NavigateToDetail(t *testing.T) {
	d := services.NewNotificationDialog(nil)
	assert.Equal(t, "/reports/payment-pending", d.NavigateToDetail())
}

func TestWorkspace_DismissNotificationRemovesFromPending(t *testing.T) {
	records := seed.PaymentRecords()
	ws := services.NewWorkspace("s1", services.NewRecordTable(records), services.PendingFromRecords(records))
	assert.Equal(t, "s1", ws.ID())

	err := ws.Do(func(_ *services.RecordTable, dialog *services.NotificationDialog) error {
		require.True(t, dialog.Open())
		require.Len(t, dialog.Items(), 4)

		dialog.DismissNotification(6)

		assert.Len(t, dialog.Items(), 3)
		for _, item := range dialog.Items() {
			assert.NotEqual(t, 6, item.ID)
		}
		assert.True(t, dialog.Open())
		return nil
	})
	require.NoError(t, err)
}

func TestWorkspace_DismissingEverythingThenMountStaysClosed(t *testing.T) {
	records := seed.PaymentRecords()
	ws := services.NewWorkspace("s1", services.NewRecordTable(records), services.PendingFromRecords(records))

	err := ws.Do(func(_ *services.RecordTable, dialog *services.NotificationDialog) error {
		for _, item := range dialog.Items() {
			dialog.DismissNotification(item.ID)
		}
		assert.Empty(t, dialog.Items())
		assert.False(t, dialog.Mount(dialog.Items()))
		assert.False(t, dialog.Open())
		return nil
	})
	require.NoError(t, err)
}

func TestWorkspace_DoReturnsCallbackError(t *testing.T) {
	ws := services.NewWorkspace("s1", services.NewRecordTable(nil), nil)
	err := ws.Do(func(*services.RecordTable, *services.NotificationDialog) error {
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestPendingFromRecords(t *testing.T) {
	items := services.PendingFromRecords(seed.PaymentRecords())

	ids := make([]int, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	assert.Equal(t, []int{1, 4, 6, 9}, ids)
	assert.Equal(t, domain.NotificationItem{
		ID: 1, Name: "Arun Kumar", Amount: "₹10,000", Date: "2024-02-01", Company: "Chennai ABC Pvt Ltd",
	}, items[0])

	assert.Empty(t, services.PendingFromRecords(nil))
}
