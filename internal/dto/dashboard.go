package dto

import (
	"github.com/SscSPs/hr_dashboard/internal/core/domain"
)

// SummaryCardResponse is one dashboard tile.
type SummaryCardResponse struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Icon  string `json:"icon,omitempty"`
	Color string `json:"color"`
}

// NotificationResponse is a pending payment shown in the dialog.
type NotificationResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Amount  string `json:"amount"`
	Date    string `json:"date"`
	Company string `json:"company"`
}

// NotificationDialogResponse is the state of the pending payments dialog.
type NotificationDialogResponse struct {
	Open  bool                   `json:"open"`
	Items []NotificationResponse `json:"items"`
}

// DashboardResponse is the summary page payload.
type DashboardResponse struct {
	Company   string                     `json:"company"`
	Cards     []SummaryCardResponse      `json:"cards"`
	RateCards []SummaryCardResponse      `json:"rateCards"`
	Charts    []domain.ChartSpec         `json:"charts"`
	Dialog    NotificationDialogResponse `json:"dialog"`
}

// NavigateResponse carries the route the client should load next.
type NavigateResponse struct {
	Route string `json:"route"`
}

func toSummaryCardResponses(cards []domain.SummaryCard) []SummaryCardResponse {
	res := make([]SummaryCardResponse, len(cards))
	for i, c := range cards {
		res[i] = SummaryCardResponse{Label: c.Label, Value: c.Value, Icon: c.Icon, Color: c.Color}
	}
	return res
}

// ToNotificationResponses converts the pending list.
func ToNotificationResponses(items []domain.NotificationItem) []NotificationResponse {
	res := make([]NotificationResponse, len(items))
	for i, n := range items {
		res[i] = NotificationResponse(n)
	}
	return res
}

// ToDashboardResponse converts a domain.Dashboard to DashboardResponse DTO
func ToDashboardResponse(board *domain.Dashboard) DashboardResponse {
	return DashboardResponse{
		Company:   board.Company,
		Cards:     toSummaryCardResponses(board.Cards),
		RateCards: toSummaryCardResponses(board.RateCards),
		Charts:    board.Charts,
		Dialog: NotificationDialogResponse{
			Open:  board.DialogOpen,
			Items: ToNotificationResponses(board.Notifications),
		},
	}
}
