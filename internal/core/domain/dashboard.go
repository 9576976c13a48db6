package domain

import "github.com/shopspring/decimal"

// PaymentPendingRoute is the detail page the notification dialog links to.
const PaymentPendingRoute = "/reports/payment-pending"

// NotificationItem is a pending payment shown in the dashboard dialog.
// The list is owned by the host; the dialog only reads it.
type NotificationItem struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Amount  string `json:"amount"`
	Date    string `json:"date"`
	Company string `json:"company"`
}

// AttendanceSummary holds the precomputed attendance figures of the dashboard.
type AttendanceSummary struct {
	TotalEmployees    int
	PresentEmployees  int
	AbsentEmployees   int
	LateEmployees     int
	PresentPercentage decimal.Decimal
	AbsentPercentage  decimal.Decimal
	LatePercentage    decimal.Decimal
	MonthlyLabels     []string
	MonthlyAttendance []int
	DailyLabels       []string
	DailyAttendance   []int
}

// SummaryCard is one tile of the dashboard.
type SummaryCard struct {
	Label string
	Value string
	Icon  string
	Color string
}

// ChartDataset is one series handed to the charting library.
type ChartDataset struct {
	Label           string `json:"label"`
	Data            []int  `json:"data"`
	BackgroundColor string `json:"backgroundColor"`
	BorderColor     string `json:"borderColor"`
	BorderWidth     int    `json:"borderWidth"`
}

// ChartSpec describes one chart panel.
type ChartSpec struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	Kind     string         `json:"kind"`
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

// Dashboard is everything the summary page renders.
type Dashboard struct {
	Company       string
	Cards         []SummaryCard
	RateCards     []SummaryCard
	Charts        []ChartSpec
	Notifications []NotificationItem
	DialogOpen    bool
}
