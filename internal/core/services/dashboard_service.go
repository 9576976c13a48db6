package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/SscSPs/hr_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/hr_dashboard/internal/core/ports/services"
	"github.com/SscSPs/hr_dashboard/internal/utils"
)

// dashboardService implements the DashboardSvcFacade interface
type dashboardService struct {
	BaseService
	sessions *SessionManager
	company  string
	summary  domain.AttendanceSummary
}

// NewDashboardService creates a new dashboard service over fixed attendance figures.
func NewDashboardService(sessions *SessionManager, company string, summary domain.AttendanceSummary) portssvc.DashboardSvcFacade {
	return &dashboardService{
		sessions: sessions,
		company:  company,
		summary:  summary,
	}
}

// Ensure dashboardService implements the DashboardSvcFacade interface
var _ portssvc.DashboardSvcFacade = (*dashboardService)(nil)

// GetDashboard returns the summary and the dialog as it currently stands.
func (s *dashboardService) GetDashboard(ctx context.Context, sessionID string) (*domain.Dashboard, error) {
	return s.dashboard(ctx, sessionID, false)
}

// MountDashboard returns the summary after remounting the dialog.
func (s *dashboardService) MountDashboard(ctx context.Context, sessionID string) (*domain.Dashboard, error) {
	return s.dashboard(ctx, sessionID, true)
}

func (s *dashboardService) dashboard(ctx context.Context, sessionID string, mount bool) (*domain.Dashboard, error) {
	board := &domain.Dashboard{
		Company:   s.company,
		Cards:     SummaryCards(s.summary),
		RateCards: RateCards(s.summary),
		Charts:    AttendanceCharts(s.summary),
	}
	ws := s.sessions.Workspace(ctx, sessionID)
	err := ws.Do(func(_ *RecordTable, dialog *NotificationDialog) error {
		if mount && dialog.Mount(dialog.Items()) {
			s.LogDebug(ctx, "Pending payments dialog opened", slog.Int("count", len(dialog.Items())))
		}
		board.Notifications = dialog.Items()
		board.DialogOpen = dialog.Open()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return board, nil
}

// DismissDialog closes the pending payments dialog.
func (s *dashboardService) DismissDialog(ctx context.Context, sessionID string) error {
	ws := s.sessions.Workspace(ctx, sessionID)
	return ws.Do(func(_ *RecordTable, dialog *NotificationDialog) error {
		dialog.Dismiss()
		return nil
	})
}

// DismissNotification asks the session host to drop one pending payment.
// Unknown ids leave the list as it is.
func (s *dashboardService) DismissNotification(ctx context.Context, sessionID string, notificationID int) error {
	var removed bool
	ws := s.sessions.Workspace(ctx, sessionID)
	err := ws.Do(func(_ *RecordTable, dialog *NotificationDialog) error {
		before := len(dialog.Items())
		dialog.DismissNotification(notificationID)
		removed = len(dialog.Items()) < before
		return nil
	})
	if err != nil {
		return err
	}
	if removed {
		s.LogInfo(ctx, "Pending payment dismissed", slog.Int("notification_id", notificationID))
	} else {
		s.LogDebug(ctx, "No pending payment to dismiss", slog.Int("notification_id", notificationID))
	}
	return nil
}

// NavigateToDetail returns the pending payments report route.
func (s *dashboardService) NavigateToDetail(ctx context.Context, sessionID string) (string, error) {
	var route string
	ws := s.sessions.Workspace(ctx, sessionID)
	err := ws.Do(func(_ *RecordTable, dialog *NotificationDialog) error {
		route = dialog.NavigateToDetail()
		return nil
	})
	return route, err
}

// SummaryCards builds the headcount tiles.
func SummaryCards(sum domain.AttendanceSummary) []domain.SummaryCard {
	return []domain.SummaryCard{
		{Label: "Total Employees", Value: strconv.Itoa(sum.TotalEmployees), Icon: "users", Color: "indigo"},
		{Label: "Present Employees", Value: strconv.Itoa(sum.PresentEmployees), Icon: "check-circle", Color: "teal"},
		{Label: "Absent Employees", Value: strconv.Itoa(sum.AbsentEmployees), Icon: "times-circle", Color: "rose"},
	}
}

// RateCards builds the percentage tiles.
func RateCards(sum domain.AttendanceSummary) []domain.SummaryCard {
	return []domain.SummaryCard{
		{Label: "Present Percentage", Value: utils.FormatPercent(sum.PresentPercentage), Color: "cyan"},
		{Label: "Absent Percentage", Value: utils.FormatPercent(sum.AbsentPercentage), Color: "orange"},
		{Label: "Late Employees", Value: fmt.Sprintf("%d (%s)", sum.LateEmployees, utils.FormatPercent(sum.LatePercentage)), Color: "purple"},
	}
}

// AttendanceCharts builds the daily and monthly chart panels.
func AttendanceCharts(sum domain.AttendanceSummary) []domain.ChartSpec {
	return []domain.ChartSpec{
		{
			ID:     "daily",
			Title:  "Daily Attendance Report",
			Kind:   "bar",
			Labels: sum.DailyLabels,
			Datasets: []domain.ChartDataset{{
				Label:           "Daily Attendance (%)",
				Data:            sum.DailyAttendance,
				BackgroundColor: "rgba(52, 152, 219, 0.2)",
				BorderColor:     "rgba(52, 152, 219, 1)",
				BorderWidth:     3,
			}},
		},
		{
			ID:     "monthly",
			Title:  "Monthly Attendance Report",
			Kind:   "line",
			Labels: sum.MonthlyLabels,
			Datasets: []domain.ChartDataset{{
				Label:           "Attendance Trend (%)",
				Data:            sum.MonthlyAttendance,
				BackgroundColor: "rgba(34, 202, 236, 0.2)",
				BorderColor:     "rgba(34, 202, 236, 1)",
				BorderWidth:     2,
			}},
		},
	}
}
