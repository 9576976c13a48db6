package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/hr_dashboard/internal/apperrors"
	"github.com/SscSPs/hr_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/hr_dashboard/internal/core/ports/services"
	"github.com/SscSPs/hr_dashboard/internal/dto"
	"github.com/SscSPs/hr_dashboard/internal/handlers"
	"github.com/SscSPs/hr_dashboard/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ReportService ---
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) GetTable(ctx context.Context, sessionID string) (*domain.TableState, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TableState), args.Error(1)
}
func (m *MockReportService) Export(ctx context.Context, sessionID string) (*domain.ReportDocument, []byte, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.ReportDocument), args.Get(1).([]byte), args.Error(2)
}
func (m *MockReportService) Sort(ctx context.Context, sessionID string, column domain.Column) (*domain.TableState, error) {
	args := m.Called(ctx, sessionID, column)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TableState), args.Error(1)
}
func (m *MockReportService) BeginAdd(ctx context.Context, sessionID string) (*domain.Record, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Record), args.Error(1)
}
func (m *MockReportService) BeginEdit(ctx context.Context, sessionID string, recordID int) (*domain.Record, error) {
	args := m.Called(ctx, sessionID, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Record), args.Error(1)
}
func (m *MockReportService) UpdateDraftField(ctx context.Context, sessionID string, column domain.Column, value string) error {
	args := m.Called(ctx, sessionID, column, value)
	return args.Error(0)
}
func (m *MockReportService) CommitDraft(ctx context.Context, sessionID string) (domain.CommitOutcome, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(domain.CommitOutcome), args.Error(1)
}
func (m *MockReportService) CancelDraft(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
func (m *MockReportService) BeginDelete(ctx context.Context, sessionID string, recordID int) error {
	args := m.Called(ctx, sessionID, recordID)
	return args.Error(0)
}
func (m *MockReportService) ConfirmDelete(ctx context.Context, sessionID string) (domain.CommitOutcome, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(domain.CommitOutcome), args.Error(1)
}
func (m *MockReportService) CancelDelete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.ReportSvcFacade = (*MockReportService)(nil)

// --- Mock DashboardService ---
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) GetDashboard(ctx context.Context, sessionID string) (*domain.Dashboard, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dashboard), args.Error(1)
}
func (m *MockDashboardService) MountDashboard(ctx context.Context, sessionID string) (*domain.Dashboard, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dashboard), args.Error(1)
}
func (m *MockDashboardService) DismissDialog(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
func (m *MockDashboardService) DismissNotification(ctx context.Context, sessionID string, notificationID int) error {
	args := m.Called(ctx, sessionID, notificationID)
	return args.Error(0)
}
func (m *MockDashboardService) NavigateToDetail(ctx context.Context, sessionID string) (string, error) {
	args := m.Called(ctx, sessionID)
	return args.String(0), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.DashboardSvcFacade = (*MockDashboardService)(nil)

// --- Test Suite Setup ---

type HandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockReport    *MockReportService
	mockDashboard *MockDashboardService
	sessionID     string
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockReport = new(MockReportService)
	suite.mockDashboard = new(MockDashboardService)
	suite.sessionID = uuid.NewString()

	cfg := &config.Config{
		RateLimit:         "1000-M",
		SessionCookieName: "hrd_session",
		ReportTitle:       "Payment Details Report",
		IsProduction:      true,
	}
	container := &portssvc.ServiceContainer{
		Report:    suite.mockReport,
		Dashboard: suite.mockDashboard,
	}

	suite.router = gin.New()
	suite.Require().NoError(handlers.RegisterRoutes(suite.router, cfg, container))
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.mockReport.AssertExpectations(suite.T())
	suite.mockDashboard.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.AddCookie(&http.Cookie{Name: "hrd_session", Value: suite.sessionID})
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func sampleState() *domain.TableState {
	return &domain.TableState{
		Rows: []domain.Record{
			{ID: 1, Name: "Arun Kumar", Company: "Chennai ABC Pvt Ltd", Amount: "₹10,000", Status: domain.StatusPending, Date: "2024-02-01"},
		},
		Sort:  domain.DefaultSortConfig(),
		Modal: domain.Closed{},
	}
}

// --- Report Tests ---

func (suite *HandlerTestSuite) TestGetReport() {
	suite.mockReport.On("GetTable", mock.Anything, suite.sessionID).Return(sampleState(), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/payments", nil)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.ReportResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Require().Len(res.Rows, 1)
	suite.Equal("danger", res.Rows[0].Tone)
	suite.Equal("closed", res.Modal.Kind)
}

func (suite *HandlerTestSuite) TestSortReport() {
	state := sampleState()
	state.Sort = domain.SortConfig{Key: domain.ColumnName, Direction: domain.Descending}
	suite.mockReport.On("Sort", mock.Anything, suite.sessionID, domain.ColumnName).Return(state, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/reports/payments/sort", dto.SortRequest{Column: "name"})

	suite.Equal(http.StatusOK, w.Code)
	var res dto.ReportResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal(dto.SortResponse{Key: "name", Direction: "desc"}, res.Sort)
}

func (suite *HandlerTestSuite) TestSortReport_InvalidColumn() {
	w := suite.do(http.MethodPost, "/api/v1/reports/payments/sort", dto.SortRequest{Column: "salary"})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReport.AssertNotCalled(suite.T(), "Sort", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestBeginAdd() {
	suite.mockReport.On("BeginAdd", mock.Anything, suite.sessionID).
		Return(&domain.Record{ID: 11, Status: domain.StatusPending}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/reports/payments/draft", nil)

	suite.Equal(http.StatusCreated, w.Code)
	var res dto.RecordResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal(11, res.ID)
	suite.Equal("Pending", res.Status)
}

func (suite *HandlerTestSuite) TestBeginAdd_ModalOpen() {
	suite.mockReport.On("BeginAdd", mock.Anything, suite.sessionID).
		Return(nil, fmt.Errorf("%w: editing", apperrors.ErrModalOpen)).Once()

	w := suite.do(http.MethodPost, "/api/v1/reports/payments/draft", nil)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestBeginEdit_NotFound() {
	suite.mockReport.On("BeginEdit", mock.Anything, suite.sessionID, 99).
		Return(nil, fmt.Errorf("record 99: %w", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodPost, "/api/v1/reports/payments/99/edit", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestBeginEdit_InvalidID() {
	w := suite.do(http.MethodPost, "/api/v1/reports/payments/abc/edit", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestUpdateDraftField() {
	suite.mockReport.On("UpdateDraftField", mock.Anything, suite.sessionID, domain.ColumnName, "").Return(nil).Once()

	w := suite.do(http.MethodPatch, "/api/v1/reports/payments/draft", dto.UpdateDraftFieldRequest{Field: "name", Value: ""})

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlerTestSuite) TestCommitDraft_Outcomes() {
	tests := []struct {
		name       string
		outcome    domain.CommitOutcome
		err        error
		wantStatus int
	}{
		{"ok", domain.OutcomeOK, nil, http.StatusOK},
		{"noop", domain.OutcomeNoop, nil, http.StatusOK},
		{"edited record vanished", domain.OutcomeNotFound, nil, http.StatusNotFound},
		{"validation failed", domain.OutcomeValidationFailed, fmt.Errorf("%w: status", apperrors.ErrValidation), http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.mockReport.On("CommitDraft", mock.Anything, suite.sessionID).Return(tt.outcome, tt.err).Once()

			w := suite.do(http.MethodPost, "/api/v1/reports/payments/draft/commit", nil)

			suite.Equal(tt.wantStatus, w.Code)
			var res dto.CommitResponse
			suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
			suite.Equal(tt.outcome, res.Outcome)
		})
	}
}

func (suite *HandlerTestSuite) TestCancelDraft() {
	suite.mockReport.On("CancelDraft", mock.Anything, suite.sessionID).Return(nil).Once()
	w := suite.do(http.MethodDelete, "/api/v1/reports/payments/draft", nil)
	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlerTestSuite) TestBeginDelete() {
	state := sampleState()
	state.Modal = domain.ConfirmingDelete{TargetID: 1, Name: "Arun Kumar"}
	suite.mockReport.On("BeginDelete", mock.Anything, suite.sessionID, 1).Return(nil).Once()
	suite.mockReport.On("GetTable", mock.Anything, suite.sessionID).Return(state, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/reports/payments/1/delete", nil)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.ModalResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("confirming_delete", res.Kind)
	suite.Equal("Arun Kumar", res.Name)
}

func (suite *HandlerTestSuite) TestConfirmDelete() {
	suite.mockReport.On("ConfirmDelete", mock.Anything, suite.sessionID).Return(domain.OutcomeNoop, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/reports/payments/delete/confirm", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"outcome":"noop"}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestCancelDelete() {
	suite.mockReport.On("CancelDelete", mock.Anything, suite.sessionID).Return(nil).Once()
	w := suite.do(http.MethodDelete, "/api/v1/reports/payments/delete", nil)
	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlerTestSuite) TestExportReport() {
	doc := &domain.ReportDocument{Title: "Payment Details Report", Filename: "payment_report.pdf"}
	suite.mockReport.On("Export", mock.Anything, suite.sessionID).Return(doc, []byte("%PDF-1.3"), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/payments/export", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("application/pdf", w.Header().Get("Content-Type"))
	suite.Equal(`attachment; filename="payment_report.pdf"`, w.Header().Get("Content-Disposition"))
	suite.Equal("%PDF-1.3", w.Body.String())
}

func (suite *HandlerTestSuite) TestExportReport_Failure() {
	suite.mockReport.On("Export", mock.Anything, suite.sessionID).Return(nil, nil, fmt.Errorf("boom")).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/payments/export", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
}

func (suite *HandlerTestSuite) TestExportReport_AppErrorKeepsMessage() {
	appErr := apperrors.NewAppError(http.StatusServiceUnavailable, "Failed to render payment_report.pdf", fmt.Errorf("font missing"))
	suite.mockReport.On("Export", mock.Anything, suite.sessionID).Return(nil, nil, appErr).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/payments/export", nil)

	suite.Equal(http.StatusServiceUnavailable, w.Code)
	suite.JSONEq(`{"error":"Failed to render payment_report.pdf"}`, w.Body.String())
}

// --- Dashboard Tests ---

func sampleDashboard() *domain.Dashboard {
	return &domain.Dashboard{
		Company: "Erode Corporation",
		Cards:   []domain.SummaryCard{{Label: "Total Employees", Value: "150", Icon: "users", Color: "indigo"}},
		Charts: []domain.ChartSpec{{ID: "daily", Title: "Daily Attendance Report", Kind: "bar",
			Labels: []string{"Mon"}, Datasets: []domain.ChartDataset{{Label: "Daily Attendance (%)", Data: []int{80}}}}},
		Notifications: []domain.NotificationItem{{ID: 1, Name: "Arun Kumar", Amount: "₹10,000"}},
		DialogOpen:    true,
	}
}

func (suite *HandlerTestSuite) TestGetDashboard() {
	suite.mockDashboard.On("GetDashboard", mock.Anything, suite.sessionID).Return(sampleDashboard(), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/dashboard", nil)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.DashboardResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.True(res.Dialog.Open)
	suite.Len(res.Dialog.Items, 1)
	suite.Equal("bar", res.Charts[0].Kind)
}

func (suite *HandlerTestSuite) TestDismissDialog() {
	suite.mockDashboard.On("DismissDialog", mock.Anything, suite.sessionID).Return(nil).Once()
	w := suite.do(http.MethodPost, "/api/v1/dashboard/dialog/dismiss", nil)
	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlerTestSuite) TestDismissNotification() {
	board := sampleDashboard()
	board.Notifications = nil
	suite.mockDashboard.On("DismissNotification", mock.Anything, suite.sessionID, 1).Return(nil).Once()
	suite.mockDashboard.On("GetDashboard", mock.Anything, suite.sessionID).Return(board, nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/dashboard/notifications/1", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"open":true,"items":[]}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestNavigateToDetail() {
	suite.mockDashboard.On("NavigateToDetail", mock.Anything, suite.sessionID).Return(domain.PaymentPendingRoute, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/dashboard/navigate", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"route":"/reports/payment-pending"}`, w.Body.String())
}

// --- Page Tests ---

func (suite *HandlerTestSuite) TestDashboardPage_MountsDialog() {
	suite.mockDashboard.On("MountDashboard", mock.Anything, suite.sessionID).Return(sampleDashboard(), nil).Once()

	w := suite.do(http.MethodGet, "/", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "Erode Corporation")
	suite.Contains(w.Body.String(), "Arun Kumar")
	suite.Contains(w.Body.String(), "chart-daily")
}

func (suite *HandlerTestSuite) TestDashboardPage_EmptyPending() {
	board := sampleDashboard()
	board.Notifications = nil
	board.DialogOpen = false
	suite.mockDashboard.On("MountDashboard", mock.Anything, suite.sessionID).Return(board, nil).Once()

	w := suite.do(http.MethodGet, "/", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "No pending payments!")
}

func (suite *HandlerTestSuite) TestDashboardDetails_Redirects() {
	suite.mockDashboard.On("NavigateToDetail", mock.Anything, suite.sessionID).Return(domain.PaymentPendingRoute, nil).Once()

	w := suite.do(http.MethodGet, "/dashboard/details", nil)

	suite.Equal(http.StatusSeeOther, w.Code)
	suite.Equal("/reports/payment-pending", w.Header().Get("Location"))
}

func (suite *HandlerTestSuite) TestPaymentReportPage() {
	state := sampleState()
	state.Modal = domain.Editing{Draft: state.Rows[0], TargetID: 1}
	suite.mockReport.On("GetTable", mock.Anything, suite.sessionID).Return(state, nil).Once()

	w := suite.do(http.MethodGet, "/reports/payment-pending", nil)

	suite.Equal(http.StatusOK, w.Code)
	body := w.Body.String()
	suite.Contains(body, "Payment Details Report")
	suite.Contains(body, "Chennai ABC Pvt Ltd")
	suite.Contains(body, "Edit Entry")
}

func (suite *HandlerTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

// --- Run Test Suite ---

func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
