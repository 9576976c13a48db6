package handlers

import (
	"net/http"

	"github.com/SscSPs/hr_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/hr_dashboard/internal/core/ports/services"
	"github.com/SscSPs/hr_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

// pageHandler serves the server-rendered pages.
type pageHandler struct {
	services    *portssvc.ServiceContainer
	reportTitle string
}

type dashboardPage struct {
	Board *domain.Dashboard
}

type reportPage struct {
	Title    string
	State    *domain.TableState
	Columns  []domain.Column
	Statuses []domain.Status
}

// registerPageRoutes registers the HTML pages. The engine must have the
// templates from package web loaded.
func registerPageRoutes(r *gin.RouterGroup, services *portssvc.ServiceContainer, reportTitle string) {
	h := &pageHandler{services: services, reportTitle: reportTitle}

	r.GET("/", h.dashboardPage)
	r.GET("/dashboard/details", h.dashboardDetails)
	r.GET(domain.PaymentPendingRoute, h.paymentReportPage)
}

// dashboardPage renders the summary. Every page load remounts the pending
// dialog, so a non-empty list shows it again.
func (h *pageHandler) dashboardPage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID, ok := requireSession(c, logger)
	if !ok {
		return
	}

	board, err := h.services.Dashboard.MountDashboard(c.Request.Context(), sessionID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to load dashboard")
		return
	}
	c.HTML(http.StatusOK, "dashboard.html", dashboardPage{Board: board})
}

func (h *pageHandler) dashboardDetails(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID, ok := requireSession(c, logger)
	if !ok {
		return
	}

	route, err := h.services.Dashboard.NavigateToDetail(c.Request.Context(), sessionID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to resolve detail route")
		return
	}
	c.Redirect(http.StatusSeeOther, route)
}

func (h *pageHandler) paymentReportPage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID, ok := requireSession(c, logger)
	if !ok {
		return
	}

	state, err := h.services.Report.GetTable(c.Request.Context(), sessionID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to load report")
		return
	}
	c.HTML(http.StatusOK, "payment_report.html", reportPage{
		Title:    h.reportTitle,
		State:    state,
		Columns:  domain.Columns,
		Statuses: domain.Statuses,
	})
}
