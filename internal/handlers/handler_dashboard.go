package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/hr_dashboard/internal/core/ports/services"
	"github.com/SscSPs/hr_dashboard/internal/dto"
	"github.com/SscSPs/hr_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

// dashboardHandler handles HTTP requests for the attendance summary and its
// pending payments dialog.
type dashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
}

func newDashboardHandler(ds portssvc.DashboardSvcFacade) *dashboardHandler {
	return &dashboardHandler{
		dashboardService: ds,
	}
}

// registerDashboardRoutes registers routes related to the dashboard.
func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvcFacade) {
	h := newDashboardHandler(dashboardService)

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("", h.getDashboard)
		dashboard.POST("/dialog/dismiss", h.dismissDialog)
		dashboard.DELETE("/notifications/:id", h.dismissNotification)
		dashboard.POST("/navigate", h.navigateToDetail)
	}
}

// getDashboard godoc
// @Summary Get the attendance summary
// @Description Returns the summary cards, charts and pending payments dialog state
// @Tags dashboard
// @Produce  json
// @Success 200 {object} dto.DashboardResponse
// @Router /dashboard [get]
func (h *dashboardHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID, ok := requireSession(c, logger)
	if !ok {
		return
	}

	board, err := h.dashboardService.GetDashboard(c.Request.Context(), sessionID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to load dashboard")
		return
	}
	c.JSON(http.StatusOK, dto.ToDashboardResponse(board))
}

// dismissDialog godoc
// @Summary Close the pending payments dialog
// @Tags dashboard
// @Success 204 "No Content"
// @Router /dashboard/dialog/dismiss [post]
func (h *dashboardHandler) dismissDialog(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID, ok := requireSession(c, logger)
	if !ok {
		return
	}

	if err := h.dashboardService.DismissDialog(c.Request.Context(), sessionID); err != nil {
		respondServiceError(c, logger, err, "Failed to close dialog")
		return
	}
	c.Status(http.StatusNoContent)
}

// dismissNotification godoc
// @Summary Dismiss one pending payment
// @Description Removes the item from the pending list; unknown ids are ignored
// @Tags dashboard
// @Produce  json
// @Param   id path int true "Notification ID"
// @Success 200 {object} dto.NotificationDialogResponse
// @Failure 400 {object} map[string]string "Invalid notification ID"
// @Router /dashboard/notifications/{id} [delete]
func (h *dashboardHandler) dismissNotification(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID, ok := requireSession(c, logger)
	if !ok {
		return
	}
	notificationID, ok := parseRecordID(c, logger)
	if !ok {
		return
	}

	logger.Info("Received request to dismiss notification", slog.Int("notification_id", notificationID))
	if err := h.dashboardService.DismissNotification(c.Request.Context(), sessionID, notificationID); err != nil {
		respondServiceError(c, logger, err, "Failed to dismiss notification")
		return
	}

	board, err := h.dashboardService.GetDashboard(c.Request.Context(), sessionID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to load dashboard")
		return
	}
	c.JSON(http.StatusOK, dto.ToDashboardResponse(board).Dialog)
}

// navigateToDetail godoc
// @Summary Get the pending payments detail route
// @Tags dashboard
// @Produce  json
// @Success 200 {object} dto.NavigateResponse
// @Router /dashboard/navigate [post]
func (h *dashboardHandler) navigateToDetail(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID, ok := requireSession(c, logger)
	if !ok {
		return
	}

	route, err := h.dashboardService.NavigateToDetail(c.Request.Context(), sessionID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to resolve detail route")
		return
	}
	c.JSON(http.StatusOK, dto.NavigateResponse{Route: route})
}
