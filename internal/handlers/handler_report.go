package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/hr_dashboard/internal/apperrors"
	"github.com/SscSPs/hr_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/hr_dashboard/internal/core/ports/services"
	"github.com/SscSPs/hr_dashboard/internal/dto"
	"github.com/SscSPs/hr_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportHandler handles HTTP requests for the payment details report.
type reportHandler struct {
	reportService portssvc.ReportSvcFacade
}

// newReportHandler creates a new reportHandler.
func newReportHandler(rs portssvc.ReportSvcFacade) *reportHandler {
	return &reportHandler{
		reportService: rs,
	}
}

// registerReportRoutes registers routes related to the payment report.
func registerReportRoutes(rg *gin.RouterGroup, reportService portssvc.ReportSvcFacade) {
	h := newReportHandler(reportService)

	payments := rg.Group("/reports/payments")
	{
		payments.GET("", h.getReport)
		payments.POST("/sort", h.sortReport)
		payments.GET("/export", h.exportReport)

		payments.POST("/draft", h.beginAdd)
		payments.PATCH("/draft", h.updateDraftField)
		payments.POST("/draft/commit", h.commitDraft)
		payments.DELETE("/draft", h.cancelDraft)
		payments.POST("/:id/edit", h.beginEdit)

		payments.POST("/:id/delete", h.beginDelete)
		payments.POST("/delete/confirm", h.confirmDelete)
		payments.DELETE("/delete", h.cancelDelete)
	}
}

// getReport godoc
// @Summary Get the payment report
// @Description Returns the payment records in the current sort order together with the open dialog
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.ReportResponse
// @Failure 500 {object} map[string]string "Failed to load report"
// @Router /reports/payments [get]
func (h *reportHandler) getReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID, ok := requireSession(c, logger)
	if !ok {
		return
	}

	state, err := h.reportService.GetTable(c.Request.Context(), sessionID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to load report")
		return
	}
	c.JSON(http.StatusOK, dto.ToReportResponse(state))
}

// sortReport godoc
// @Summary Sort the payment report
// @Description Makes the column the sort key and flips the sort direction
// @Tags reports
// @Accept  json
// @Produce  json
// @Param   sort body dto.SortRequest true "Column to sort by"
// @Success 200 {object} dto.ReportResponse
// @Failure 400 {object} map[string]string "Invalid column"
// @Router /reports/payments/sort [post]
func (h *reportHandler) sortReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID, ok := requireSession(c, logger)
	if !ok {
		return
	}

	var req dto.SortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SortReport", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	state, err := h.reportService.Sort(c.Request.Context(), sessionID, domain.Column(req.Column))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to sort report")
		return
	}
	c.JSON(http.StatusOK, dto.ToReportResponse(state))
}

// beginAdd godoc
// @Summary Open the add dialog
// @Description Opens the shared dialog with a blank pending draft
// @Tags reports
// @Produce  json
// @Success 201 {object} dto.RecordResponse
// @Failure 409 {object} map[string]string "Another dialog is already open"
// @Router /reports/payments/draft [post]
func (h *reportHandler) beginAdd(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID, ok := requireSession(c, logger)
	if !ok {
		return
	}

	draft, err := h.reportService.BeginAdd(c.Request.Context(), sessionID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to open add dialog")
		return
	}
	c.JSON(http.StatusCreated, dto.ToRecordResponse(*draft))
}

// beginEdit godoc
// @Summary Open the edit dialog
// @Description Opens the shared dialog with a copy of the record
// @Tags reports
// @Produce  json
// @Param   id path int true "Record ID"
// @Success 200 {object} dto.RecordResponse
// @Failure 400 {object} map[string]string "Invalid record ID"
// @Failure 404 {object} map[string]string "Record not found"
// @Failure 409 {object} map[string]string "Another dialog is already open"
// @Router /reports/payments/{id}/edit [post]
func (h *reportHandler) beginEdit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID, ok := requireSession(c, logger)
	if !ok {
		return
	}
	recordID, ok := parseRecordID(c, logger)
	if !ok {
		return
	}

	draft, err := h.reportService.BeginEdit(c.Request.Context(), sessionID, recordID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to open edit dialog")
		return
	}
	c.JSON(http.StatusOK, dto.ToRecordResponse(*draft))
}

// updateDraftField godoc
// @Summary Change a draft field
// @Description Overwrites one field of the open draft; ignored when no dialog is open
// @Tags reports
// @Accept  json
// @Param   field body dto.UpdateDraftFieldRequest true "Field and value"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid field"
// @Router /reports/payments/draft [patch]
func (h *reportHandler) updateDraftField(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID, ok := requireSession(c, logger)
	if !ok {
		return
	}

	var req dto.UpdateDraftFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateDraftField", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.reportService.UpdateDraftField(c.Request.Context(), sessionID, domain.Column(req.Field), req.Value); err != nil {
		respondServiceError(c, logger, err, "Failed to update draft")
		return
	}
	c.Status(http.StatusNoContent)
}

// commitDraft godoc
// @Summary Save the open draft
// @Description Appends a new record or replaces the edited one, then closes the dialog
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.CommitResponse
// @Failure 400 {object} dto.CommitResponse "Draft failed validation; dialog stays open"
// @Failure 404 {object} dto.CommitResponse "Edited record no longer exists"
// @Router /reports/payments/draft/commit [post]
func (h *reportHandler) commitDraft(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID, ok := requireSession(c, logger)
	if !ok {
		return
	}

	outcome, err := h.reportService.CommitDraft(c.Request.Context(), sessionID)
	if err != nil && !errors.Is(err, apperrors.ErrValidation) {
		respondServiceError(c, logger, err, "Failed to save draft")
		return
	}
	if err != nil {
		logger.Warn("Draft failed validation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"outcome": outcome, "error": err.Error()})
		return
	}
	c.JSON(outcomeStatus(outcome), dto.CommitResponse{Outcome: outcome})
}

// cancelDraft godoc
// @Summary Discard the open draft
// @Tags reports
// @Success 204 "No Content"
// @Router /reports/payments/draft [delete]
func (h *reportHandler) cancelDraft(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID, ok := requireSession(c, logger)
	if !ok {
		return
	}

	if err := h.reportService.CancelDraft(c.Request.Context(), sessionID); err != nil {
		respondServiceError(c, logger, err, "Failed to cancel draft")
		return
	}
	c.Status(http.StatusNoContent)
}

// beginDelete godoc
// @Summary Ask to delete a record
// @Description Opens the delete confirmation for the record
// @Tags reports
// @Produce  json
// @Param   id path int true "Record ID"
// @Success 200 {object} dto.ModalResponse
// @Failure 404 {object} map[string]string "Record not found"
// @Failure 409 {object} map[string]string "Another dialog is already open"
// @Router /reports/payments/{id}/delete [post]
func (h *reportHandler) beginDelete(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID, ok := requireSession(c, logger)
	if !ok {
		return
	}
	recordID, ok := parseRecordID(c, logger)
	if !ok {
		return
	}

	if err := h.reportService.BeginDelete(c.Request.Context(), sessionID, recordID); err != nil {
		respondServiceError(c, logger, err, "Failed to open delete confirmation")
		return
	}
	state, err := h.reportService.GetTable(c.Request.Context(), sessionID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to load report")
		return
	}
	c.JSON(http.StatusOK, dto.ToModalResponse(state.Modal))
}

// confirmDelete godoc
// @Summary Confirm the pending delete
// @Description Removes the record awaiting confirmation; does nothing when none is selected
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.CommitResponse
// @Failure 404 {object} dto.CommitResponse "Record already gone"
// @Router /reports/payments/delete/confirm [post]
func (h *reportHandler) confirmDelete(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID, ok := requireSession(c, logger)
	if !ok {
		return
	}

	outcome, err := h.reportService.ConfirmDelete(c.Request.Context(), sessionID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to delete record")
		return
	}
	c.JSON(outcomeStatus(outcome), dto.CommitResponse{Outcome: outcome})
}

// cancelDelete godoc
// @Summary Close the delete confirmation
// @Tags reports
// @Success 204 "No Content"
// @Router /reports/payments/delete [delete]
func (h *reportHandler) cancelDelete(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID, ok := requireSession(c, logger)
	if !ok {
		return
	}

	if err := h.reportService.CancelDelete(c.Request.Context(), sessionID); err != nil {
		respondServiceError(c, logger, err, "Failed to cancel delete")
		return
	}
	c.Status(http.StatusNoContent)
}

// exportReport godoc
// @Summary Download the payment report as PDF
// @Description Renders every record in insertion order, ignoring the active sort
// @Tags reports
// @Produce  application/pdf
// @Success 200 {file} binary
// @Failure 500 {object} map[string]string "Failed to export report"
// @Router /reports/payments/export [get]
func (h *reportHandler) exportReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID, ok := requireSession(c, logger)
	if !ok {
		return
	}

	doc, data, err := h.reportService.Export(c.Request.Context(), sessionID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to export report")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, "application/pdf", data)
}
