package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/hr_dashboard/internal/apperrors"
	"github.com/SscSPs/hr_dashboard/internal/core/domain"
	"github.com/SscSPs/hr_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

// requireSession reads the session id set by SessionMiddleware and aborts the
// request when it is missing.
func requireSession(c *gin.Context, logger *slog.Logger) (string, bool) {
	sessionID, ok := middleware.GetSessionIDFromContext(c)
	if !ok {
		logger.Error("Session ID not found in context")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing session"})
		return "", false
	}
	return sessionID, true
}

// parseRecordID reads the :id path parameter.
func parseRecordID(c *gin.Context, logger *slog.Logger) (int, bool) {
	raw := c.Param("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		logger.Warn("Invalid record ID in path", slog.String("id", raw))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid record ID"})
		return 0, false
	}
	return id, true
}

// respondServiceError maps service errors to HTTP status codes.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	var appErr *apperrors.AppError
	switch {
	case errors.As(err, &appErr):
		logger.Error(appErr.Message, slog.String("error", err.Error()))
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Record not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
	case errors.Is(err, apperrors.ErrModalOpen):
		logger.Warn("Another dialog is already open", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": "Another dialog is already open"})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// outcomeStatus picks the HTTP status for a confirming action.
func outcomeStatus(outcome domain.CommitOutcome) int {
	switch outcome {
	case domain.OutcomeNotFound:
		return http.StatusNotFound
	case domain.OutcomeValidationFailed:
		return http.StatusBadRequest
	default:
		return http.StatusOK
	}
}
