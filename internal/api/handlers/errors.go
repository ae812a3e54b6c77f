package handlers

import (
	"errors"
	"net/http"

	apperrors "volunteer-checkin-backend/internal/errors"
	"volunteer-checkin-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// respondServiceError maps a service error onto an HTTP status. Validation
// rejections carry user-facing messages and are returned verbatim with 400.
// A repeated check-in is a conflict, not a validation failure. Anything
// unclassified is an operational error and stays a generic 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrAlreadyCheckedIn):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		logger.WithContext(c.Request.Context()).WithError(err).Error("unhandled service error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
