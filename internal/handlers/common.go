package handlers

import (
	"net/http"

	"github.com/fullarch/financing-api/internal/logger"
	"github.com/fullarch/financing-api/internal/middleware"
	"github.com/fullarch/financing-api/internal/types/api/responses"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Use types from the centralized packages
type ErrorResponse = responses.ErrorResponse

// Fixed client-facing error messages. Validation failures never leak detail;
// downstream failures carry the underlying message in the details field.
const (
	ErrMissingRequiredFields = "Missing required fields."
	ErrServerError           = "Server error"
)

// sendError logs the failure and sends a JSON error response without detail
// leakage. Used for client-caused (validation) errors.
func sendError(c *gin.Context, statusCode int, message string, err error) {
	correlationID := middleware.GetCorrelationID(c)

	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("correlation_id", correlationID),
	)

	c.JSON(statusCode, ErrorResponse{
		Error: message,
	})
}

// sendServerError logs the downstream failure and sends a 500 with the
// generic label plus the underlying message as a details field.
func sendServerError(c *gin.Context, err error) {
	correlationID := middleware.GetCorrelationID(c)

	logger.Error(ErrServerError,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("correlation_id", correlationID),
	)

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   ErrServerError,
		Details: err.Error(),
	})
}

// sendSuccess sends a success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}
