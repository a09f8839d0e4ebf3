package handlers

import (
	"net/http"

	"github.com/fullarch/financing-api/internal/types/api/responses"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Use types from the centralized packages
type HealthResponse = responses.HealthResponse

// Live returns the plain-text liveness confirmation served at the root path.
func (h *HealthHandler) Live(c *gin.Context) {
	c.String(http.StatusOK, "Financing API is running.")
}

// Health returns a simple "ok" status
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status: "ok",
	})
}
