package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/autoservice/internal/server/http/dto"
)

// HealthHandler reports readiness of the service.
type HealthHandler struct {
	facade HealthFacade
}

// NewHealthHandler constructs HealthHandler.
func NewHealthHandler(facade HealthFacade) *HealthHandler {
	return &HealthHandler{facade: facade}
}

// Check handles GET /api/health.
func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.facade.HealthCheck(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "unavailable"})
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
