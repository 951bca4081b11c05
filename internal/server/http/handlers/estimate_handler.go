package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/autoservice/internal/server/http/dto"
	"github.com/polkiloo/autoservice/internal/usecase"
)

// EstimateHandler manages order estimates.
type EstimateHandler struct {
	facade EstimateFacade
}

// NewEstimateHandler constructs EstimateHandler.
func NewEstimateHandler(facade EstimateFacade) *EstimateHandler {
	return &EstimateHandler{facade: facade}
}

// Create handles POST /api/orders/:id/estimate.
func (h *EstimateHandler) Create(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.EstimateRequest
	if !bindJSON(c, &req) {
		return
	}

	estimate, err := h.facade.CreateEstimate(c.Request.Context(), orderID, toEstimateInput(req))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toEstimateResponse(usecase.CodeEstimateAdded, estimate))
}

// Edit handles PUT /api/orders/:id/estimate/:estimateId.
func (h *EstimateHandler) Edit(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	estimateID, ok := pathID(c, "estimateId")
	if !ok {
		return
	}
	var req dto.EstimateRequest
	if !bindJSON(c, &req) {
		return
	}

	estimate, err := h.facade.EditEstimate(c.Request.Context(), estimateID, orderID, toEstimateInput(req))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEstimateResponse(usecase.CodeEstimateEdited, estimate))
}

// Get handles GET /api/orders/:id/estimate.
func (h *EstimateHandler) Get(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	estimate, err := h.facade.Estimate(c.Request.Context(), orderID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEstimateResponse("", estimate))
}
