package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/autoservice/internal/domain/model"
	"github.com/polkiloo/autoservice/internal/server/http/dto"
	"github.com/polkiloo/autoservice/internal/usecase"
)

// DemandHandler manages procurement demands.
type DemandHandler struct {
	facade DemandFacade
}

// NewDemandHandler constructs DemandHandler.
func NewDemandHandler(facade DemandFacade) *DemandHandler {
	return &DemandHandler{facade: facade}
}

// Create handles POST /api/demands.
func (h *DemandHandler) Create(c *gin.Context) {
	var req dto.DemandRequest
	if !bindJSON(c, &req) {
		return
	}
	demand, ok := toDemand(req)
	if !ok {
		invalidInput(c)
		return
	}
	created, err := h.facade.CreateDemand(c.Request.Context(), demand)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toDemandResponse(usecase.CodeDemandAdded, created))
}

// Get handles GET /api/demands/:id.
func (h *DemandHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	demand, err := h.facade.Demand(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDemandResponse("", demand))
}

// Edit handles PUT /api/demands/:id.
func (h *DemandHandler) Edit(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.DemandRequest
	if !bindJSON(c, &req) {
		return
	}

	demand, ok := toDemand(req)
	if !ok {
		invalidInput(c)
		return
	}
	demand.ID = id
	updated, err := h.facade.EditDemand(c.Request.Context(), demand)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDemandResponse(usecase.CodeDemandEdited, updated))
}

// ChangeStatus handles PATCH /api/demands/:id/status.
func (h *DemandHandler) ChangeStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.StatusRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Status == nil {
		invalidInput(c)
		return
	}

	result, err := h.facade.ChangeDemandStatus(c.Request.Context(), id, model.DemandStatus(*req.Status))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FulfillmentResponse{
		Code:        usecase.CodeDemandStatusChanged,
		Applied:     result.Applied,
		MergedItems: result.MergedItems,
	})
}
