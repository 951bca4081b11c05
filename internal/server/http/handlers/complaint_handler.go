package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/autoservice/internal/domain/model"
	"github.com/polkiloo/autoservice/internal/server/http/dto"
	"github.com/polkiloo/autoservice/internal/usecase"
)

// ComplaintHandler manages complaint workflow endpoints.
type ComplaintHandler struct {
	facade ComplaintFacade
}

// NewComplaintHandler constructs ComplaintHandler.
func NewComplaintHandler(facade ComplaintFacade) *ComplaintHandler {
	return &ComplaintHandler{facade: facade}
}

// Submit handles POST /api/orders/:id/complaint.
func (h *ComplaintHandler) Submit(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ComplaintRequest
	if !bindJSON(c, &req) {
		return
	}

	complaint, err := h.facade.SubmitComplaint(c.Request.Context(), orderID, req.Description)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toComplaintResponse(usecase.CodeComplaintAdded, complaint))
}

// Get handles GET /api/orders/:id/complaint.
func (h *ComplaintHandler) Get(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	complaint, err := h.facade.Complaint(c.Request.Context(), orderID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toComplaintResponse("", complaint))
}

// StartProcessing handles POST /api/complaints/:id/processing.
func (h *ComplaintHandler) StartProcessing(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	complaint, err := h.facade.StartComplaintProcessing(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toComplaintResponse(usecase.CodeComplaintProcessing, complaint))
}

// Decide handles POST /api/complaints/:id/decision.
func (h *ComplaintHandler) Decide(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.DecisionRequest
	if !bindJSON(c, &req) {
		return
	}

	complaint, err := h.facade.DecideComplaint(c.Request.Context(), id, model.ComplaintStatus(req.Decision), req.SubmitDescription)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toComplaintResponse(usecase.CodeComplaintDecided, complaint))
}
