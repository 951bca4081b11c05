package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/autoservice/internal/domain/model"
	"github.com/polkiloo/autoservice/internal/server/http/dto"
	"github.com/polkiloo/autoservice/internal/usecase"
)

// ChecklistHandler manages diagnostic checklists.
type ChecklistHandler struct {
	facade ChecklistFacade
}

// NewChecklistHandler constructs ChecklistHandler.
func NewChecklistHandler(facade ChecklistFacade) *ChecklistHandler {
	return &ChecklistHandler{facade: facade}
}

// Save handles PUT /api/orders/:id/checklist.
func (h *ChecklistHandler) Save(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ChecklistRequest
	if !bindJSON(c, &req) {
		return
	}

	saved, err := h.facade.SaveChecklist(c.Request.Context(), orderID, req.Entries)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toChecklistResponse(usecase.CodeChecklistSaved, saved))
}

// Get handles GET /api/orders/:id/checklist.
func (h *ChecklistHandler) Get(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	checklist, err := h.facade.Checklist(c.Request.Context(), orderID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toChecklistResponse("", checklist))
}

func toChecklistResponse(code string, cl *model.Checklist) dto.ChecklistResponse {
	entries := cl.Entries
	if entries == nil {
		entries = []model.ChecklistEntry{}
	}
	return dto.ChecklistResponse{Code: code, OrderID: cl.OrderID, Entries: entries, UpdatedAt: cl.UpdatedAt}
}
