package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/autoservice/internal/domain/model"
	"github.com/polkiloo/autoservice/internal/server/http/dto"
	"github.com/polkiloo/autoservice/internal/usecase"
)

// OrderHandler manages order endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	order := model.Order{
		VehicleID:      req.VehicleID,
		ClientID:       req.ClientID,
		DepartmentID:   req.DepartmentID,
		ClientDiagnose: req.ClientDiagnose,
	}
	if req.StartDate != nil {
		order.StartDate = *req.StartDate
	}
	for _, path := range req.Images {
		order.Images = append(order.Images, model.OrderImage{Path: path})
	}

	created, err := h.facade.CreateOrder(c.Request.Context(), order)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OrderEnvelope{Code: usecase.CodeOrderAdded, Order: toOrderResponse(created)})
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	order, err := h.facade.Order(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OrderEnvelope{Order: toOrderResponse(order)})
}

// ChangeStatus handles PATCH /api/orders/:id/status.
func (h *OrderHandler) ChangeStatus(c *gin.Context) {
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

	order, err := h.facade.ChangeOrderStatus(c.Request.Context(), id, model.OrderStatus(*req.Status))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OrderEnvelope{Code: usecase.CodeStatusChanged, Order: toOrderResponse(order)})
}
