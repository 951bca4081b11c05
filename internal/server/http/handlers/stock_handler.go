package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/autoservice/internal/domain/model"
	"github.com/polkiloo/autoservice/internal/server/http/dto"
	"github.com/polkiloo/autoservice/internal/usecase"
)

// StockHandler exposes department warehouse stock.
type StockHandler struct {
	facade WarehouseFacade
}

// NewStockHandler constructs StockHandler.
func NewStockHandler(facade WarehouseFacade) *StockHandler {
	return &StockHandler{facade: facade}
}

// List handles GET /api/departments/:id/stock.
func (h *StockHandler) List(c *gin.Context) {
	departmentID, ok := pathID(c, "id")
	if !ok {
		return
	}
	items, err := h.facade.Stock(c.Request.Context(), departmentID)
	if err != nil {
		writeError(c, err)
		return
	}

	response := make([]dto.StockItem, 0, len(items))
	for _, item := range items {
		response = append(response, toStockItem(item))
	}
	c.JSON(http.StatusOK, response)
}

// Add handles POST /api/departments/:id/stock.
func (h *StockHandler) Add(c *gin.Context) {
	departmentID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.StockRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.facade.AddStock(c.Request.Context(), model.StockItem{
		DepartmentID: departmentID,
		EAN:          req.EAN,
		Name:         req.Name,
		Amount:       req.Amount,
		UnitPrice:    req.UnitPrice,
		BinLocation:  req.BinLocation,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.StockEnvelope{Code: usecase.CodeStockAdded, Item: toStockItem(*item)})
}

// Adjust handles PATCH /api/departments/:id/stock/:ean.
func (h *StockHandler) Adjust(c *gin.Context) {
	departmentID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.AdjustRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.facade.AdjustStock(c.Request.Context(), departmentID, c.Param("ean"), req.Delta)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.StockEnvelope{Code: usecase.CodeStockAdjusted, Item: toStockItem(*item)})
}
