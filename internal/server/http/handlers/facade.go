package handlers

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/autoservice/internal/domain/model"
	"github.com/polkiloo/autoservice/internal/usecase"
)

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, order model.Order) (*model.Order, error)
	Order(ctx context.Context, id int64) (*model.Order, error)
	ChangeOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error)
}

// ChecklistFacade manages order checklists.
type ChecklistFacade interface {
	SaveChecklist(ctx context.Context, orderID int64, entries []model.ChecklistEntry) (*model.Checklist, error)
	Checklist(ctx context.Context, orderID int64) (*model.Checklist, error)
}

// EstimateFacade manages order estimates.
type EstimateFacade interface {
	CreateEstimate(ctx context.Context, orderID int64, in usecase.EstimateInput) (*model.Estimate, error)
	EditEstimate(ctx context.Context, estimateID, orderID int64, in usecase.EstimateInput) (*model.Estimate, error)
	Estimate(ctx context.Context, orderID int64) (*model.Estimate, error)
}

// ComplaintFacade drives the complaint workflow.
type ComplaintFacade interface {
	SubmitComplaint(ctx context.Context, orderID int64, description string) (*model.Complaint, error)
	Complaint(ctx context.Context, orderID int64) (*model.Complaint, error)
	StartComplaintProcessing(ctx context.Context, complaintID int64) (*model.Complaint, error)
	DecideComplaint(ctx context.Context, complaintID int64, decision model.ComplaintStatus, submitDescription string) (*model.Complaint, error)
}

// DemandFacade manages procurement demands.
type DemandFacade interface {
	CreateDemand(ctx context.Context, demand model.Demand) (*model.Demand, error)
	Demand(ctx context.Context, id int64) (*model.Demand, error)
	EditDemand(ctx context.Context, demand model.Demand) (*model.Demand, error)
	ChangeDemandStatus(ctx context.Context, id int64, status model.DemandStatus) (model.Fulfillment, error)
}

// WarehouseFacade exposes department stock.
type WarehouseFacade interface {
	Stock(ctx context.Context, departmentID int64) ([]model.StockItem, error)
	AddStock(ctx context.Context, item model.StockItem) (*model.StockItem, error)
	AdjustStock(ctx context.Context, departmentID int64, ean string, delta decimal.Decimal) (*model.StockItem, error)
}

// HealthFacade reports dependency health.
type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// WorkshopFacade aggregates the full set of operations used across handlers.
type WorkshopFacade interface {
	OrderFacade
	ChecklistFacade
	EstimateFacade
	ComplaintFacade
	DemandFacade
	WarehouseFacade
	HealthFacade
}
