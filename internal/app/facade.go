package app

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"

	"github.com/polkiloo/autoservice/internal/domain/model"
	"github.com/polkiloo/autoservice/internal/usecase"
)

// HealthChecker reports storage availability.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// WorkshopFacade exposes the workshop use cases to transport adapters.
type WorkshopFacade struct {
	orders     *usecase.OrderUseCase
	checklists *usecase.ChecklistUseCase
	estimates  *usecase.EstimateUseCase
	complaints *usecase.ComplaintUseCase
	demands    *usecase.DemandUseCase
	warehouse  *usecase.WarehouseUseCase
	health     HealthChecker
}

type facadeParams struct {
	fx.In

	Orders     *usecase.OrderUseCase
	Checklists *usecase.ChecklistUseCase
	Estimates  *usecase.EstimateUseCase
	Complaints *usecase.ComplaintUseCase
	Demands    *usecase.DemandUseCase
	Warehouse  *usecase.WarehouseUseCase
	Health     HealthChecker
}

// NewWorkshopFacade constructs WorkshopFacade.
func NewWorkshopFacade(p facadeParams) *WorkshopFacade {
	return &WorkshopFacade{
		orders:     p.Orders,
		checklists: p.Checklists,
		estimates:  p.Estimates,
		complaints: p.Complaints,
		demands:    p.Demands,
		warehouse:  p.Warehouse,
		health:     p.Health,
	}
}

func (f *WorkshopFacade) CreateOrder(ctx context.Context, order model.Order) (*model.Order, error) {
	return f.orders.Create(ctx, order)
}

func (f *WorkshopFacade) Order(ctx context.Context, id int64) (*model.Order, error) {
	return f.orders.Get(ctx, id)
}

func (f *WorkshopFacade) ChangeOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	return f.orders.ChangeStatus(ctx, id, status)
}

func (f *WorkshopFacade) SaveChecklist(ctx context.Context, orderID int64, entries []model.ChecklistEntry) (*model.Checklist, error) {
	return f.checklists.Save(ctx, orderID, entries)
}

func (f *WorkshopFacade) Checklist(ctx context.Context, orderID int64) (*model.Checklist, error) {
	return f.checklists.Get(ctx, orderID)
}

func (f *WorkshopFacade) CreateEstimate(ctx context.Context, orderID int64, in usecase.EstimateInput) (*model.Estimate, error) {
	return f.estimates.Create(ctx, orderID, in)
}

func (f *WorkshopFacade) EditEstimate(ctx context.Context, estimateID, orderID int64, in usecase.EstimateInput) (*model.Estimate, error) {
	return f.estimates.Edit(ctx, estimateID, orderID, in)
}

func (f *WorkshopFacade) Estimate(ctx context.Context, orderID int64) (*model.Estimate, error) {
	return f.estimates.Get(ctx, orderID)
}

func (f *WorkshopFacade) SubmitComplaint(ctx context.Context, orderID int64, description string) (*model.Complaint, error) {
	return f.complaints.Submit(ctx, orderID, description)
}

func (f *WorkshopFacade) Complaint(ctx context.Context, orderID int64) (*model.Complaint, error) {
	return f.complaints.Get(ctx, orderID)
}

func (f *WorkshopFacade) StartComplaintProcessing(ctx context.Context, complaintID int64) (*model.Complaint, error) {
	return f.complaints.StartProcessing(ctx, complaintID)
}

func (f *WorkshopFacade) DecideComplaint(ctx context.Context, complaintID int64, decision model.ComplaintStatus, submitDescription string) (*model.Complaint, error) {
	return f.complaints.Decide(ctx, complaintID, decision, submitDescription)
}

func (f *WorkshopFacade) CreateDemand(ctx context.Context, demand model.Demand) (*model.Demand, error) {
	return f.demands.Create(ctx, demand)
}

func (f *WorkshopFacade) Demand(ctx context.Context, id int64) (*model.Demand, error) {
	return f.demands.Get(ctx, id)
}

func (f *WorkshopFacade) EditDemand(ctx context.Context, demand model.Demand) (*model.Demand, error) {
	return f.demands.Edit(ctx, demand)
}

func (f *WorkshopFacade) ChangeDemandStatus(ctx context.Context, id int64, status model.DemandStatus) (model.Fulfillment, error) {
	return f.demands.ChangeStatus(ctx, id, status)
}

func (f *WorkshopFacade) Stock(ctx context.Context, departmentID int64) ([]model.StockItem, error) {
	return f.warehouse.Stock(ctx, departmentID)
}

func (f *WorkshopFacade) AddStock(ctx context.Context, item model.StockItem) (*model.StockItem, error) {
	return f.warehouse.Add(ctx, item)
}

func (f *WorkshopFacade) AdjustStock(ctx context.Context, departmentID int64, ean string, delta decimal.Decimal) (*model.StockItem, error) {
	return f.warehouse.Adjust(ctx, departmentID, ean, delta)
}

// HealthCheck reports whether storage answers.
func (f *WorkshopFacade) HealthCheck(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
