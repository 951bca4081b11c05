package test

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/autoservice/internal/domain/model"
	"github.com/polkiloo/autoservice/internal/usecase"
)

// WorkshopFacadeStub provides controllable behaviour for HTTP handlers.
// Unset functions return a minimal successful result built from the input.
type WorkshopFacadeStub struct {
	CreateOrderFn       func(context.Context, model.Order) (*model.Order, error)
	OrderFn             func(context.Context, int64) (*model.Order, error)
	ChangeOrderStatusFn func(context.Context, int64, model.OrderStatus) (*model.Order, error)

	SaveChecklistFn func(context.Context, int64, []model.ChecklistEntry) (*model.Checklist, error)
	ChecklistFn     func(context.Context, int64) (*model.Checklist, error)

	CreateEstimateFn func(context.Context, int64, usecase.EstimateInput) (*model.Estimate, error)
	EditEstimateFn   func(context.Context, int64, int64, usecase.EstimateInput) (*model.Estimate, error)
	EstimateFn       func(context.Context, int64) (*model.Estimate, error)

	SubmitComplaintFn func(context.Context, int64, string) (*model.Complaint, error)
	ComplaintFn       func(context.Context, int64) (*model.Complaint, error)
	StartProcessingFn func(context.Context, int64) (*model.Complaint, error)
	DecideComplaintFn func(context.Context, int64, model.ComplaintStatus, string) (*model.Complaint, error)

	CreateDemandFn       func(context.Context, model.Demand) (*model.Demand, error)
	DemandFn             func(context.Context, int64) (*model.Demand, error)
	EditDemandFn         func(context.Context, model.Demand) (*model.Demand, error)
	ChangeDemandStatusFn func(context.Context, int64, model.DemandStatus) (model.Fulfillment, error)

	StockFn       func(context.Context, int64) ([]model.StockItem, error)
	AddStockFn    func(context.Context, model.StockItem) (*model.StockItem, error)
	AdjustStockFn func(context.Context, int64, string, decimal.Decimal) (*model.StockItem, error)

	HealthErr error
}

func (s WorkshopFacadeStub) CreateOrder(ctx context.Context, order model.Order) (*model.Order, error) {
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, order)
	}
	order.ID = 1
	return &order, nil
}

func (s WorkshopFacadeStub) Order(ctx context.Context, id int64) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return &model.Order{ID: id}, nil
}

func (s WorkshopFacadeStub) ChangeOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	if s.ChangeOrderStatusFn != nil {
		return s.ChangeOrderStatusFn(ctx, id, status)
	}
	return &model.Order{ID: id, Status: status}, nil
}

func (s WorkshopFacadeStub) SaveChecklist(ctx context.Context, orderID int64, entries []model.ChecklistEntry) (*model.Checklist, error) {
	if s.SaveChecklistFn != nil {
		return s.SaveChecklistFn(ctx, orderID, entries)
	}
	return &model.Checklist{OrderID: orderID, Entries: entries}, nil
}

func (s WorkshopFacadeStub) Checklist(ctx context.Context, orderID int64) (*model.Checklist, error) {
	if s.ChecklistFn != nil {
		return s.ChecklistFn(ctx, orderID)
	}
	return &model.Checklist{OrderID: orderID}, nil
}

func (s WorkshopFacadeStub) CreateEstimate(ctx context.Context, orderID int64, in usecase.EstimateInput) (*model.Estimate, error) {
	if s.CreateEstimateFn != nil {
		return s.CreateEstimateFn(ctx, orderID, in)
	}
	return estimateFromInput(1, orderID, in), nil
}

func (s WorkshopFacadeStub) EditEstimate(ctx context.Context, estimateID, orderID int64, in usecase.EstimateInput) (*model.Estimate, error) {
	if s.EditEstimateFn != nil {
		return s.EditEstimateFn(ctx, estimateID, orderID, in)
	}
	return estimateFromInput(estimateID, orderID, in), nil
}

func (s WorkshopFacadeStub) Estimate(ctx context.Context, orderID int64) (*model.Estimate, error) {
	if s.EstimateFn != nil {
		return s.EstimateFn(ctx, orderID)
	}
	return &model.Estimate{ID: 1, OrderID: orderID}, nil
}

func (s WorkshopFacadeStub) SubmitComplaint(ctx context.Context, orderID int64, description string) (*model.Complaint, error) {
	if s.SubmitComplaintFn != nil {
		return s.SubmitComplaintFn(ctx, orderID, description)
	}
	return &model.Complaint{ID: 1, OrderID: orderID, Status: model.ComplaintStatusSubmitted, Description: description}, nil
}

func (s WorkshopFacadeStub) Complaint(ctx context.Context, orderID int64) (*model.Complaint, error) {
	if s.ComplaintFn != nil {
		return s.ComplaintFn(ctx, orderID)
	}
	return &model.Complaint{ID: 1, OrderID: orderID, Status: model.ComplaintStatusSubmitted}, nil
}

func (s WorkshopFacadeStub) StartComplaintProcessing(ctx context.Context, complaintID int64) (*model.Complaint, error) {
	if s.StartProcessingFn != nil {
		return s.StartProcessingFn(ctx, complaintID)
	}
	return &model.Complaint{ID: complaintID, Status: model.ComplaintStatusProcessing}, nil
}

func (s WorkshopFacadeStub) DecideComplaint(ctx context.Context, complaintID int64, decision model.ComplaintStatus, submitDescription string) (*model.Complaint, error) {
	if s.DecideComplaintFn != nil {
		return s.DecideComplaintFn(ctx, complaintID, decision, submitDescription)
	}
	return &model.Complaint{ID: complaintID, Status: decision, SubmitDescription: submitDescription}, nil
}

func (s WorkshopFacadeStub) CreateDemand(ctx context.Context, demand model.Demand) (*model.Demand, error) {
	if s.CreateDemandFn != nil {
		return s.CreateDemandFn(ctx, demand)
	}
	demand.ID = 1
	return &demand, nil
}

func (s WorkshopFacadeStub) Demand(ctx context.Context, id int64) (*model.Demand, error) {
	if s.DemandFn != nil {
		return s.DemandFn(ctx, id)
	}
	return &model.Demand{ID: id}, nil
}

func (s WorkshopFacadeStub) EditDemand(ctx context.Context, demand model.Demand) (*model.Demand, error) {
	if s.EditDemandFn != nil {
		return s.EditDemandFn(ctx, demand)
	}
	return &demand, nil
}

func (s WorkshopFacadeStub) ChangeDemandStatus(ctx context.Context, id int64, status model.DemandStatus) (model.Fulfillment, error) {
	if s.ChangeDemandStatusFn != nil {
		return s.ChangeDemandStatusFn(ctx, id, status)
	}
	return model.Fulfillment{}, nil
}

func (s WorkshopFacadeStub) Stock(ctx context.Context, departmentID int64) ([]model.StockItem, error) {
	if s.StockFn != nil {
		return s.StockFn(ctx, departmentID)
	}
	return nil, nil
}

func (s WorkshopFacadeStub) AddStock(ctx context.Context, item model.StockItem) (*model.StockItem, error) {
	if s.AddStockFn != nil {
		return s.AddStockFn(ctx, item)
	}
	item.ID = 1
	return &item, nil
}

func (s WorkshopFacadeStub) AdjustStock(ctx context.Context, departmentID int64, ean string, delta decimal.Decimal) (*model.StockItem, error) {
	if s.AdjustStockFn != nil {
		return s.AdjustStockFn(ctx, departmentID, ean, delta)
	}
	return &model.StockItem{ID: 1, DepartmentID: departmentID, EAN: ean, Amount: delta}, nil
}

// HealthCheck returns the configured error.
func (s WorkshopFacadeStub) HealthCheck(context.Context) error {
	return s.HealthErr
}

func estimateFromInput(id, orderID int64, in usecase.EstimateInput) *model.Estimate {
	return &model.Estimate{
		ID:                 id,
		OrderID:            orderID,
		TotalPartsPrice:    in.Totals.Parts.Decimal,
		TotalServicesPrice: in.Totals.Services.Decimal,
		TotalPrice:         in.Totals.Total.Decimal,
		Parts:              in.Parts,
		Services:           in.Services,
	}
}
