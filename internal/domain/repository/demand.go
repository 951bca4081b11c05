package repository

import (
	"context"

	"github.com/polkiloo/autoservice/internal/domain/model"
)

// FulfillmentPlan selects the stock deltas to merge for a locked demand.
type FulfillmentPlan func(demand model.Demand) []model.StockDelta

// DemandRepository persists procurement demands.
type DemandRepository interface {
	Create(ctx context.Context, demand *model.Demand) (*model.Demand, error)
	GetByID(ctx context.Context, id int64) (*model.Demand, error)
	Update(ctx context.Context, demand *model.Demand, items model.ItemChanges[model.DemandItem]) error
	UpdateStatus(ctx context.Context, id int64, status model.DemandStatus) error
	// Fulfill marks the demand fulfilled and merges the planned deltas into
	// department stock. A demand that is already fulfilled merges nothing.
	Fulfill(ctx context.Context, id int64, plan FulfillmentPlan) (model.Fulfillment, error)
}
