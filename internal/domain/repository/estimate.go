package repository

import (
	"context"

	"github.com/polkiloo/autoservice/internal/domain/model"
)

// EstimateLinesPlan derives line item changes from the locked estimate.
type EstimateLinesPlan func(current model.Estimate) (model.ItemChanges[model.EstimatePart], model.ItemChanges[model.EstimateService])

// EstimateRepository persists estimates together with their line items.
type EstimateRepository interface {
	Create(ctx context.Context, estimate *model.Estimate) (*model.Estimate, error)
	GetByID(ctx context.Context, id int64) (*model.Estimate, error)
	GetByOrder(ctx context.Context, orderID int64) (*model.Estimate, error)
	// Update locks the estimate, plans line changes against its current lines
	// and writes them with the header in one transaction. An estimate owned by
	// another order is reported as not found.
	Update(ctx context.Context, estimate *model.Estimate, plan EstimateLinesPlan) error
}
