package usecase

import (
	"context"
	"log/slog"

	domainErrors "github.com/polkiloo/autoservice/internal/domain/errors"
	"github.com/polkiloo/autoservice/internal/domain/model"
	"github.com/polkiloo/autoservice/internal/domain/repository"
)

const demandSubsystem = "demands"

// DemandUseCase manages procurement demands and their fulfillment into stock.
type DemandUseCase struct {
	demands repository.DemandRepository
	logger  *slog.Logger
}

// NewDemandUseCase constructs DemandUseCase.
func NewDemandUseCase(demands repository.DemandRepository, logger *slog.Logger) *DemandUseCase {
	return &DemandUseCase{demands: demands, logger: logger}
}

// Create persists a demand header with its items.
func (u *DemandUseCase) Create(ctx context.Context, demand model.Demand) (*model.Demand, error) {
	if err := validateDemand(demand); err != nil {
		return nil, err
	}
	demand.ID = 0
	demand.FulfilledAt = nil

	created, err := u.demands.Create(ctx, &demand)
	if err != nil {
		return nil, storeError(u.logger, demandSubsystem, "create", err)
	}
	return created, nil
}

// Get returns a demand with its items.
func (u *DemandUseCase) Get(ctx context.Context, id int64) (*model.Demand, error) {
	if id <= 0 {
		return nil, domainErrors.ErrInvalidInput
	}
	demand, err := u.demands.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(u.logger, demandSubsystem, "get", err)
	}
	return demand, nil
}

// Edit updates the header and reconciles items against the persisted ones.
// Fulfilled demands are frozen.
func (u *DemandUseCase) Edit(ctx context.Context, demand model.Demand) (*model.Demand, error) {
	if demand.ID <= 0 {
		return nil, domainErrors.ErrInvalidInput
	}
	if err := validateDemand(demand); err != nil {
		return nil, err
	}

	current, err := u.demands.GetByID(ctx, demand.ID)
	if err != nil {
		return nil, storeError(u.logger, demandSubsystem, "get", err)
	}
	if current.FulfilledAt != nil {
		return nil, domainErrors.ErrDemandFulfilled
	}

	changes := Reconcile(current.Items, demand.Items)
	if err := u.demands.Update(ctx, &demand, changes); err != nil {
		return nil, storeError(u.logger, demandSubsystem, "update", err)
	}

	updated, err := u.demands.GetByID(ctx, demand.ID)
	if err != nil {
		u.logger.Warn("reload edited demand", slog.Int64("demand_id", demand.ID), slog.String("error", err.Error()))
		return &demand, nil
	}
	return updated, nil
}

// ChangeStatus persists a new demand status. The transition into fulfilled
// merges approved items into department stock once per demand; replays are no-ops.
func (u *DemandUseCase) ChangeStatus(ctx context.Context, id int64, status model.DemandStatus) (model.Fulfillment, error) {
	if id <= 0 {
		return model.Fulfillment{}, domainErrors.ErrInvalidInput
	}
	if !status.Valid() {
		return model.Fulfillment{}, domainErrors.ErrInvalidStatus
	}

	if status != model.DemandStatusFulfilled {
		if err := u.demands.UpdateStatus(ctx, id, status); err != nil {
			return model.Fulfillment{}, storeError(u.logger, demandSubsystem, "update_status", err)
		}
		return model.Fulfillment{}, nil
	}

	result, err := u.demands.Fulfill(ctx, id, ApprovedDeltas)
	if err != nil {
		return model.Fulfillment{}, storeError(u.logger, demandSubsystem, "fulfill", err)
	}
	if result.Applied {
		u.logger.Info("demand fulfilled", slog.Int64("demand_id", id), slog.Int("merged_items", result.MergedItems))
	} else {
		u.logger.Info("demand already fulfilled, stock untouched", slog.Int64("demand_id", id))
	}
	return result, nil
}

// ApprovedDeltas selects the approved, not yet merged items of a demand.
func ApprovedDeltas(demand model.Demand) []model.StockDelta {
	var deltas []model.StockDelta
	for _, item := range demand.Items {
		if item.Status != model.DemandItemApproved || item.MergedAt != nil {
			continue
		}
		deltas = append(deltas, model.StockDelta{
			DemandItemID: item.ID,
			DepartmentID: demand.DepartmentID,
			EAN:          item.EAN,
			Name:         item.Name,
			Amount:       item.Amount,
			UnitPrice:    item.GrossUnitPrice,
		})
	}
	return deltas
}

func validateDemand(d model.Demand) error {
	if d.RequesterID <= 0 || d.DepartmentID <= 0 || d.Date.IsZero() {
		return domainErrors.ErrInvalidInput
	}
	if !d.Status.Valid() || d.Status == model.DemandStatusFulfilled {
		return domainErrors.ErrInvalidStatus
	}
	if len(d.Items) == 0 {
		return domainErrors.ErrNoItems
	}
	ids := make([]int64, 0, len(d.Items))
	for _, item := range d.Items {
		if blank(item.Name) || !ValidateEAN(item.EAN) || !item.Amount.IsPositive() || negative(item.GrossUnitPrice) {
			return domainErrors.ErrInvalidInput
		}
		if !item.Status.Valid() {
			return domainErrors.ErrInvalidStatus
		}
		ids = append(ids, item.ID)
	}
	if duplicateIDs(ids) {
		return domainErrors.ErrInvalidInput
	}
	return nil
}
