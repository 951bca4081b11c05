package usecase

import (
	"context"
	"log/slog"

	domainErrors "github.com/polkiloo/autoservice/internal/domain/errors"
	"github.com/polkiloo/autoservice/internal/domain/model"
	"github.com/polkiloo/autoservice/internal/domain/repository"
)

const checklistSubsystem = "checklists"

// ChecklistUseCase keeps the diagnostic checklist of an order.
type ChecklistUseCase struct {
	checklists repository.ChecklistRepository
	orders     repository.OrderRepository
	logger     *slog.Logger
}

// NewChecklistUseCase constructs ChecklistUseCase.
func NewChecklistUseCase(checklists repository.ChecklistRepository, orders repository.OrderRepository, logger *slog.Logger) *ChecklistUseCase {
	return &ChecklistUseCase{checklists: checklists, orders: orders, logger: logger}
}

// Save replaces the checklist entries of an order.
func (u *ChecklistUseCase) Save(ctx context.Context, orderID int64, entries []model.ChecklistEntry) (*model.Checklist, error) {
	if orderID <= 0 {
		return nil, domainErrors.ErrInvalidInput
	}
	for _, e := range entries {
		if blank(e.Subsystem) {
			return nil, domainErrors.ErrInvalidInput
		}
	}
	if _, err := u.orders.GetByID(ctx, orderID); err != nil {
		return nil, storeError(u.logger, checklistSubsystem, "get_order", err)
	}
	if entries == nil {
		entries = []model.ChecklistEntry{}
	}

	saved, err := u.checklists.Save(ctx, &model.Checklist{OrderID: orderID, Entries: entries})
	if err != nil {
		return nil, storeError(u.logger, checklistSubsystem, "save", err)
	}
	return saved, nil
}

// Get returns the checklist of an order.
func (u *ChecklistUseCase) Get(ctx context.Context, orderID int64) (*model.Checklist, error) {
	if orderID <= 0 {
		return nil, domainErrors.ErrInvalidInput
	}
	checklist, err := u.checklists.GetByOrder(ctx, orderID)
	if err != nil {
		return nil, storeError(u.logger, checklistSubsystem, "get", err)
	}
	return checklist, nil
}
