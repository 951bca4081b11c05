package usecase

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/autoservice/internal/domain/errors"
	"github.com/polkiloo/autoservice/internal/domain/model"
	"github.com/polkiloo/autoservice/internal/domain/repository"
)

const warehouseSubsystem = "warehouse"

// WarehouseUseCase exposes manual department stock management.
type WarehouseUseCase struct {
	stock  repository.WarehouseRepository
	logger *slog.Logger
}

// NewWarehouseUseCase constructs WarehouseUseCase.
func NewWarehouseUseCase(stock repository.WarehouseRepository, logger *slog.Logger) *WarehouseUseCase {
	return &WarehouseUseCase{stock: stock, logger: logger}
}

// Stock lists department stock ordered by EAN.
func (u *WarehouseUseCase) Stock(ctx context.Context, departmentID int64) ([]model.StockItem, error) {
	if departmentID <= 0 {
		return nil, domainErrors.ErrInvalidInput
	}
	items, err := u.stock.ListByDepartment(ctx, departmentID)
	if err != nil {
		return nil, storeError(u.logger, warehouseSubsystem, "list", err)
	}
	return items, nil
}

// Add inserts a new stock row. A duplicate (department, ean) is a conflict.
func (u *WarehouseUseCase) Add(ctx context.Context, item model.StockItem) (*model.StockItem, error) {
	if item.DepartmentID <= 0 || !ValidateEAN(item.EAN) || blank(item.Name) ||
		negative(item.Amount) || negative(item.UnitPrice) {
		return nil, domainErrors.ErrInvalidInput
	}
	item.ID = 0

	created, err := u.stock.Create(ctx, &item)
	if err != nil {
		return nil, storeError(u.logger, warehouseSubsystem, "create", err)
	}
	return created, nil
}

// Adjust changes the amount of a stock row by delta atomically.
func (u *WarehouseUseCase) Adjust(ctx context.Context, departmentID int64, ean string, delta decimal.Decimal) (*model.StockItem, error) {
	if departmentID <= 0 || !ValidateEAN(ean) || delta.IsZero() {
		return nil, domainErrors.ErrInvalidInput
	}
	item, err := u.stock.Adjust(ctx, departmentID, ean, delta)
	if err != nil {
		return nil, storeError(u.logger, warehouseSubsystem, "adjust", err)
	}
	return item, nil
}
