package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/autoservice/internal/domain/model"
)

// WarehouseRepository manages department stock.
type WarehouseRepository interface {
	ListByDepartment(ctx context.Context, departmentID int64) ([]model.StockItem, error)
	Create(ctx context.Context, item *model.StockItem) (*model.StockItem, error)
	Adjust(ctx context.Context, departmentID int64, ean string, delta decimal.Decimal) (*model.StockItem, error)
}
