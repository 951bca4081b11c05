package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/autoservice/internal/domain/errors"
	"github.com/polkiloo/autoservice/internal/domain/model"
)

type warehouseRepository struct {
	storage *Storage
}

const stockColumns = `id, department_id, ean, name, amount, unit_price, bin_location, updated_at`

func (r *warehouseRepository) ListByDepartment(ctx context.Context, departmentID int64) ([]model.StockItem, error) {
	query := `SELECT ` + stockColumns + ` FROM warehouse_stock WHERE department_id=$1 ORDER BY ean`
	rows, err := r.storage.pool.Query(ctx, query, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.StockItem
	for rows.Next() {
		item, err := scanStock(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *warehouseRepository) Create(ctx context.Context, item *model.StockItem) (*model.StockItem, error) {
	const query = `INSERT INTO warehouse_stock (department_id, ean, name, amount, unit_price, bin_location)
                   VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, updated_at`
	created := *item
	err := r.storage.pool.QueryRow(ctx, query,
		item.DepartmentID, item.EAN, item.Name, item.Amount, item.UnitPrice, item.BinLocation,
	).Scan(&created.ID, &created.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &created, nil
}

func (r *warehouseRepository) Adjust(ctx context.Context, departmentID int64, ean string, delta decimal.Decimal) (*model.StockItem, error) {
	query := `UPDATE warehouse_stock SET amount = amount + $3, updated_at = NOW()
              WHERE department_id=$1 AND ean=$2 AND amount + $3 >= 0
              RETURNING ` + stockColumns
	const exists = `SELECT EXISTS (SELECT 1 FROM warehouse_stock WHERE department_id=$1 AND ean=$2)`

	item, err := scanStock(r.storage.pool.QueryRow(ctx, query, departmentID, ean, delta))
	if err == nil {
		return item, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	var found bool
	if err := r.storage.pool.QueryRow(ctx, exists, departmentID, ean).Scan(&found); err != nil {
		return nil, err
	}
	if !found {
		return nil, domainErrors.ErrNotFound
	}
	return nil, domainErrors.ErrInsufficientStock
}

func scanStock(row pgx.Row) (*model.StockItem, error) {
	var item model.StockItem
	err := row.Scan(&item.ID, &item.DepartmentID, &item.EAN, &item.Name, &item.Amount, &item.UnitPrice, &item.BinLocation, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
