package postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/autoservice/internal/domain/errors"
	"github.com/polkiloo/autoservice/internal/domain/model"
	"github.com/polkiloo/autoservice/internal/domain/repository"
)

type demandRepository struct {
	storage *Storage
}

func (r *demandRepository) Create(ctx context.Context, demand *model.Demand) (*model.Demand, error) {
	const insertDemand = `INSERT INTO demands (requester_id, department_id, demand_date, status)
                          VALUES ($1, $2, $3, $4) RETURNING id`
	created := *demand
	created.Items = make([]model.DemandItem, 0, len(demand.Items))

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, insertDemand, demand.RequesterID, demand.DepartmentID, demand.Date, demand.Status).Scan(&created.ID)
		if err != nil {
			return err
		}
		for _, item := range demand.Items {
			if err := insertDemandItem(ctx, tx, created.ID, &item); err != nil {
				return err
			}
			created.Items = append(created.Items, item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *demandRepository) GetByID(ctx context.Context, id int64) (*model.Demand, error) {
	const query = `SELECT id, requester_id, department_id, demand_date, status, fulfilled_at FROM demands WHERE id=$1`
	var d model.Demand
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&d.ID, &d.RequesterID, &d.DepartmentID, &d.Date, &d.Status, &d.FulfilledAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	if d.Items, err = listDemandItems(ctx, r.storage.pool, d.ID); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *demandRepository) Update(ctx context.Context, demand *model.Demand, items model.ItemChanges[model.DemandItem]) error {
	const updateHeader = `UPDATE demands SET requester_id=$1, department_id=$2, demand_date=$3, status=$4 WHERE id=$5`
	const deleteItems = `DELETE FROM demand_items WHERE demand_id=$1 AND id = ANY($2)`
	const updateItem = `UPDATE demand_items SET name=$1, ean=$2, gross_unit_price=$3, amount=$4, status=$5
                        WHERE id=$6 AND demand_id=$7`

	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		fulfilledAt, err := lockDemand(ctx, tx, demand.ID)
		if err != nil {
			return err
		}
		if fulfilledAt != nil {
			return domainErrors.ErrDemandFulfilled
		}
		if _, err := tx.Exec(ctx, updateHeader, demand.RequesterID, demand.DepartmentID, demand.Date, demand.Status, demand.ID); err != nil {
			return err
		}

		if len(items.Delete) > 0 {
			if _, err := tx.Exec(ctx, deleteItems, demand.ID, items.Delete); err != nil {
				return err
			}
		}
		for _, item := range items.Update {
			if _, err := tx.Exec(ctx, updateItem, item.Name, item.EAN, item.GrossUnitPrice, item.Amount, item.Status, item.ID, demand.ID); err != nil {
				return err
			}
		}
		for _, item := range items.Insert {
			if err := insertDemandItem(ctx, tx, demand.ID, &item); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *demandRepository) UpdateStatus(ctx context.Context, id int64, status model.DemandStatus) error {
	const query = `UPDATE demands SET status=$1 WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *demandRepository) Fulfill(ctx context.Context, id int64, plan repository.FulfillmentPlan) (model.Fulfillment, error) {
	const setStatus = `UPDATE demands SET status=$1 WHERE id=$2`
	const mergeStock = `INSERT INTO warehouse_stock (department_id, ean, name, amount, unit_price)
                        VALUES ($1, $2, $3, $4, $5)
                        ON CONFLICT (department_id, ean)
                        DO UPDATE SET amount = warehouse_stock.amount + EXCLUDED.amount, updated_at = NOW()`
	const markMerged = `UPDATE demand_items SET merged_at=$1 WHERE id=$2`
	const markFulfilled = `UPDATE demands SET status=$1, fulfilled_at=$2 WHERE id=$3`

	var result model.Fulfillment
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		fulfilledAt, err := lockDemand(ctx, tx, id)
		if err != nil {
			return err
		}
		if fulfilledAt != nil {
			_, err := tx.Exec(ctx, setStatus, model.DemandStatusFulfilled, id)
			return err
		}

		demand, err := r.lockedDemand(ctx, tx, id)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		for _, delta := range plan(*demand) {
			if _, err := tx.Exec(ctx, mergeStock, delta.DepartmentID, delta.EAN, delta.Name, delta.Amount, delta.UnitPrice); err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, markMerged, now, delta.DemandItemID); err != nil {
				return err
			}
			result.MergedItems++
		}

		if _, err := tx.Exec(ctx, markFulfilled, model.DemandStatusFulfilled, now, id); err != nil {
			return err
		}
		result.Applied = true
		return nil
	})
	if err != nil {
		return model.Fulfillment{}, err
	}

	if result.Applied {
		r.storage.logger.Debug("demand merged into stock", slog.Int64("demand_id", id), slog.Int("items", result.MergedItems))
	}
	return result, nil
}

func (r *demandRepository) lockedDemand(ctx context.Context, tx pgx.Tx, id int64) (*model.Demand, error) {
	const query = `SELECT id, requester_id, department_id, demand_date, status FROM demands WHERE id=$1`
	var d model.Demand
	if err := tx.QueryRow(ctx, query, id).Scan(&d.ID, &d.RequesterID, &d.DepartmentID, &d.Date, &d.Status); err != nil {
		return nil, err
	}
	items, err := listDemandItems(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	d.Items = items
	return &d, nil
}

// lockDemand takes a row lock on the demand and reports its fulfillment time.
func lockDemand(ctx context.Context, tx pgx.Tx, id int64) (*time.Time, error) {
	const query = `SELECT fulfilled_at FROM demands WHERE id=$1 FOR UPDATE`
	var fulfilledAt *time.Time
	if err := tx.QueryRow(ctx, query, id).Scan(&fulfilledAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return fulfilledAt, nil
}

func insertDemandItem(ctx context.Context, q querier, demandID int64, item *model.DemandItem) error {
	const query = `INSERT INTO demand_items (demand_id, name, ean, gross_unit_price, amount, status)
                   VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	item.DemandID = demandID
	return q.QueryRow(ctx, query, demandID, item.Name, item.EAN, item.GrossUnitPrice, item.Amount, item.Status).Scan(&item.ID)
}

func listDemandItems(ctx context.Context, q querier, demandID int64) ([]model.DemandItem, error) {
	const query = `SELECT id, demand_id, name, ean, gross_unit_price, amount, status, merged_at
                   FROM demand_items WHERE demand_id=$1 ORDER BY id`
	rows, err := q.Query(ctx, query, demandID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.DemandItem
	for rows.Next() {
		var item model.DemandItem
		if err := rows.Scan(&item.ID, &item.DemandID, &item.Name, &item.EAN, &item.GrossUnitPrice, &item.Amount, &item.Status, &item.MergedAt); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
