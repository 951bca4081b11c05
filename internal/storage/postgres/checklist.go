package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/autoservice/internal/domain/errors"
	"github.com/polkiloo/autoservice/internal/domain/model"
)

type checklistRepository struct {
	storage *Storage
}

func (r *checklistRepository) Save(ctx context.Context, checklist *model.Checklist) (*model.Checklist, error) {
	const query = `INSERT INTO checklists (order_id, entries) VALUES ($1, $2)
                   ON CONFLICT (order_id) DO UPDATE SET entries = EXCLUDED.entries, updated_at = NOW()
                   RETURNING id, updated_at`
	saved := *checklist
	err := r.storage.pool.QueryRow(ctx, query, checklist.OrderID, checklist.Entries).Scan(&saved.ID, &saved.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *checklistRepository) GetByOrder(ctx context.Context, orderID int64) (*model.Checklist, error) {
	const query = `SELECT id, order_id, entries, updated_at FROM checklists WHERE order_id=$1`
	var c model.Checklist
	err := r.storage.pool.QueryRow(ctx, query, orderID).Scan(&c.ID, &c.OrderID, &c.Entries, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}
