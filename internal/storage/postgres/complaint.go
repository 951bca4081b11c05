package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/autoservice/internal/domain/errors"
	"github.com/polkiloo/autoservice/internal/domain/model"
)

type complaintRepository struct {
	storage *Storage
}

const complaintColumns = `id, order_id, status, description, submit_description, submitted_at`

func (r *complaintRepository) Create(ctx context.Context, complaint *model.Complaint) (*model.Complaint, error) {
	const query = `INSERT INTO complaints (order_id, status, description, submitted_at)
                   VALUES ($1, $2, $3, $4) RETURNING id`
	created := *complaint
	err := r.storage.pool.QueryRow(ctx, query, complaint.OrderID, complaint.Status, complaint.Description, complaint.Date).Scan(&created.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrComplaintExists
		}
		return nil, err
	}
	return &created, nil
}

func (r *complaintRepository) GetByID(ctx context.Context, id int64) (*model.Complaint, error) {
	return r.get(ctx, `SELECT `+complaintColumns+` FROM complaints WHERE id=$1`, id)
}

func (r *complaintRepository) GetByOrder(ctx context.Context, orderID int64) (*model.Complaint, error) {
	return r.get(ctx, `SELECT `+complaintColumns+` FROM complaints WHERE order_id=$1`, orderID)
}

func (r *complaintRepository) get(ctx context.Context, query string, arg int64) (*model.Complaint, error) {
	var c model.Complaint
	err := r.storage.pool.QueryRow(ctx, query, arg).Scan(&c.ID, &c.OrderID, &c.Status, &c.Description, &c.SubmitDescription, &c.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *complaintRepository) UpdateStatus(ctx context.Context, id int64, from, to model.ComplaintStatus, submitDescription string) error {
	const update = `UPDATE complaints SET status=$1, submit_description=COALESCE(NULLIF($2, ''), submit_description)
                    WHERE id=$3 AND status=$4`
	const exists = `SELECT EXISTS (SELECT 1 FROM complaints WHERE id=$1)`

	tag, err := r.storage.pool.Exec(ctx, update, to, submitDescription, id, from)
	if err != nil {
		return err
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var found bool
	if err := r.storage.pool.QueryRow(ctx, exists, id).Scan(&found); err != nil {
		return err
	}
	if !found {
		return domainErrors.ErrNotFound
	}
	return domainErrors.ErrInvalidTransition
}
