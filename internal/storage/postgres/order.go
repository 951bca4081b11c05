package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/autoservice/internal/domain/errors"
	"github.com/polkiloo/autoservice/internal/domain/model"
)

type orderRepository struct {
	storage *Storage
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	const insertOrder = `INSERT INTO orders (vehicle_id, client_id, department_id, client_diagnose, status, start_date)
                         VALUES ($1, $2, $3, $4, $5, $6)
                         RETURNING id, created_at`
	const insertImage = `INSERT INTO order_images (order_id, path) VALUES ($1, $2) RETURNING id`

	created := *order
	created.Images = make([]model.OrderImage, 0, len(order.Images))
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, insertOrder,
			order.VehicleID, order.ClientID, order.DepartmentID, order.ClientDiagnose, order.Status, order.StartDate,
		).Scan(&created.ID, &created.CreatedAt)
		if err != nil {
			return err
		}
		for _, img := range order.Images {
			img.OrderID = created.ID
			if err := tx.QueryRow(ctx, insertImage, created.ID, img.Path).Scan(&img.ID); err != nil {
				return err
			}
			created.Images = append(created.Images, img)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	const query = `SELECT id, vehicle_id, client_id, department_id, client_diagnose, status, start_date, end_date, send_done_notification, created_at
                   FROM orders WHERE id=$1`
	var o model.Order
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.VehicleID, &o.ClientID, &o.DepartmentID, &o.ClientDiagnose,
		&o.Status, &o.StartDate, &o.EndDate, &o.SendDoneNotification, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	images, err := r.images(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Images = images
	return &o, nil
}

func (r *orderRepository) images(ctx context.Context, orderID int64) ([]model.OrderImage, error) {
	const query = `SELECT id, order_id, path FROM order_images WHERE order_id=$1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.OrderImage
	for rows.Next() {
		var img model.OrderImage
		if err := rows.Scan(&img.ID, &img.OrderID, &img.Path); err != nil {
			return nil, err
		}
		result = append(result, img)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) CountStartedBetween(ctx context.Context, from, to time.Time) (int, error) {
	const query = `SELECT COUNT(*) FROM orders WHERE start_date >= $1 AND start_date < $2`
	var count int
	if err := r.storage.pool.QueryRow(ctx, query, from, to).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, change model.StatusChange) error {
	const query = `UPDATE orders SET status=$1, end_date=$2, send_done_notification=$3 WHERE id=$4`
	tag, err := r.storage.pool.Exec(ctx, query, change.Status, change.EndDate, change.SendDoneNotification, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
