package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/autoservice/internal/domain/errors"
	"github.com/polkiloo/autoservice/internal/domain/model"
	"github.com/polkiloo/autoservice/internal/domain/repository"
)

type estimateRepository struct {
	storage *Storage
}

const estimateColumns = `id, order_id, total_parts_price, total_services_price, total_price, created_at, updated_at`

func (r *estimateRepository) Create(ctx context.Context, estimate *model.Estimate) (*model.Estimate, error) {
	const insertEstimate = `INSERT INTO estimates (order_id, total_parts_price, total_services_price, total_price)
                            VALUES ($1, $2, $3, $4)
                            RETURNING id, created_at, updated_at`
	created := *estimate
	created.Parts = make([]model.EstimatePart, 0, len(estimate.Parts))
	created.Services = make([]model.EstimateService, 0, len(estimate.Services))

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, insertEstimate,
			estimate.OrderID, estimate.TotalPartsPrice, estimate.TotalServicesPrice, estimate.TotalPrice,
		).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return domainErrors.ErrEstimateExists
			}
			return err
		}
		for _, p := range estimate.Parts {
			if err := insertPart(ctx, tx, created.ID, &p); err != nil {
				return err
			}
			created.Parts = append(created.Parts, p)
		}
		for _, s := range estimate.Services {
			if err := insertService(ctx, tx, created.ID, &s); err != nil {
				return err
			}
			created.Services = append(created.Services, s)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *estimateRepository) GetByID(ctx context.Context, id int64) (*model.Estimate, error) {
	return r.get(ctx, `SELECT `+estimateColumns+` FROM estimates WHERE id=$1`, id)
}

func (r *estimateRepository) GetByOrder(ctx context.Context, orderID int64) (*model.Estimate, error) {
	return r.get(ctx, `SELECT `+estimateColumns+` FROM estimates WHERE order_id=$1`, orderID)
}

func (r *estimateRepository) get(ctx context.Context, query string, arg int64) (*model.Estimate, error) {
	var e model.Estimate
	err := r.storage.pool.QueryRow(ctx, query, arg).Scan(
		&e.ID, &e.OrderID, &e.TotalPartsPrice, &e.TotalServicesPrice, &e.TotalPrice, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	if e.Parts, err = listParts(ctx, r.storage.pool, e.ID); err != nil {
		return nil, err
	}
	if e.Services, err = listServices(ctx, r.storage.pool, e.ID); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *estimateRepository) Update(ctx context.Context, estimate *model.Estimate, plan repository.EstimateLinesPlan) error {
	const updateHeader = `UPDATE estimates SET total_parts_price=$1, total_services_price=$2, total_price=$3, updated_at=NOW()
                          WHERE id=$4`
	const deleteParts = `DELETE FROM estimate_parts WHERE estimate_id=$1 AND id = ANY($2)`
	const updatePart = `UPDATE estimate_parts SET name=$1, ean=$2, amount=$3, gross_unit_price=$4, total_price=$5, source=$6
                        WHERE id=$7 AND estimate_id=$8`
	const deleteServices = `DELETE FROM estimate_services WHERE estimate_id=$1 AND id = ANY($2)`
	const updateService = `UPDATE estimate_services SET name=$1, amount=$2, gross_unit_price=$3, total_price=$4, source=$5
                           WHERE id=$6 AND estimate_id=$7`

	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		current, err := lockEstimate(ctx, tx, estimate.ID)
		if err != nil {
			return err
		}
		if current.OrderID != estimate.OrderID {
			return domainErrors.ErrNotFound
		}
		parts, services := plan(*current)

		if _, err := tx.Exec(ctx, updateHeader, estimate.TotalPartsPrice, estimate.TotalServicesPrice, estimate.TotalPrice, estimate.ID); err != nil {
			return err
		}

		if len(parts.Delete) > 0 {
			if _, err := tx.Exec(ctx, deleteParts, estimate.ID, parts.Delete); err != nil {
				return err
			}
		}
		for _, p := range parts.Update {
			tag, err := tx.Exec(ctx, updatePart, p.Name, p.EAN, p.Amount, p.GrossUnitPrice, p.TotalPrice, p.Source, p.ID, estimate.ID)
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				return domainErrors.ErrLineItemConflict
			}
		}
		for _, p := range parts.Insert {
			if err := insertPart(ctx, tx, estimate.ID, &p); err != nil {
				return err
			}
		}

		if len(services.Delete) > 0 {
			if _, err := tx.Exec(ctx, deleteServices, estimate.ID, services.Delete); err != nil {
				return err
			}
		}
		for _, s := range services.Update {
			tag, err := tx.Exec(ctx, updateService, s.Name, s.Amount, s.GrossUnitPrice, s.TotalPrice, s.Source, s.ID, estimate.ID)
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				return domainErrors.ErrLineItemConflict
			}
		}
		for _, s := range services.Insert {
			if err := insertService(ctx, tx, estimate.ID, &s); err != nil {
				return err
			}
		}
		return nil
	})
}

// lockEstimate takes a row lock on the estimate and reads its lines inside tx.
func lockEstimate(ctx context.Context, tx pgx.Tx, id int64) (*model.Estimate, error) {
	const query = `SELECT order_id FROM estimates WHERE id=$1 FOR UPDATE`
	current := model.Estimate{ID: id}
	if err := tx.QueryRow(ctx, query, id).Scan(&current.OrderID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	var err error
	if current.Parts, err = listParts(ctx, tx, id); err != nil {
		return nil, err
	}
	if current.Services, err = listServices(ctx, tx, id); err != nil {
		return nil, err
	}
	return &current, nil
}

func insertPart(ctx context.Context, q querier, estimateID int64, p *model.EstimatePart) error {
	const query = `INSERT INTO estimate_parts (estimate_id, name, ean, amount, gross_unit_price, total_price, source)
                   VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	p.EstimateID = estimateID
	return q.QueryRow(ctx, query, estimateID, p.Name, p.EAN, p.Amount, p.GrossUnitPrice, p.TotalPrice, p.Source).Scan(&p.ID)
}

func insertService(ctx context.Context, q querier, estimateID int64, s *model.EstimateService) error {
	const query = `INSERT INTO estimate_services (estimate_id, name, amount, gross_unit_price, total_price, source)
                   VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	s.EstimateID = estimateID
	return q.QueryRow(ctx, query, estimateID, s.Name, s.Amount, s.GrossUnitPrice, s.TotalPrice, s.Source).Scan(&s.ID)
}

func listParts(ctx context.Context, q querier, estimateID int64) ([]model.EstimatePart, error) {
	const query = `SELECT id, estimate_id, name, ean, amount, gross_unit_price, total_price, source
                   FROM estimate_parts WHERE estimate_id=$1 ORDER BY id`
	rows, err := q.Query(ctx, query, estimateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.EstimatePart
	for rows.Next() {
		var p model.EstimatePart
		if err := rows.Scan(&p.ID, &p.EstimateID, &p.Name, &p.EAN, &p.Amount, &p.GrossUnitPrice, &p.TotalPrice, &p.Source); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func listServices(ctx context.Context, q querier, estimateID int64) ([]model.EstimateService, error) {
	const query = `SELECT id, estimate_id, name, amount, gross_unit_price, total_price, source
                   FROM estimate_services WHERE estimate_id=$1 ORDER BY id`
	rows, err := q.Query(ctx, query, estimateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.EstimateService
	for rows.Next() {
		var s model.EstimateService
		if err := rows.Scan(&s.ID, &s.EstimateID, &s.Name, &s.Amount, &s.GrossUnitPrice, &s.TotalPrice, &s.Source); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
