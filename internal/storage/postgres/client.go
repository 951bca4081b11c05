package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/autoservice/internal/domain/errors"
	"github.com/polkiloo/autoservice/internal/domain/model"
)

type clientRepository struct {
	storage *Storage
}

func (r *clientRepository) GetByID(ctx context.Context, id int64) (*model.Client, error) {
	const query = `SELECT id, name, email, phone FROM clients WHERE id=$1`
	var c model.Client
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Email, &c.Phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *clientRepository) GetVehicle(ctx context.Context, id int64) (*model.Vehicle, error) {
	const query = `SELECT id, client_id, make, model, plate_number FROM vehicles WHERE id=$1`
	var v model.Vehicle
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&v.ID, &v.ClientID, &v.Make, &v.Model, &v.PlateNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}
