package repository

import (
	"context"

	"github.com/polkiloo/autoservice/internal/domain/model"
)

// ClientRepository reads clients and their vehicles.
type ClientRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Client, error)
	GetVehicle(ctx context.Context, id int64) (*model.Vehicle, error)
}
