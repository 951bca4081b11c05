package repository

import (
	"context"
	"time"

	"github.com/polkiloo/autoservice/internal/domain/model"
)

// OrderRepository describes persistence operations with repair orders.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	CountStartedBetween(ctx context.Context, from, to time.Time) (int, error)
	UpdateStatus(ctx context.Context, id int64, change model.StatusChange) error
}
