package repository

import (
	"context"

	"github.com/polkiloo/autoservice/internal/domain/model"
)

// ChecklistRepository stores one diagnostic checklist per order.
type ChecklistRepository interface {
	Save(ctx context.Context, checklist *model.Checklist) (*model.Checklist, error)
	GetByOrder(ctx context.Context, orderID int64) (*model.Checklist, error)
}
