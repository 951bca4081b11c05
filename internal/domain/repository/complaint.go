package repository

import (
	"context"

	"github.com/polkiloo/autoservice/internal/domain/model"
)

// ComplaintRepository persists client complaints.
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *model.Complaint) (*model.Complaint, error)
	GetByID(ctx context.Context, id int64) (*model.Complaint, error)
	GetByOrder(ctx context.Context, orderID int64) (*model.Complaint, error)
	// UpdateStatus moves the complaint only when it is currently in from.
	UpdateStatus(ctx context.Context, id int64, from, to model.ComplaintStatus, submitDescription string) error
}
