package dto

import (
	"time"

	"github.com/polkiloo/autoservice/internal/domain/model"
)

// ChecklistRequest replaces the entries of an order checklist.
type ChecklistRequest struct {
	Entries []model.ChecklistEntry `json:"entries"`
}

// ChecklistResponse describes a saved checklist.
type ChecklistResponse struct {
	Code      string                 `json:"code,omitempty"`
	OrderID   int64                  `json:"order_id"`
	Entries   []model.ChecklistEntry `json:"entries"`
	UpdatedAt time.Time              `json:"updated_at"`
}
