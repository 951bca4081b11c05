package model

import "time"

// Checklist is the diagnostic sheet of an order.
type Checklist struct {
	ID        int64
	OrderID   int64
	Entries   []ChecklistEntry
	UpdatedAt time.Time
}

// ChecklistEntry records the state of one vehicle subsystem.
type ChecklistEntry struct {
	Subsystem   string `json:"subsystem"`
	Status      string `json:"status"`
	Description string `json:"description"`
}
