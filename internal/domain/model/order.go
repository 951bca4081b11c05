package model

import "time"

// OrderStatus is the position of an order in the repair pipeline.
type OrderStatus int

const (
	OrderStatusAccepted OrderStatus = iota
	OrderStatusDiagnosis
	OrderStatusAwaitingApproval
	OrderStatusInRepair
	OrderStatusReadyForPickup
	OrderStatusCompleted
	OrderStatusCancelled
	OrderStatusArchived
)

// Valid reports whether s is one of the known pipeline positions.
func (s OrderStatus) Valid() bool {
	return s >= OrderStatusAccepted && s <= OrderStatusArchived
}

// Order describes a single vehicle repair job.
type Order struct {
	ID                   int64
	VehicleID            int64
	ClientID             int64
	DepartmentID         int64
	ClientDiagnose       string
	Status               OrderStatus
	StartDate            time.Time
	EndDate              *time.Time
	SendDoneNotification bool
	Images               []OrderImage
	CreatedAt            time.Time
}

// OrderImage is a photo taken at intake.
type OrderImage struct {
	ID      int64
	OrderID int64
	Path    string
}

// StatusChange carries the columns written by a status transition.
type StatusChange struct {
	Status               OrderStatus
	EndDate              *time.Time
	SendDoneNotification bool
}
