package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DemandStatus describes procurement request lifecycle.
type DemandStatus int

const (
	DemandStatusDraft DemandStatus = iota
	DemandStatusRequested
	DemandStatusApproved
	DemandStatusRejected
	DemandStatusFulfilled
)

// Valid reports whether s is a known demand status.
func (s DemandStatus) Valid() bool {
	return s >= DemandStatusDraft && s <= DemandStatusFulfilled
}

// DemandItemStatus is the approval outcome of a single line.
type DemandItemStatus int

const (
	DemandItemPending DemandItemStatus = iota
	DemandItemApproved
	DemandItemRejected
)

// Valid reports whether s is a known item status.
func (s DemandItemStatus) Valid() bool {
	return s >= DemandItemPending && s <= DemandItemRejected
}

// Demand is an internal procurement request of a department.
type Demand struct {
	ID           int64
	RequesterID  int64
	DepartmentID int64
	Date         time.Time
	Status       DemandStatus
	FulfilledAt  *time.Time
	Items        []DemandItem
}

// DemandItem is a requested part.
type DemandItem struct {
	ID             int64
	DemandID       int64
	Name           string
	EAN            string
	GrossUnitPrice decimal.Decimal
	Amount         decimal.Decimal
	Status         DemandItemStatus
	MergedAt       *time.Time
}

// LineID implements LineItem.
func (i DemandItem) LineID() int64 { return i.ID }

// Fulfillment reports the stock merge performed by a fulfilled transition.
type Fulfillment struct {
	Applied     bool
	MergedItems int
}
