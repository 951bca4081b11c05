package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DemandRequest describes a procurement request with its items.
type DemandRequest struct {
	RequesterID  int64        `json:"requester_id"`
	DepartmentID int64        `json:"department_id"`
	Date         time.Time    `json:"date"`
	Status       *int         `json:"status"`
	Items        []DemandItem `json:"items"`
}

// DemandItem is a requested part.
type DemandItem struct {
	ID             int64           `json:"id,omitempty"`
	Name           string          `json:"name"`
	EAN            string          `json:"ean"`
	GrossUnitPrice decimal.Decimal `json:"gross_unit_price"`
	Amount         decimal.Decimal `json:"amount"`
	Status         *int            `json:"status"`
	MergedAt       *time.Time      `json:"merged_at,omitempty"`
}

// DemandResponse describes a persisted demand.
type DemandResponse struct {
	Code         string       `json:"code,omitempty"`
	ID           int64        `json:"id"`
	RequesterID  int64        `json:"requester_id"`
	DepartmentID int64        `json:"department_id"`
	Date         time.Time    `json:"date"`
	Status       int          `json:"status"`
	FulfilledAt  *time.Time   `json:"fulfilled_at,omitempty"`
	Items        []DemandItem `json:"items"`
}

// FulfillmentResponse reports the outcome of a demand status change.
type FulfillmentResponse struct {
	Code        string `json:"code"`
	Applied     bool   `json:"applied"`
	MergedItems int    `json:"merged_items"`
}
