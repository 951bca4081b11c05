package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// EstimateRequest is the full estimate content submitted on create and edit.
// Line items carrying an id update the persisted line, lines without one are added
// and persisted lines missing from the request are removed.
type EstimateRequest struct {
	TotalPartsPrice    decimal.NullDecimal `json:"total_parts_price"`
	TotalServicesPrice decimal.NullDecimal `json:"total_services_price"`
	TotalPrice         decimal.NullDecimal `json:"total_price"`
	Parts              []EstimatePart      `json:"parts"`
	Services           []EstimateService   `json:"services"`
}

// EstimatePart is a part line.
type EstimatePart struct {
	ID             int64           `json:"id,omitempty"`
	Name           string          `json:"name"`
	EAN            string          `json:"ean"`
	Amount         decimal.Decimal `json:"amount"`
	GrossUnitPrice decimal.Decimal `json:"gross_unit_price"`
	TotalPrice     decimal.Decimal `json:"total_price"`
	Source         string          `json:"source,omitempty"`
}

// EstimateService is a labour line.
type EstimateService struct {
	ID             int64           `json:"id,omitempty"`
	Name           string          `json:"name"`
	Amount         decimal.Decimal `json:"amount"`
	GrossUnitPrice decimal.Decimal `json:"gross_unit_price"`
	TotalPrice     decimal.Decimal `json:"total_price"`
	Source         string          `json:"source,omitempty"`
}

// EstimateResponse describes a persisted estimate.
type EstimateResponse struct {
	Code               string            `json:"code,omitempty"`
	ID                 int64             `json:"id"`
	OrderID            int64             `json:"order_id"`
	TotalPartsPrice    decimal.Decimal   `json:"total_parts_price"`
	TotalServicesPrice decimal.Decimal   `json:"total_services_price"`
	TotalPrice         decimal.Decimal   `json:"total_price"`
	Parts              []EstimatePart    `json:"parts"`
	Services           []EstimateService `json:"services"`
	UpdatedAt          time.Time         `json:"updated_at"`
}
