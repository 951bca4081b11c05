package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estimate is the priced breakdown of parts and services for an order.
type Estimate struct {
	ID                 int64
	OrderID            int64
	TotalPartsPrice    decimal.Decimal
	TotalServicesPrice decimal.Decimal
	TotalPrice         decimal.Decimal
	Parts              []EstimatePart
	Services           []EstimateService
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// EstimatePart is a part line of an estimate.
type EstimatePart struct {
	ID             int64
	EstimateID     int64
	Name           string
	EAN            string
	Amount         decimal.Decimal
	GrossUnitPrice decimal.Decimal
	TotalPrice     decimal.Decimal
	Source         string
}

// LineID implements LineItem.
func (p EstimatePart) LineID() int64 { return p.ID }

// EstimateService is a labour line of an estimate.
type EstimateService struct {
	ID             int64
	EstimateID     int64
	Name           string
	Amount         decimal.Decimal
	GrossUnitPrice decimal.Decimal
	TotalPrice     decimal.Decimal
	Source         string
}

// LineID implements LineItem.
func (s EstimateService) LineID() int64 { return s.ID }

// Totals are the caller-supplied estimate sums. Unset values are invalid.
type Totals struct {
	Parts    decimal.NullDecimal
	Services decimal.NullDecimal
	Total    decimal.NullDecimal
}
