package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockRequest adds a stock row manually.
type StockRequest struct {
	EAN         string          `json:"ean"`
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	BinLocation string          `json:"bin_location,omitempty"`
}

// AdjustRequest changes a stock amount by a signed delta.
type AdjustRequest struct {
	Delta decimal.Decimal `json:"delta"`
}

// StockItem describes a department stock row.
type StockItem struct {
	ID           int64           `json:"id"`
	DepartmentID int64           `json:"department_id"`
	EAN          string          `json:"ean"`
	Name         string          `json:"name"`
	Amount       decimal.Decimal `json:"amount"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	BinLocation  string          `json:"bin_location,omitempty"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// StockEnvelope wraps a stock row with the result code.
type StockEnvelope struct {
	Code string    `json:"code"`
	Item StockItem `json:"item"`
}
