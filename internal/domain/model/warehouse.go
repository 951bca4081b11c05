package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockItem is a department inventory row, unique per (department, ean).
type StockItem struct {
	ID           int64
	DepartmentID int64
	EAN          string
	Name         string
	Amount       decimal.Decimal
	UnitPrice    decimal.Decimal
	BinLocation  string
	UpdatedAt    time.Time
}

// StockDelta is an insert-or-increment request against department stock.
type StockDelta struct {
	DemandItemID int64
	DepartmentID int64
	EAN          string
	Name         string
	Amount       decimal.Decimal
	UnitPrice    decimal.Decimal
}
