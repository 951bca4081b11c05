package usecase

import "time"

// Exports unexported identifiers for the external usecase_test package.
var (
	StoreError   = storeError
	DuplicateIDs = duplicateIDs
	MonthBounds  = monthBounds
)

const MaxEANLength = maxEANLength

// SetNow replaces the order use case clock.
func (u *OrderUseCase) SetNow(now func() time.Time) { u.now = now }

// SetNow replaces the complaint use case clock.
func (u *ComplaintUseCase) SetNow(now func() time.Time) { u.now = now }
