package usecase

// Policy holds tenant-configurable business rules injected at construction.
type Policy struct {
	// MonthlyOrderCap limits orders starting in one calendar month. Zero disables the check.
	MonthlyOrderCap int
	// VerifyEstimateTotals rejects caller totals that differ from line-item sums.
	VerifyEstimateTotals bool
}

// Result codes reported by successful operations.
const (
	CodeOrderAdded          = "order_added"
	CodeStatusChanged       = "status_changed"
	CodeChecklistSaved      = "checklist_saved"
	CodeEstimateAdded       = "estimate_added"
	CodeEstimateEdited      = "estimate_edited"
	CodeComplaintAdded      = "complaint_added"
	CodeComplaintProcessing = "complaint_processing"
	CodeComplaintDecided    = "complaint_decided"
	CodeDemandAdded         = "demand_added"
	CodeDemandEdited        = "demand_edited"
	CodeDemandStatusChanged = "demand_status_changed"
	CodeStockAdded          = "stock_added"
	CodeStockAdjusted       = "stock_adjusted"
)
