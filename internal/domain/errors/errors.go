package errors

import "errors"

// Kind classifies domain failures.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindStore
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindStore:
		return "store"
	default:
		return "unknown"
	}
}

// CodeGeneric is reported for every failure that carries no specific code.
const CodeGeneric = "error"

// Error is a domain failure with a stable user-facing code.
type Error struct {
	Kind Kind
	Code string
	msg  string
}

func (e *Error) Error() string {
	return e.msg
}

func newError(kind Kind, code, msg string) *Error {
	return &Error{Kind: kind, Code: code, msg: msg}
}

var (
	ErrInvalidInput         = newError(KindValidation, "invalid_input", "invalid input")
	ErrInvalidStatus        = newError(KindValidation, "invalid_status", "invalid status")
	ErrNoTotalPartsPrice    = newError(KindValidation, "no_total_parts_price", "total parts price is required")
	ErrNoTotalServicesPrice = newError(KindValidation, "no_total_services_price", "total services price is required")
	ErrNoTotalPrice         = newError(KindValidation, "no_total_price", "total price is required")
	ErrTotalsMismatch       = newError(KindValidation, "totals_mismatch", "totals do not match line items")
	ErrNoItems              = newError(KindValidation, "no_items", "at least one item is required")
	ErrNoDescription        = newError(KindValidation, "no_description", "description is required")
	ErrNoSubmitDescription  = newError(KindValidation, "no_submit_description", "decision description is required")
	ErrInvalidDecision      = newError(KindValidation, "invalid_decision", "decision must be accepted or rejected")
	ErrNotFound             = newError(KindNotFound, "not_found", "not found")
	ErrMaxOrderReached      = newError(KindConflict, "max_order_reached", "monthly order capacity reached")
	ErrComplaintExists      = newError(KindConflict, "exist", "complaint already exists for order")
	ErrAlreadyExists        = newError(KindConflict, "already_exists", "already exists")
	ErrEstimateExists       = newError(KindConflict, "estimate_exists", "estimate already exists for order")
	ErrInvalidTransition    = newError(KindConflict, "invalid_transition", "status transition not allowed")
	ErrDemandFulfilled      = newError(KindConflict, "demand_fulfilled", "demand already fulfilled")
	ErrInsufficientStock    = newError(KindConflict, "insufficient_stock", "insufficient stock")
	ErrLineItemConflict     = newError(KindConflict, "line_item_conflict", "line item changed concurrently")
	ErrStore                = newError(KindStore, CodeGeneric, "storage failure")
)

// KindOf reports the kind of the first domain error in err's chain.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}

// CodeOf returns the user-facing code for err.
func CodeOf(err error) string {
	var de *Error
	if errors.As(err, &de) && de.Code != "" {
		return de.Code
	}
	return CodeGeneric
}
