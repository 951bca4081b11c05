package model

import "time"

// ComplaintStatus describes complaint handling progress.
type ComplaintStatus string

const (
	ComplaintStatusSubmitted  ComplaintStatus = "submitted"
	ComplaintStatusProcessing ComplaintStatus = "processing"
	ComplaintStatusAccepted   ComplaintStatus = "accepted"
	ComplaintStatusRejected   ComplaintStatus = "rejected"
)

// Terminal reports whether no further transition is possible.
func (s ComplaintStatus) Terminal() bool {
	return s == ComplaintStatusAccepted || s == ComplaintStatusRejected
}

// Complaint is raised by a client against a completed order.
type Complaint struct {
	ID                int64
	OrderID           int64
	Status            ComplaintStatus
	Description       string
	SubmitDescription string
	Date              time.Time
}
