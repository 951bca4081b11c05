package dto

import "time"

// ComplaintRequest opens a complaint.
type ComplaintRequest struct {
	Description string `json:"description"`
}

// DecisionRequest closes a complaint under processing.
type DecisionRequest struct {
	Decision          string `json:"decision"`
	SubmitDescription string `json:"submit_description"`
}

// ComplaintResponse describes a complaint.
type ComplaintResponse struct {
	Code              string    `json:"code,omitempty"`
	ID                int64     `json:"id"`
	OrderID           int64     `json:"order_id"`
	Status            string    `json:"status"`
	Description       string    `json:"description"`
	SubmitDescription string    `json:"submit_description,omitempty"`
	Date              time.Time `json:"date"`
}
