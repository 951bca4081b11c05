package dto

import "time"

// CreateOrderRequest describes order intake payload.
type CreateOrderRequest struct {
	VehicleID      int64      `json:"vehicle_id"`
	ClientID       int64      `json:"client_id"`
	DepartmentID   int64      `json:"department_id"`
	ClientDiagnose string     `json:"client_diagnose"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	Images         []string   `json:"images,omitempty"`
}

// StatusRequest carries a numeric status transition target.
type StatusRequest struct {
	Status *int `json:"status"`
}

// OrderResponse describes a repair order.
type OrderResponse struct {
	ID                   int64      `json:"id"`
	VehicleID            int64      `json:"vehicle_id"`
	ClientID             int64      `json:"client_id"`
	DepartmentID         int64      `json:"department_id"`
	ClientDiagnose       string     `json:"client_diagnose"`
	Status               int        `json:"status"`
	StartDate            time.Time  `json:"start_date"`
	EndDate              *time.Time `json:"end_date,omitempty"`
	SendDoneNotification bool       `json:"send_done_notification"`
	Images               []string   `json:"images"`
}

// OrderEnvelope wraps an order with the result code.
type OrderEnvelope struct {
	Code  string        `json:"code,omitempty"`
	Order OrderResponse `json:"order"`
}
