package dto

// ErrorResponse carries the stable code of a failed request.
type ErrorResponse struct {
	Code string `json:"code"`
}

// HealthResponse reports service availability.
type HealthResponse struct {
	Status string `json:"status"`
}
