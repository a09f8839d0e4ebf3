package responses

// ErrorResponse is the standard error body. Details carries the downstream
// failure message on server errors and is omitted on validation errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// HealthResponse is the body returned by the health endpoint
type HealthResponse struct {
	Status string `json:"status"`
}
