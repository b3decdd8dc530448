package dto

// HealthResponse represents the API response for the health probe
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Pool     any    `json:"pool,omitempty"`
}
