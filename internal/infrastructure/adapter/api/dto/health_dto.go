package dto

// HealthResponse represents the mirror health check
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
