package models

// HealthCheckResponse returns the health check response struct, exported for testing purposes
type HealthCheckResponse struct {
	Alive   bool   `json:"alive"`
	Version string `json:"version,omitempty"`
}
