package models

import "time"

// Risk levels assigned to a hospital prediction or to the city summary.
const (
	RiskLow      = "low"
	RiskMedium   = "medium"
	RiskHigh     = "high"
	RiskCritical = "critical"
)

// Methods a surge report can be produced by.
const (
	MethodRuleBased     = "rule_based"
	MethodExternalModel = "external_model"
)

// SurgePrediction holds the per-hospital output of a surge run
type SurgePrediction struct {
	HospitalID     string   `json:"hospital_id"`
	HospitalName   string   `json:"hospital_name"`
	CurrentLoad    float64  `json:"current_load"`
	PredictedSurge float64  `json:"predicted_surge"`
	SurgeFactors   []string `json:"surge_factors"`
	RiskLevel      string   `json:"risk_level"`
	Location       Location `json:"location"`
}

// CitySummary holds the city-wide aggregates of a surge run
type CitySummary struct {
	OverallRisk      string   `json:"overall_risk"`
	TotalCapacity    int      `json:"total_capacity"`
	TotalOccupied    int      `json:"total_occupied"`
	OverallOccupancy float64  `json:"overall_occupancy"`
	AverageAQI       float64  `json:"average_aqi"`
	ActiveEvents     int      `json:"active_events"`
	Recommendations  []string `json:"recommendations"`
}

// SurgeReport holds the structure for a full surge-prediction response
type SurgeReport struct {
	Timestamp   time.Time         `json:"timestamp"`
	Predictions []SurgePrediction `json:"predictions"`
	CitySummary CitySummary       `json:"city_summary"`
	Method      string            `json:"method"`
	Diagnostics []ValidationError `json:"diagnostics,omitempty"`
}
