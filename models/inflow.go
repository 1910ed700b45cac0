package models

import "time"

// InflowRecord holds the structure for one hourly patient-arrival sample
// in the patient_inflow collection
type InflowRecord struct {
	HospitalID  string    `json:"hospital_id" bson:"hospital_id"`
	Timestamp   time.Time `json:"timestamp" bson:"timestamp"`
	Count       int       `json:"count" bson:"count"`
	SeverityAvg float64   `json:"severity_avg,omitempty" bson:"severity_avg,omitempty"`
	Department  string    `json:"department,omitempty" bson:"department,omitempty"`
}

// InflowSummary holds aggregated arrivals per hospital over a window,
// produced by the history summary pipeline
type InflowSummary struct {
	HospitalID   string  `json:"hospital_id" bson:"_id"`
	TotalCount   int     `json:"total_count" bson:"total_count"`
	AverageCount float64 `json:"average_count" bson:"average_count"`
	Samples      int     `json:"samples" bson:"samples"`
}
