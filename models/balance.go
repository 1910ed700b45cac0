package models

import "time"

// Transfer priorities.
const (
	PriorityUrgent      = "urgent"
	PriorityRecommended = "recommended"
)

// Alert levels.
const (
	AlertCritical = "critical"
	AlertWarning  = "warning"
	AlertInfo     = "info"
)

// HospitalLoadInfo holds the working record the balancer builds by joining
// a hospital to its surge prediction
type HospitalLoadInfo struct {
	HospitalID      string   `json:"hospital_id"`
	HospitalName    string   `json:"hospital_name"`
	CurrentLoad     float64  `json:"current_load"`
	PredictedSurge  float64  `json:"predicted_surge"`
	Capacity        int      `json:"capacity"`
	CurrentPatients int      `json:"current_patients"`
	AvailableBeds   int      `json:"available_beds"`
	Location        Location `json:"location"`
	RiskLevel       string   `json:"risk_level"`
	Specialties     []string `json:"specialties"`
}

// TransferSource identifies the overloaded end of a recommendation
type TransferSource struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	CurrentLoad    float64 `json:"current_load"`
	PredictedSurge float64 `json:"predicted_surge"`
}

// TransferDestination identifies the receiving end of a recommendation
type TransferDestination struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	CurrentLoad   float64 `json:"current_load"`
	AvailableBeds int     `json:"available_beds"`
}

// TransferRecommendation holds one proposed patient movement
type TransferRecommendation struct {
	FromHospital       TransferSource      `json:"from_hospital"`
	ToHospital         TransferDestination `json:"to_hospital"`
	PatientsToTransfer int                 `json:"patients_to_transfer"`
	DistanceKm         float64             `json:"distance_km"`
	Priority           string              `json:"priority"`
	Reason             string              `json:"reason"`
}

// Alert holds one system alert raised by the balancer
type Alert struct {
	Level          string   `json:"level"`
	Title          string   `json:"title"`
	Message        string   `json:"message"`
	Hospitals      []string `json:"hospitals,omitempty"`
	ActionRequired bool     `json:"action_required"`
}

// BalanceSummary holds the classification counts of a balance run
type BalanceSummary struct {
	TotalHospitals       int `json:"total_hospitals"`
	OverloadedCount      int `json:"overloaded_count"`
	UnderutilizedCount   int `json:"underutilized_count"`
	BalancedCount        int `json:"balanced_count"`
	TransfersRecommended int `json:"transfers_recommended"`
}

// BalanceReport holds the structure for a full load-balancing response
type BalanceReport struct {
	Timestamp               time.Time                `json:"timestamp"`
	Summary                 BalanceSummary           `json:"summary"`
	OverloadedHospitals     []HospitalLoadInfo       `json:"overloaded_hospitals"`
	UnderutilizedHospitals  []HospitalLoadInfo       `json:"underutilized_hospitals"`
	BalancedHospitals       []HospitalLoadInfo       `json:"balanced_hospitals"`
	TransferRecommendations []TransferRecommendation `json:"transfer_recommendations"`
	Alerts                  []Alert                  `json:"alerts"`
	ActionItems             []string                 `json:"action_items"`
}
