package models

// HospitalStatus holds everything known about one hospital: its registry
// record, its latest prediction and any transfers that touch it
type HospitalStatus struct {
	Hospital          Hospital                 `json:"hospital"`
	Prediction        *SurgePrediction         `json:"prediction,omitempty"`
	IncomingTransfers []TransferRecommendation `json:"incoming_transfers"`
	OutgoingTransfers []TransferRecommendation `json:"outgoing_transfers"`
}

// FullAnalysis bundles the surge and balance reports with the raw inputs
// they were computed from
type FullAnalysis struct {
	SurgePredictions *SurgeReport      `json:"surge_predictions"`
	LoadBalance      *BalanceReport    `json:"load_balance"`
	Hospitals        []Hospital        `json:"hospitals"`
	Pollution        *PollutionReading `json:"pollution"`
	Events           []Event           `json:"events"`
}
