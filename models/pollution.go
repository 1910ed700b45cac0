package models

// PollutionReading holds the structure for a city air-quality snapshot
type PollutionReading struct {
	AverageAQI float64         `json:"average_aqi" bson:"average_aqi"`
	UpdatedAt  string          `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
	Zones      []PollutionZone `json:"zones,omitempty" bson:"zones,omitempty"`
}

// PollutionZone holds the structure for a single monitoring-station reading
type PollutionZone struct {
	Zone string  `json:"zone" bson:"zone"`
	AQI  float64 `json:"aqi" bson:"aqi"`
}
