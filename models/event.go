package models

// EventStatusUpcoming marks an event that has not happened yet. Only
// upcoming events count toward surge impact.
const EventStatusUpcoming = "upcoming"

// Event holds the structure for a scheduled public event
type Event struct {
	ID                 string `json:"id" bson:"id"`
	Name               string `json:"name" bson:"name"`
	Date               string `json:"date,omitempty" bson:"date,omitempty"`
	Venue              string `json:"venue,omitempty" bson:"venue,omitempty"`
	ExpectedAttendance int    `json:"expected_attendance,omitempty" bson:"expected_attendance,omitempty"`
	Status             string `json:"status" bson:"status"`
}
