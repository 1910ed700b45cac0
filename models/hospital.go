package models

// Hospital holds the structure for a hospital record in the city registry
type Hospital struct {
	ID              string   `json:"id" bson:"id"`
	Name            string   `json:"name" bson:"name"`
	Capacity        int      `json:"capacity" bson:"capacity"`
	CurrentPatients int      `json:"current_patients" bson:"current_patients"`
	Location        Location `json:"location" bson:"location"`
	Specialties     []string `json:"specialties,omitempty" bson:"specialties,omitempty"`
}

// Location holds a latitude/longitude pair
type Location struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// AvailableBeds returns the spare bed count. May be negative when a
// hospital runs over capacity.
func (h Hospital) AvailableBeds() int {
	return h.Capacity - h.CurrentPatients
}

// Validate reports why a registry record cannot be scored, nil when it can
func (h Hospital) Validate() *ValidationError {
	if h.ID == "" {
		return &ValidationError{Field: "id", Reason: "is required"}
	}
	if h.Capacity <= 0 {
		return &ValidationError{HospitalID: h.ID, Field: "capacity", Reason: "must be positive"}
	}
	if h.CurrentPatients < 0 {
		return &ValidationError{HospitalID: h.ID, Field: "current_patients", Reason: "must not be negative"}
	}
	return nil
}
