package models

import "fmt"

// ErrorMessageResponse returns the error message response struct
type ErrorMessageResponse struct {
	Response MessageError
}

// MessageError contains the inner details for the error message response
type MessageError struct {
	Message string
	Error   string
}

// ValidationError flags a hospital record that failed intake checks. Bad
// records are skipped, not fatal; the surge report carries these in its
// diagnostics list.
type ValidationError struct {
	HospitalID string `json:"hospital_id,omitempty"`
	Field      string `json:"field"`
	Reason     string `json:"reason"`
}

func (v ValidationError) Error() string {
	if v.HospitalID == "" {
		return fmt.Sprintf("hospital record: %s %s", v.Field, v.Reason)
	}
	return fmt.Sprintf("hospital %s: %s %s", v.HospitalID, v.Field, v.Reason)
}
