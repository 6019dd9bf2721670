package model

import "time"

// PatientRecord is a clinical note attached to a patient.
// PatientID always comes from the URL path, never from client input.
type PatientRecord struct {
	ID        string    `json:"id"`
	PatientID string    `json:"patient_id"`
	Diagnosis string    `json:"diagnosis"`
	Treatment string    `json:"treatment"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}
