package model

import "time"

// Attachment is a clinical file stored in object storage and linked to a patient.
type Attachment struct {
	ID          string    `json:"id"`
	PatientID   string    `json:"patient_id"`
	Filename    string    `json:"filename"`
	StoragePath string    `json:"storage_path"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`
}
