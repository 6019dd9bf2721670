package model

import "time"

// Patient is a patient owned by exactly one doctor.
// This is a pure domain model with no database-specific dependencies or tags;
// its JSON tags define the wire shape for both single items and lists.
type Patient struct {
	ID          string    `json:"id"`
	DoctorID    string    `json:"doctor_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	DateOfBirth string    `json:"date_of_birth"`
	Gender      string    `json:"gender"`
	Phone       string    `json:"phone"`
	CreatedAt   time.Time `json:"created_at"`
}
