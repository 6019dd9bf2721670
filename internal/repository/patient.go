package repository

import (
	"context"

	"patientapi/internal/model"
)

// PatientRepository defines data access for patients using SQL queries only.
// No business logic here — strictly persistence operations. Every read is
// owner-scoped: a patient is only visible through its owning doctor id.
type PatientRepository interface {
	// Create inserts a new patient row and returns the stored row
	// (insert-returning). ID, DoctorID and CreatedAt must be set by the caller.
	Create(ctx context.Context, p *model.Patient) (*model.Patient, error)

	// FindByID returns the patient with the given id owned by doctorID.
	// Returns sql.ErrNoRows when no such row exists for that owner.
	FindByID(ctx context.Context, doctorID, id string) (*model.Patient, error)

	// ListByDoctor returns all patients owned by doctorID, newest first.
	// An empty slice is a valid result.
	ListByDoctor(ctx context.Context, doctorID string) ([]model.Patient, error)
}
