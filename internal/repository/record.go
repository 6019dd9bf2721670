package repository

import (
	"context"

	"patientapi/internal/model"
)

// RecordRepository defines data access for patient records. Records are
// addressed through their parent patient id; ownership of the parent is
// checked one layer up, in the service.
type RecordRepository interface {
	// Create inserts a new record row and returns the stored row
	// (insert-returning). ID, PatientID and CreatedAt must be set by the caller.
	Create(ctx context.Context, rec *model.PatientRecord) (*model.PatientRecord, error)

	// FindByID returns the record matching both patientID and id.
	// Returns sql.ErrNoRows when there is no match.
	FindByID(ctx context.Context, patientID, id string) (*model.PatientRecord, error)

	// ListByPatient returns all records for the given patient, newest first.
	ListByPatient(ctx context.Context, patientID string) ([]model.PatientRecord, error)
}
