package repository

import (
	"context"

	"patientapi/internal/model"
)

// AttachmentRepository defines data access for attachment metadata rows.
// The file content itself lives in object storage.
type AttachmentRepository interface {
	// Create inserts a new attachment row and returns the stored row.
	Create(ctx context.Context, a *model.Attachment) (*model.Attachment, error)

	// FindByID returns the attachment matching both patientID and id.
	// Returns sql.ErrNoRows when there is no match.
	FindByID(ctx context.Context, patientID, id string) (*model.Attachment, error)

	// ListByPatient returns all attachments for the given patient, newest first.
	ListByPatient(ctx context.Context, patientID string) ([]model.Attachment, error)

	// Delete removes an attachment row by id. It returns nil if the row was
	// deleted or did not exist.
	Delete(ctx context.Context, id string) error
}
