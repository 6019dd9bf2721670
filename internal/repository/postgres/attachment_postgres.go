package postgres

import (
	"context"
	"database/sql"

	"patientapi/internal/model"
	"patientapi/internal/repository"
)

// AttachmentPostgres is a PostgreSQL implementation of repository.AttachmentRepository.
type AttachmentPostgres struct {
	db *sql.DB
}

// NewAttachmentPostgres creates a new AttachmentPostgres repository.
func NewAttachmentPostgres(db *sql.DB) *AttachmentPostgres {
	return &AttachmentPostgres{db: db}
}

var _ repository.AttachmentRepository = (*AttachmentPostgres)(nil)

// Create inserts a new attachment row and returns the stored record.
func (r *AttachmentPostgres) Create(ctx context.Context, a *model.Attachment) (*model.Attachment, error) {
	const q = `
		INSERT INTO attachments (id, patient_id, filename, storage_path, size, content_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, patient_id, filename, storage_path, size, content_type, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		a.ID,
		a.PatientID,
		a.Filename,
		a.StoragePath,
		a.Size,
		a.ContentType,
		a.CreatedAt,
	)
	var out model.Attachment
	if err := scanAttachment(row, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single attachment matching both patient id and attachment id.
func (r *AttachmentPostgres) FindByID(ctx context.Context, patientID, id string) (*model.Attachment, error) {
	const q = `
		SELECT id, patient_id, filename, storage_path, size, content_type, created_at
		FROM attachments
		WHERE patient_id = $1 AND id = $2
	`
	row := r.db.QueryRowContext(ctx, q, patientID, id)
	var a model.Attachment
	if err := scanAttachment(row, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// ListByPatient returns all attachments for the patient, newest first.
func (r *AttachmentPostgres) ListByPatient(ctx context.Context, patientID string) ([]model.Attachment, error) {
	const q = `
		SELECT id, patient_id, filename, storage_path, size, content_type, created_at
		FROM attachments
		WHERE patient_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Attachment, 0)
	for rows.Next() {
		var a model.Attachment
		if err := scanAttachment(rows, &a); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes an attachment row by id. It does not return an error if the
// row does not exist.
func (r *AttachmentPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM attachments WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}

func scanAttachment(row rowScanner, a *model.Attachment) error {
	return row.Scan(
		&a.ID,
		&a.PatientID,
		&a.Filename,
		&a.StoragePath,
		&a.Size,
		&a.ContentType,
		&a.CreatedAt,
	)
}
