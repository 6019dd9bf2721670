package postgres

import (
	"context"
	"database/sql"

	"patientapi/internal/model"
	"patientapi/internal/repository"
)

// RecordPostgres is a PostgreSQL implementation of repository.RecordRepository.
type RecordPostgres struct {
	db *sql.DB
}

// NewRecordPostgres creates a new RecordPostgres repository.
func NewRecordPostgres(db *sql.DB) *RecordPostgres {
	return &RecordPostgres{db: db}
}

var _ repository.RecordRepository = (*RecordPostgres)(nil)

// Create inserts a new record row and returns the stored record.
func (r *RecordPostgres) Create(ctx context.Context, rec *model.PatientRecord) (*model.PatientRecord, error) {
	const q = `
		INSERT INTO records (id, patient_id, diagnosis, treatment, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, patient_id, diagnosis, treatment, notes, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		rec.ID,
		rec.PatientID,
		rec.Diagnosis,
		rec.Treatment,
		rec.Notes,
		rec.CreatedAt,
	)
	var out model.PatientRecord
	if err := scanRecord(row, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single record matching both patient id and record id.
func (r *RecordPostgres) FindByID(ctx context.Context, patientID, id string) (*model.PatientRecord, error) {
	const q = `
		SELECT id, patient_id, diagnosis, treatment, notes, created_at
		FROM records
		WHERE patient_id = $1 AND id = $2
	`
	row := r.db.QueryRowContext(ctx, q, patientID, id)
	var rec model.PatientRecord
	if err := scanRecord(row, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListByPatient returns all records for the patient, newest first.
func (r *RecordPostgres) ListByPatient(ctx context.Context, patientID string) ([]model.PatientRecord, error) {
	const q = `
		SELECT id, patient_id, diagnosis, treatment, notes, created_at
		FROM records
		WHERE patient_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.PatientRecord, 0)
	for rows.Next() {
		var rec model.PatientRecord
		if err := scanRecord(rows, &rec); err != nil {
			return nil, err
		}
		items = append(items, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanRecord(row rowScanner, rec *model.PatientRecord) error {
	return row.Scan(
		&rec.ID,
		&rec.PatientID,
		&rec.Diagnosis,
		&rec.Treatment,
		&rec.Notes,
		&rec.CreatedAt,
	)
}
