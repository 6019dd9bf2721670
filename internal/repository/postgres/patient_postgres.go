package postgres

import (
	"context"
	"database/sql"

	"patientapi/internal/model"
	"patientapi/internal/repository"
)

// PatientPostgres is a PostgreSQL implementation of repository.PatientRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type PatientPostgres struct {
	db *sql.DB
}

// NewPatientPostgres creates a new PatientPostgres repository.
func NewPatientPostgres(db *sql.DB) *PatientPostgres {
	return &PatientPostgres{db: db}
}

var _ repository.PatientRepository = (*PatientPostgres)(nil)

// Create inserts a new patient row and returns the stored record.
func (r *PatientPostgres) Create(ctx context.Context, p *model.Patient) (*model.Patient, error) {
	const q = `
		INSERT INTO patients (id, doctor_id, name, email, date_of_birth, gender, phone, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, doctor_id, name, email, date_of_birth, gender, phone, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		p.ID,
		p.DoctorID,
		p.Name,
		p.Email,
		p.DateOfBirth,
		p.Gender,
		p.Phone,
		p.CreatedAt,
	)
	var out model.Patient
	if err := scanPatient(row, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single patient by id, restricted to the owning doctor.
func (r *PatientPostgres) FindByID(ctx context.Context, doctorID, id string) (*model.Patient, error) {
	const q = `
		SELECT id, doctor_id, name, email, date_of_birth, gender, phone, created_at
		FROM patients
		WHERE id = $1 AND doctor_id = $2
	`
	row := r.db.QueryRowContext(ctx, q, id, doctorID)
	var p model.Patient
	if err := scanPatient(row, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListByDoctor returns all patients owned by the doctor, newest first.
func (r *PatientPostgres) ListByDoctor(ctx context.Context, doctorID string) ([]model.Patient, error) {
	const q = `
		SELECT id, doctor_id, name, email, date_of_birth, gender, phone, created_at
		FROM patients
		WHERE doctor_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q, doctorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Patient, 0)
	for rows.Next() {
		var p model.Patient
		if err := scanPatient(rows, &p); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPatient(row rowScanner, p *model.Patient) error {
	return row.Scan(
		&p.ID,
		&p.DoctorID,
		&p.Name,
		&p.Email,
		&p.DateOfBirth,
		&p.Gender,
		&p.Phone,
		&p.CreatedAt,
	)
}
