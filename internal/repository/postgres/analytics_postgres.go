package postgres

import (
	"context"
	"database/sql"

	"patientapi/internal/model"
	"patientapi/internal/repository"
)

// AnalyticsPostgres is a PostgreSQL implementation of repository.AnalyticsRepository.
type AnalyticsPostgres struct {
	db *sql.DB
}

// NewAnalyticsPostgres creates a new AnalyticsPostgres repository.
func NewAnalyticsPostgres(db *sql.DB) *AnalyticsPostgres {
	return &AnalyticsPostgres{db: db}
}

var _ repository.AnalyticsRepository = (*AnalyticsPostgres)(nil)

// CountsByDoctor runs the two ownership aggregates. Records are counted
// through a join so only records under the doctor's own patients count.
func (r *AnalyticsPostgres) CountsByDoctor(ctx context.Context, doctorID string) (*model.OwnershipCounts, error) {
	const qPatients = `SELECT COUNT(*) FROM patients WHERE doctor_id = $1`
	var counts model.OwnershipCounts
	if err := r.db.QueryRowContext(ctx, qPatients, doctorID).Scan(&counts.PatientsCount); err != nil {
		return nil, err
	}

	const qRecords = `
		SELECT COUNT(*)
		FROM records
		JOIN patients ON patients.id = records.patient_id
		WHERE patients.doctor_id = $1
	`
	if err := r.db.QueryRowContext(ctx, qRecords, doctorID).Scan(&counts.RecordsCount); err != nil {
		return nil, err
	}

	return &counts, nil
}
