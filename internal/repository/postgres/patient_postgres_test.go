package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"patientapi/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var patientColumns = []string{"id", "doctor_id", "name", "email", "date_of_birth", "gender", "phone", "created_at"}

func TestPatientPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewPatientPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	p := &model.Patient{
		ID:          "patient-uuid",
		DoctorID:    "doctor-uuid",
		Name:        "Jane Roe",
		Email:       "jane@example.com",
		DateOfBirth: "1990-04-01",
		Gender:      "female",
		Phone:       "555-0100",
		CreatedAt:   now,
	}

	rows := sqlmock.NewRows(patientColumns).
		AddRow(p.ID, p.DoctorID, p.Name, p.Email, p.DateOfBirth, p.Gender, p.Phone, p.CreatedAt)

	mock.ExpectQuery("INSERT INTO patients").
		WithArgs(p.ID, p.DoctorID, p.Name, p.Email, p.DateOfBirth, p.Gender, p.Phone, p.CreatedAt).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, p)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, p.ID, result.ID)
	assert.Equal(t, p.DoctorID, result.DoctorID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatientPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewPatientPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(patientColumns).
			AddRow("patient-1", "doctor-1", "Jane Roe", "", "", "", "", time.Now())

		mock.ExpectQuery("SELECT (.+) FROM patients WHERE id = (.+) AND doctor_id = ?").
			WithArgs("patient-1", "doctor-1").
			WillReturnRows(rows)

		p, err := repo.FindByID(ctx, "doctor-1", "patient-1")

		assert.NoError(t, err)
		assert.NotNil(t, p)
		assert.Equal(t, "patient-1", p.ID)
	})

	t.Run("not found for other doctor", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM patients WHERE id = (.+) AND doctor_id = ?").
			WithArgs("patient-1", "doctor-2").
			WillReturnError(sql.ErrNoRows)

		p, err := repo.FindByID(ctx, "doctor-2", "patient-1")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, p)
	})
}

func TestPatientPostgres_ListByDoctor(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewPatientPostgres(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		rows := sqlmock.NewRows(patientColumns).
			AddRow("patient-2", "doctor-1", "Newest", "", "", "", "", time.Now()).
			AddRow("patient-1", "doctor-1", "Oldest", "", "", "", "", time.Now().Add(-time.Hour))

		mock.ExpectQuery("SELECT (.+) FROM patients WHERE doctor_id = (.+) ORDER BY created_at DESC").
			WithArgs("doctor-1").
			WillReturnRows(rows)

		items, err := repo.ListByDoctor(ctx, "doctor-1")

		assert.NoError(t, err)
		assert.Len(t, items, 2)
		assert.Equal(t, "patient-2", items[0].ID)
	})

	t.Run("empty result is valid", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM patients WHERE doctor_id = (.+) ORDER BY created_at DESC").
			WithArgs("doctor-9").
			WillReturnRows(sqlmock.NewRows(patientColumns))

		items, err := repo.ListByDoctor(ctx, "doctor-9")

		assert.NoError(t, err)
		assert.Empty(t, items)
		assert.NotNil(t, items)
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM patients WHERE doctor_id = ?").
			WithArgs("doctor-1").
			WillReturnError(errors.New("connection reset"))

		items, err := repo.ListByDoctor(ctx, "doctor-1")

		assert.Error(t, err)
		assert.Nil(t, items)
	})
}
