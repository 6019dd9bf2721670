package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"patientapi/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var attachmentColumns = []string{"id", "patient_id", "filename", "storage_path", "size", "content_type", "created_at"}

func TestAttachmentPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewAttachmentPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	a := &model.Attachment{
		ID:          "attachment-uuid",
		PatientID:   "patient-uuid",
		Filename:    "scan.pdf",
		StoragePath: "attachments/scan.pdf",
		Size:        2048,
		ContentType: "application/pdf",
		CreatedAt:   now,
	}

	rows := sqlmock.NewRows(attachmentColumns).
		AddRow(a.ID, a.PatientID, a.Filename, a.StoragePath, a.Size, a.ContentType, a.CreatedAt)

	mock.ExpectQuery("INSERT INTO attachments").
		WithArgs(a.ID, a.PatientID, a.Filename, a.StoragePath, a.Size, a.ContentType, a.CreatedAt).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, a)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, a.StoragePath, result.StoragePath)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttachmentPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewAttachmentPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(attachmentColumns).
			AddRow("attachment-1", "patient-1", "scan.pdf", "attachments/scan.pdf", 2048, "application/pdf", time.Now())

		mock.ExpectQuery("SELECT (.+) FROM attachments WHERE patient_id = (.+) AND id = ?").
			WithArgs("patient-1", "attachment-1").
			WillReturnRows(rows)

		a, err := repo.FindByID(ctx, "patient-1", "attachment-1")

		assert.NoError(t, err)
		assert.NotNil(t, a)
		assert.Equal(t, "attachment-1", a.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM attachments WHERE patient_id = (.+) AND id = ?").
			WithArgs("patient-1", "missing").
			WillReturnError(sql.ErrNoRows)

		a, err := repo.FindByID(ctx, "patient-1", "missing")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, a)
	})
}

func TestAttachmentPostgres_ListByPatient(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewAttachmentPostgres(db)
	ctx := context.Background()

	rows := sqlmock.NewRows(attachmentColumns).
		AddRow("attachment-1", "patient-1", "scan.pdf", "attachments/scan.pdf", 2048, "application/pdf", time.Now())

	mock.ExpectQuery("SELECT (.+) FROM attachments WHERE patient_id = (.+) ORDER BY created_at DESC").
		WithArgs("patient-1").
		WillReturnRows(rows)

	items, err := repo.ListByPatient(ctx, "patient-1")

	assert.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestAttachmentPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewAttachmentPostgres(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM attachments WHERE id = ?").
		WithArgs("attachment-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Delete(ctx, "attachment-1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
