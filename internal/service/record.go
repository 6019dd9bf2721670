package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"patientapi/internal/model"
	"patientapi/internal/repository"
)

// CreateRecordInput carries the caller-supplied clinical fields for a new
// record. ID, PatientID and CreatedAt are server-assigned.
type CreateRecordInput struct {
	Diagnosis string `json:"diagnosis"`
	Treatment string `json:"treatment"`
	Notes     string `json:"notes"`
}

// RecordService defines the use cases for handling patient records. Every
// operation first resolves the parent patient under the caller's doctor id,
// so records under a foreign patient are never reachable.
type RecordService interface {
	// ListByPatient returns all records under the patient, newest first.
	ListByPatient(ctx context.Context, doctorID, patientID string) ([]model.PatientRecord, error)

	// Get returns the record matching both patient id and record id.
	Get(ctx context.Context, doctorID, patientID, recordID string) (*model.PatientRecord, error)

	// Create persists a new record under the patient with a fresh id and
	// server-assigned creation time, and returns the stored row.
	Create(ctx context.Context, doctorID, patientID string, in CreateRecordInput) (*model.PatientRecord, error)
}

type recordService struct {
	patients repository.PatientRepository
	records  repository.RecordRepository
}

// NewRecordService constructs a new RecordService.
func NewRecordService(patients repository.PatientRepository, records repository.RecordRepository) RecordService {
	return &recordService{patients: patients, records: records}
}

// resolvePatient checks that patientID exists and belongs to doctorID before
// any record query runs.
func (s *recordService) resolvePatient(ctx context.Context, doctorID, patientID string) error {
	if doctorID == "" || patientID == "" {
		return ErrIDRequired
	}
	if _, err := s.patients.FindByID(ctx, doctorID, patientID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrPatientNotFound
		}
		return err
	}
	return nil
}

func (s *recordService) ListByPatient(ctx context.Context, doctorID, patientID string) ([]model.PatientRecord, error) {
	if err := s.resolvePatient(ctx, doctorID, patientID); err != nil {
		return nil, err
	}
	return s.records.ListByPatient(ctx, patientID)
}

func (s *recordService) Get(ctx context.Context, doctorID, patientID, recordID string) (*model.PatientRecord, error) {
	if recordID == "" {
		return nil, ErrIDRequired
	}
	if err := s.resolvePatient(ctx, doctorID, patientID); err != nil {
		return nil, err
	}
	rec, err := s.records.FindByID(ctx, patientID, recordID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (s *recordService) Create(ctx context.Context, doctorID, patientID string, in CreateRecordInput) (*model.PatientRecord, error) {
	if in.Diagnosis == "" {
		return nil, ErrDiagnosisRequired
	}
	if err := s.resolvePatient(ctx, doctorID, patientID); err != nil {
		return nil, err
	}

	rec := &model.PatientRecord{
		ID:        uuid.New().String(),
		PatientID: patientID,
		Diagnosis: in.Diagnosis,
		Treatment: in.Treatment,
		Notes:     in.Notes,
		CreatedAt: time.Now().UTC(),
	}
	return s.records.Create(ctx, rec)
}
