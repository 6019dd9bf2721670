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

// CreatePatientInput carries the caller-supplied descriptive fields for a new
// patient. ID, DoctorID and CreatedAt are never accepted from the client; the
// service assigns them.
type CreatePatientInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	DateOfBirth string `json:"date_of_birth"`
	Gender      string `json:"gender"`
	Phone       string `json:"phone"`
}

// PatientService defines the use cases for handling patients.
type PatientService interface {
	// List returns all patients owned by the doctor, newest first.
	List(ctx context.Context, doctorID string) ([]model.Patient, error)

	// Get returns a single patient owned by the doctor. A patient owned by a
	// different doctor is indistinguishable from a missing one.
	Get(ctx context.Context, doctorID, id string) (*model.Patient, error)

	// Create persists a new patient with a fresh id, the caller's doctor id
	// and a server-assigned creation time, and returns the stored row.
	Create(ctx context.Context, doctorID string, in CreatePatientInput) (*model.Patient, error)
}

type patientService struct {
	repo repository.PatientRepository
}

// NewPatientService constructs a new PatientService.
func NewPatientService(repo repository.PatientRepository) PatientService {
	return &patientService{repo: repo}
}

func (s *patientService) List(ctx context.Context, doctorID string) ([]model.Patient, error) {
	if doctorID == "" {
		return nil, ErrIDRequired
	}
	return s.repo.ListByDoctor(ctx, doctorID)
}

func (s *patientService) Get(ctx context.Context, doctorID, id string) (*model.Patient, error) {
	if doctorID == "" || id == "" {
		return nil, ErrIDRequired
	}
	p, err := s.repo.FindByID(ctx, doctorID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *patientService) Create(ctx context.Context, doctorID string, in CreatePatientInput) (*model.Patient, error) {
	if doctorID == "" {
		return nil, ErrIDRequired
	}
	if in.Name == "" {
		return nil, ErrNameRequired
	}

	p := &model.Patient{
		ID:          uuid.New().String(),
		DoctorID:    doctorID,
		Name:        in.Name,
		Email:       in.Email,
		DateOfBirth: in.DateOfBirth,
		Gender:      in.Gender,
		Phone:       in.Phone,
		CreatedAt:   time.Now().UTC(),
	}
	return s.repo.Create(ctx, p)
}
