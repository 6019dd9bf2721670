package mocks

import (
	"context"

	"patientapi/internal/model"
	"patientapi/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockPatientService struct {
	mock.Mock
}

func (m *MockPatientService) List(ctx context.Context, doctorID string) ([]model.Patient, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Patient), args.Error(1)
}

func (m *MockPatientService) Get(ctx context.Context, doctorID, id string) (*model.Patient, error) {
	args := m.Called(ctx, doctorID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Patient), args.Error(1)
}

func (m *MockPatientService) Create(ctx context.Context, doctorID string, in service.CreatePatientInput) (*model.Patient, error) {
	args := m.Called(ctx, doctorID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Patient), args.Error(1)
}
