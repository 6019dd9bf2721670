package mocks

import (
	"context"

	"patientapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockRecordRepository struct {
	mock.Mock
}

func (m *MockRecordRepository) Create(ctx context.Context, rec *model.PatientRecord) (*model.PatientRecord, error) {
	args := m.Called(ctx, rec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	if fn, ok := args.Get(0).(func(context.Context, *model.PatientRecord) *model.PatientRecord); ok {
		return fn(ctx, rec), args.Error(1)
	}
	return args.Get(0).(*model.PatientRecord), args.Error(1)
}

func (m *MockRecordRepository) FindByID(ctx context.Context, patientID, id string) (*model.PatientRecord, error) {
	args := m.Called(ctx, patientID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PatientRecord), args.Error(1)
}

func (m *MockRecordRepository) ListByPatient(ctx context.Context, patientID string) ([]model.PatientRecord, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PatientRecord), args.Error(1)
}
