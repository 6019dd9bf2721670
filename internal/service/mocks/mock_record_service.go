package mocks

import (
	"context"

	"patientapi/internal/model"
	"patientapi/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockRecordService struct {
	mock.Mock
}

func (m *MockRecordService) ListByPatient(ctx context.Context, doctorID, patientID string) ([]model.PatientRecord, error) {
	args := m.Called(ctx, doctorID, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PatientRecord), args.Error(1)
}

func (m *MockRecordService) Get(ctx context.Context, doctorID, patientID, recordID string) (*model.PatientRecord, error) {
	args := m.Called(ctx, doctorID, patientID, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PatientRecord), args.Error(1)
}

func (m *MockRecordService) Create(ctx context.Context, doctorID, patientID string, in service.CreateRecordInput) (*model.PatientRecord, error) {
	args := m.Called(ctx, doctorID, patientID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PatientRecord), args.Error(1)
}
