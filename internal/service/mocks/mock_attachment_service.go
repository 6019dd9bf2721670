package mocks

import (
	"context"
	"io"

	"patientapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockAttachmentService struct {
	mock.Mock
}

func (m *MockAttachmentService) Upload(ctx context.Context, doctorID, patientID string, r io.Reader, originalFilename, contentType string, size int64) (*model.Attachment, error) {
	args := m.Called(ctx, doctorID, patientID, r, originalFilename, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Attachment), args.Error(1)
}

func (m *MockAttachmentService) ListByPatient(ctx context.Context, doctorID, patientID string) ([]model.Attachment, error) {
	args := m.Called(ctx, doctorID, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Attachment), args.Error(1)
}

func (m *MockAttachmentService) Get(ctx context.Context, doctorID, patientID, id string) (*model.Attachment, error) {
	args := m.Called(ctx, doctorID, patientID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Attachment), args.Error(1)
}

func (m *MockAttachmentService) Download(ctx context.Context, doctorID, patientID, id string) (io.ReadCloser, *model.Attachment, error) {
	args := m.Called(ctx, doctorID, patientID, id)
	var rc io.ReadCloser
	if args.Get(0) != nil {
		rc = args.Get(0).(io.ReadCloser)
	}
	if args.Get(1) == nil {
		return rc, nil, args.Error(2)
	}
	return rc, args.Get(1).(*model.Attachment), args.Error(2)
}

func (m *MockAttachmentService) Delete(ctx context.Context, doctorID, patientID, id string) error {
	args := m.Called(ctx, doctorID, patientID, id)
	return args.Error(0)
}
