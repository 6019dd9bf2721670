package mocks

import (
	"context"

	"patientapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) CountsByDoctor(ctx context.Context, doctorID string) (*model.OwnershipCounts, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OwnershipCounts), args.Error(1)
}
