package mocks

import (
	"context"

	"patientapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) Counts(ctx context.Context, doctorID string) (*model.OwnershipCounts, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OwnershipCounts), args.Error(1)
}
