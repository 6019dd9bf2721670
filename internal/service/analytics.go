package service

import (
	"context"

	"patientapi/internal/model"
	"patientapi/internal/repository"
)

// AnalyticsService computes the per-doctor ownership counters.
type AnalyticsService interface {
	// Counts returns patients_count and records_count for the doctor.
	// There is no partial result; a failure of either aggregate fails the call.
	Counts(ctx context.Context, doctorID string) (*model.OwnershipCounts, error)
}

type analyticsService struct {
	repo repository.AnalyticsRepository
}

// NewAnalyticsService constructs a new AnalyticsService.
func NewAnalyticsService(repo repository.AnalyticsRepository) AnalyticsService {
	return &analyticsService{repo: repo}
}

func (s *analyticsService) Counts(ctx context.Context, doctorID string) (*model.OwnershipCounts, error) {
	if doctorID == "" {
		return nil, ErrIDRequired
	}
	return s.repo.CountsByDoctor(ctx, doctorID)
}
