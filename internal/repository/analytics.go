package repository

import (
	"context"

	"patientapi/internal/model"
)

// AnalyticsRepository computes per-doctor aggregate counters.
type AnalyticsRepository interface {
	// CountsByDoctor returns the number of patients owned by doctorID and the
	// number of records whose parent patient is owned by doctorID. If either
	// aggregate query fails the whole call fails; there is no partial result.
	CountsByDoctor(ctx context.Context, doctorID string) (*model.OwnershipCounts, error)
}
