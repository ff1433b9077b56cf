package interfaces

import (
	"context"
	"time"

	"constructhub/internal/domain/entities"
)

//go:generate mockgen -source=estimate_repository_interface.go -destination=mocks/estimate_repository_interface.go -package=mock_interfaces

// IEstimateRepository abstracts DynamoDB persistence for Estimate.
//
// UpdateStatus is the transition validator's enforcement point: the write is
// conditional on the stored status being a valid source for target, so
// callers that bypass the usecase allow-list are still rejected by the data
// layer. It returns a zero Estimate and nil error when the row does not
// exist, and *entities.InvalidTransitionError when the row exists but the
// stored status has no edge to target.
type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	List(ctx context.Context, status entities.EstimateStatus) ([]entities.Estimate, error)
	UpdateStatus(ctx context.Context, id string, target entities.EstimateStatus, now time.Time) (entities.Estimate, error)
}
