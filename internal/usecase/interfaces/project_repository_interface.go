package interfaces

import (
	"context"

	"constructhub/internal/domain/entities"
)

//go:generate mockgen -source=project_repository_interface.go -destination=mocks/project_repository_interface.go -package=mock_interfaces

// IProjectRepository abstracts DynamoDB persistence for Project.
//
// Read-only on purpose: project rows are only ever written by the
// conversion store's transaction.
type IProjectRepository interface {
	GetByID(ctx context.Context, id string) (entities.Project, error)
	List(ctx context.Context) ([]entities.Project, error)
}
