package ports

import (
	"context"

	"github.com/tarefalabs/tarefas-api/internal/core/domain"
)

// TaskRepository defines the interface for task persistence.
type TaskRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context) ([]*domain.Task, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Task, error)
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
	DeleteByOwner(ctx context.Context, ownerID string) error
}
