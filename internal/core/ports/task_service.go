package ports

import (
	"context"

	"github.com/tarefalabs/tarefas-api/internal/core/auth"
	"github.com/tarefalabs/tarefas-api/internal/core/domain"
)

// CreateTaskInput carries the fields accepted when creating a task. Status
// defaults to pending when empty.
type CreateTaskInput struct {
	Title       string
	Description string
	Status      string
}

// UpdateTaskInput carries the mutable task fields. Nil means "leave as is".
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *string
}

// TaskService exposes task CRUD, authorization included.
type TaskService interface {
	List(ctx context.Context, claims *auth.Claims, onlyMine bool) ([]*domain.Task, error)
	Get(ctx context.Context, claims *auth.Claims, id string) (*domain.Task, error)
	Create(ctx context.Context, claims *auth.Claims, input CreateTaskInput) (*domain.Task, error)
	Update(ctx context.Context, claims *auth.Claims, id string, input UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, claims *auth.Claims, id string) error
}
