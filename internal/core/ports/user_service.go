package ports

import (
	"context"

	"github.com/tarefalabs/tarefas-api/internal/core/auth"
	"github.com/tarefalabs/tarefas-api/internal/core/domain"
)

// UpdateUserInput carries the mutable user fields. Nil means "leave as is".
type UpdateUserInput struct {
	Username *string
	Password *string
	Role     *string
}

// UserService exposes user administration, authorization included.
type UserService interface {
	List(ctx context.Context, claims *auth.Claims) ([]*domain.User, error)
	Get(ctx context.Context, claims *auth.Claims, id string) (*domain.User, error)
	Update(ctx context.Context, claims *auth.Claims, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, claims *auth.Claims, id string) error
}
