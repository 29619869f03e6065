package ports

import (
	"context"

	"github.com/tarefalabs/tarefas-api/internal/core/domain"
)

// UserRepository defines the interface for user persistence. Username
// uniqueness is enforced by the store (unique index); Create and Update
// surface a violation as domain.ErrUserExists.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
