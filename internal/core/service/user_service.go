package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tarefalabs/tarefas-api/internal/core/auth"
	"github.com/tarefalabs/tarefas-api/internal/core/domain"
	"github.com/tarefalabs/tarefas-api/internal/core/ports"
)

// UserService implements user administration on top of the orchestrator's
// authorization decisions.
type UserService struct {
	users  ports.UserRepository
	tasks  ports.TaskRepository
	hasher *auth.PasswordHasher
	authz  ports.AuthService
	audit  ports.AuditRecorder
	logger zerolog.Logger
}

func NewUserService(
	users ports.UserRepository,
	tasks ports.TaskRepository,
	hasher *auth.PasswordHasher,
	authz ports.AuthService,
	audit ports.AuditRecorder,
	logger zerolog.Logger,
) *UserService {
	if audit == nil {
		audit = noopAudit{}
	}
	return &UserService{users: users, tasks: tasks, hasher: hasher, authz: authz, audit: audit, logger: logger}
}

// List returns every user. Admin only.
func (s *UserService) List(ctx context.Context, claims *auth.Claims) ([]*domain.User, error) {
	if err := s.authz.Authorize(claims, auth.OpUserListAll, ""); err != nil {
		return nil, err
	}
	return s.users.List(ctx)
}

// Get returns one user profile: own profile for any role, any profile for
// Admin.
func (s *UserService) Get(ctx context.Context, claims *auth.Claims, id string) (*domain.User, error) {
	if err := s.authz.Authorize(claims, auth.OpUserReadSelf, id); err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, id)
}

// Update mutates a user. Anyone may change their own username and password;
// only Admin may touch the role field or another user's record. Username
// uniqueness is re-checked by the store on rename.
func (s *UserService) Update(ctx context.Context, claims *auth.Claims, id string, input ports.UpdateUserInput) (*domain.User, error) {
	if err := s.authz.Authorize(claims, auth.OpUserEditSelf, id); err != nil {
		return nil, err
	}
	if input.Role != nil {
		if err := s.authz.Authorize(claims, auth.OpUserEditRole, id); err != nil {
			return nil, err
		}
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Username != nil {
		if *input.Username == "" {
			return nil, domain.ErrValidation
		}
		user.Username = *input.Username
	}
	if input.Password != nil {
		hash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if input.Role != nil {
		role, err := domain.ParseRole(*input.Role)
		if err != nil {
			return nil, err
		}
		user.Role = role
	}
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("user_id", updated.ID).Msg("user updated")
	return updated, nil
}

// Delete removes a user and their tasks. Admin only.
func (s *UserService) Delete(ctx context.Context, claims *auth.Claims, id string) error {
	if err := s.authz.Authorize(claims, auth.OpUserDelete, ""); err != nil {
		return err
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	// Orphaned tasks are removed with their owner; a failure here leaves
	// only garbage, not a security hole.
	if err := s.tasks.DeleteByOwner(ctx, id); err != nil {
		s.logger.Warn().Err(err).Str("user_id", id).Msg("failed to delete tasks of removed user")
	}

	s.logger.Info().Str("user_id", id).Str("username", user.Username).Msg("user deleted")
	s.audit.Record(ports.AuditEvent{
		Kind:       ports.AuditUserDeleted,
		Username:   user.Username,
		Detail:     "by " + claims.Username,
		OccurredAt: time.Now().UTC(),
	})
	return nil
}
