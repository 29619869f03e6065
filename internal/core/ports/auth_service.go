package ports

import (
	"context"

	"github.com/tarefalabs/tarefas-api/internal/core/auth"
	"github.com/tarefalabs/tarefas-api/internal/core/domain"
)

// RegisterResult carries the created user plus the raw 2FA secret. The
// secret is exposed exactly once, for provisioning an authenticator app.
type RegisterResult struct {
	User      *domain.User
	RawSecret string
}

// AuthService orchestrates registration, login and per-request gating.
type AuthService interface {
	Register(ctx context.Context, username, password, role string) (*RegisterResult, error)
	Login(ctx context.Context, username, password, code string) (string, error)
	// Authenticate validates a bearer token. An empty token yields
	// domain.ErrNoCredentials; a rejected one domain.ErrInvalidToken.
	Authenticate(token string) (*auth.Claims, error)
	// Authorize consults the access policy. For ownership-scoped operations
	// ownerID selects the own/other row family; pass "" for operations the
	// table resolves on role alone.
	Authorize(claims *auth.Claims, op auth.Operation, ownerID string) error
}

// LoginLimiter throttles failed login attempts per username. Implementations
// are best-effort: an unavailable backend must not block logins.
type LoginLimiter interface {
	Blocked(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}
