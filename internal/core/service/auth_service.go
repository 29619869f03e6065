package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/tarefalabs/tarefas-api/internal/core/auth"
	"github.com/tarefalabs/tarefas-api/internal/core/domain"
	"github.com/tarefalabs/tarefas-api/internal/core/ports"
)

// AuthService composes the credential primitives into the registration,
// login and request-gating flows. All collaborators are injected; the
// service holds no mutable state of its own.
type AuthService struct {
	users   ports.UserRepository
	hasher  *auth.PasswordHasher
	second  *auth.TOTPVerifier
	tokens  *auth.TokenIssuer
	limiter ports.LoginLimiter
	audit   ports.AuditRecorder
	logger  zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	hasher *auth.PasswordHasher,
	second *auth.TOTPVerifier,
	tokens *auth.TokenIssuer,
	limiter ports.LoginLimiter,
	audit ports.AuditRecorder,
	logger zerolog.Logger,
) *AuthService {
	if audit == nil {
		audit = noopAudit{}
	}
	return &AuthService{
		users:   users,
		hasher:  hasher,
		second:  second,
		tokens:  tokens,
		limiter: limiter,
		audit:   audit,
		logger:  logger,
	}
}

// Register creates a user with a hashed password and a fresh 2FA secret.
// An unknown or empty role falls back to Viewer, mirroring the original
// system. The raw secret leaves the server exactly once, in the result.
func (s *AuthService) Register(ctx context.Context, username, password, role string) (*ports.RegisterResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	level, err := domain.ParseRole(role)
	if err != nil {
		level = domain.RoleViewer
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	secret, err := s.second.GenerateSecret(username)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.users.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: hash,
		TwoFASecret:  secret,
		Role:         level,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Str("role", string(created.Role)).Msg("user registered")
	s.audit.Record(ports.AuditEvent{Kind: ports.AuditRegistered, Username: created.Username, OccurredAt: now})

	return &ports.RegisterResult{User: created, RawSecret: secret}, nil
}

// Login verifies password and second factor, then issues a session token.
// Unknown username and wrong password produce the same error so the
// response surface never confirms which usernames exist.
func (s *AuthService) Login(ctx context.Context, username, password, code string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	if blocked := s.loginBlocked(ctx, username); blocked {
		return "", domain.ErrTooManyAttempts
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.noteFailure(ctx, username, "unknown_user")
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.noteFailure(ctx, username, "bad_password")
		return "", domain.ErrInvalidCredentials
	}

	if !s.second.Check(code, user.TwoFASecret) {
		s.noteFailure(ctx, username, "bad_2fa_code")
		return "", domain.ErrInvalidSecondFactor
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", err
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, username); err != nil {
			s.logger.Warn().Err(err).Msg("login limiter reset failed")
		}
	}
	s.audit.Record(ports.AuditEvent{Kind: ports.AuditLoginOK, Username: username, OccurredAt: time.Now().UTC()})

	return token, nil
}

// Authenticate validates a bearer token and returns its claims. The empty
// token is a distinct condition from a rejected one: both block access but
// carry different diagnostic codes.
func (s *AuthService) Authenticate(token string) (*auth.Claims, error) {
	if token == "" {
		return nil, domain.ErrNoCredentials
	}
	return s.tokens.Validate(token)
}

// Authorize consults the access table for op. When ownerID is set and the
// subject matches it, the "self" row family applies; otherwise the "other"
// family does. Denials are audited.
func (s *AuthService) Authorize(claims *auth.Claims, op auth.Operation, ownerID string) error {
	if claims == nil {
		return domain.ErrNoCredentials
	}

	effective := op
	if ownerID != "" && claims.Subject != ownerID {
		effective = otherParty(op)
	}

	if !auth.Permit(claims.Role, effective) {
		s.audit.Record(ports.AuditEvent{
			Kind:       ports.AuditAccessDenied,
			Username:   claims.Username,
			Detail:     string(effective),
			OccurredAt: time.Now().UTC(),
		})
		return domain.ErrForbidden
	}
	return nil
}

// otherParty maps a self-scoped operation to its other-party row.
// Operations without an ownership split map to themselves.
func otherParty(op auth.Operation) auth.Operation {
	switch op {
	case auth.OpUserReadSelf:
		return auth.OpUserReadAny
	case auth.OpUserEditSelf:
		return auth.OpUserEditAny
	default:
		return op
	}
}

func (s *AuthService) loginBlocked(ctx context.Context, username string) bool {
	if s.limiter == nil {
		return false
	}
	blocked, err := s.limiter.Blocked(ctx, username)
	if err != nil {
		// Limiter outage degrades open; a redis hiccup must not lock
		// everyone out.
		s.logger.Warn().Err(err).Msg("login limiter unavailable")
		return false
	}
	return blocked
}

func (s *AuthService) noteFailure(ctx context.Context, username, reason string) {
	if s.limiter != nil {
		if err := s.limiter.RecordFailure(ctx, username); err != nil {
			s.logger.Warn().Err(err).Msg("login limiter record failed")
		}
	}
	s.audit.Record(ports.AuditEvent{
		Kind:       ports.AuditLoginFailed,
		Username:   username,
		Detail:     reason,
		OccurredAt: time.Now().UTC(),
	})
}

type noopAudit struct{}

func (noopAudit) Record(ports.AuditEvent) {}
