package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tarefalabs/tarefas-api/internal/core/domain"
)

// DefaultTokenTTL is how long a session token stays valid. There is no
// refresh mechanism; expiry requires a new login.
const DefaultTokenTTL = time.Hour

// Claims is the verified payload of a session token.
type Claims struct {
	Username string      `json:"username"`
	Role     domain.Role `json:"nivelAcesso"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies self-contained session tokens with a
// server-held symmetric key (HS256).
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue creates a signed token carrying the user's id, username and role.
func (t *TokenIssuer) Issue(user *domain.User) (string, error) {
	now := t.now().UTC()
	claims := Claims{
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Validate verifies signature and expiry and returns the embedded claims.
// Every failure mode collapses to domain.ErrInvalidToken: callers must not
// be able to tell an expired token from a tampered one.
func (t *TokenIssuer) Validate(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		if tok.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return t.now() }))
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}

	// Canonical role parse at the decode boundary; a token carrying an
	// unknown role is as unusable as a tampered one.
	role, err := domain.ParseRole(string(claims.Role))
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	claims.Role = role

	return claims, nil
}
