package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/tarefalabs/tarefas-api/internal/core/domain"
)

func testUser() *domain.User {
	return &domain.User{ID: "64b1f0aa0000000000000001", Username: "alice", Role: domain.RoleManager}
}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	token, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, err := issuer.Validate(token)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if claims.Subject != "64b1f0aa0000000000000001" {
		t.Fatalf("unexpected subject: %s", claims.Subject)
	}
	if claims.Username != "alice" {
		t.Fatalf("unexpected username: %s", claims.Username)
	}
	if claims.Role != domain.RoleManager {
		t.Fatalf("unexpected role: %s", claims.Role)
	}

	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if ttl != time.Hour {
		t.Fatalf("expected 1h expiry, got %v", ttl)
	}
}

func TestTokenIssuer_ExpiredToken(t *testing.T) {
	issued := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	issuer := NewTokenIssuer("test-secret", time.Hour)
	issuer.now = func() time.Time { return issued }

	token, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Still valid just inside the window.
	issuer.now = func() time.Time { return issued.Add(59 * time.Minute) }
	if _, err := issuer.Validate(token); err != nil {
		t.Fatalf("token rejected before expiry: %v", err)
	}

	// Clock advanced past 1 hour: same error kind as tampering.
	issuer.now = func() time.Time { return issued.Add(61 * time.Minute) }
	if _, err := issuer.Validate(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenIssuer_TamperedToken(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	token, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape")
	}
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))

	if _, err := issuer.Validate(tampered); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenIssuer_WrongKeyAndGarbage(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	other := NewTokenIssuer("other-secret", time.Hour)

	token, err := other.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	for _, bad := range []string{token, "", "garbage", "a.b.c"} {
		if _, err := issuer.Validate(bad); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("Validate(%q): expected ErrInvalidToken, got %v", bad, err)
		}
	}
}

func TestTokenIssuer_NormalizesRoleCase(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	user := testUser()
	user.Role = domain.Role("GERENCIAL")
	token, err := issuer.Issue(user)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, err := issuer.Validate(token)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if claims.Role != domain.RoleManager {
		t.Fatalf("expected normalized role, got %q", claims.Role)
	}
}
