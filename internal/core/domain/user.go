package domain

import (
	"strings"
	"time"
)

// Role is the access level of a user. The wire values match the original
// Portuguese contract and are the only three accepted values.
type Role string

const (
	RoleAdmin   Role = "administrativo"
	RoleManager Role = "gerencial"
	RoleViewer  Role = "visualizacao"
)

// ParseRole is the single normalization point for role values entering the
// system (request payloads, token claims). Unknown values are rejected so no
// caller ever compares against a non-canonical spelling.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleManager:
		return RoleManager, nil
	case RoleViewer:
		return RoleViewer, nil
	default:
		return "", ErrInvalidRole
	}
}

// Valid reports whether the role is one of the three canonical values.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleManager || r == RoleViewer
}

// User models a registered principal. PasswordHash and TwoFASecret are
// server-side material and are never serialized outward.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	TwoFASecret  string    `json:"-"`
	Role         Role      `json:"nivelAcesso"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
