package domain

import "errors"

// Sentinel errors for the whole core. Infrastructure wraps its own failures
// with %w; the HTTP layer maps these to status codes in one place.
var (
	ErrUserExists          = errors.New("user already exists")
	ErrUserNotFound        = errors.New("user not found")
	ErrTaskNotFound        = errors.New("task not found")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrInvalidSecondFactor = errors.New("invalid 2FA code")
	ErrNoCredentials       = errors.New("no credentials supplied")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrForbidden           = errors.New("access forbidden")
	ErrInvalidRole         = errors.New("invalid access level")
	ErrInvalidStatus       = errors.New("invalid task status")
	ErrValidation          = errors.New("invalid payload")
	ErrTooManyAttempts     = errors.New("too many failed login attempts")
)
