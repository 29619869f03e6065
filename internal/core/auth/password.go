// Package auth holds the credential primitives: password hashing, TOTP
// second-factor verification, session token issuance/validation, and the
// role/operation access policy. Everything here is stateless after
// construction and safe for concurrent use.
package auth

import "golang.org/x/crypto/bcrypt"

// hashCost is the bcrypt work factor. Matches the cost the original system
// used for every stored credential.
const hashCost = 10

// PasswordHasher produces and verifies salted one-way password digests.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{cost: hashCost}
}

// Hash returns the bcrypt digest of plaintext. The plaintext is never
// retained or logged.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. Any comparison failure,
// including a malformed digest, is "no match".
func (h *PasswordHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
