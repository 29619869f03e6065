package auth

import (
	"regexp"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

const (
	totpIssuer = "tarefas-api"
	// 20 random bytes = 160 bits of entropy in the base32 secret.
	totpSecretSize = 20
	totpPeriod     = 30
	// Accept the current step plus one step either side for clock drift.
	totpSkew = 1
)

// codePattern gates input before any cryptographic work: exactly six
// decimal digits, nothing else.
var codePattern = regexp.MustCompile(`^\d{6}$`)

// TOTPVerifier generates shared secrets and validates 6-digit time-based
// codes (RFC 6238, SHA-1 HMAC, 30-second step).
//
// Codes are not tracked after a successful check, so a code can be replayed
// within its validity window. Accepted simplification, not a bug.
type TOTPVerifier struct {
	now func() time.Time
}

func NewTOTPVerifier() *TOTPVerifier {
	return &TOTPVerifier{now: time.Now}
}

// GenerateSecret returns a fresh base32 shared secret. The caller exposes it
// exactly once, at provisioning time.
func (v *TOTPVerifier) GenerateSecret(account string) (string, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      totpIssuer,
		AccountName: account,
		SecretSize:  totpSecretSize,
		Period:      totpPeriod,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return "", err
	}
	return key.Secret(), nil
}

// Check reports whether code is valid for secret at the current time step or
// an adjacent one. Malformed input never reaches the HMAC.
func (v *TOTPVerifier) Check(code, secret string) bool {
	if !codePattern.MatchString(code) {
		return false
	}
	ok, err := totp.ValidateCustom(code, secret, v.now().UTC(), totp.ValidateOpts{
		Period:    totpPeriod,
		Skew:      totpSkew,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	return err == nil && ok
}
