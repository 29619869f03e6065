package auth

import (
	"strings"
	"testing"
)

func TestPasswordHasher_VerifyRoundTrip(t *testing.T) {
	h := NewPasswordHasher()

	digest, err := h.Hash("s3cret-pass")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if digest == "s3cret-pass" {
		t.Fatalf("digest must not equal plaintext")
	}
	if !strings.HasPrefix(digest, "$2") {
		t.Fatalf("expected bcrypt digest, got %q", digest)
	}

	if !h.Verify("s3cret-pass", digest) {
		t.Fatalf("correct password did not verify")
	}
	if h.Verify("wrong-pass", digest) {
		t.Fatalf("wrong password verified")
	}
}

func TestPasswordHasher_SaltedDigestsDiffer(t *testing.T) {
	h := NewPasswordHasher()

	a, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	b, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if a == b {
		t.Fatalf("two hashes of the same password must differ (salt)")
	}
	if !h.Verify("same-password", a) || !h.Verify("same-password", b) {
		t.Fatalf("both digests must verify")
	}
}

func TestPasswordHasher_MalformedDigestFailsClosed(t *testing.T) {
	h := NewPasswordHasher()

	for _, digest := range []string{"", "not-a-digest", "$2a$10$tooshort"} {
		if h.Verify("anything", digest) {
			t.Fatalf("malformed digest %q verified", digest)
		}
	}
}
