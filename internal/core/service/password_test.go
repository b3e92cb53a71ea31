package service

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_RoundTrip(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret-password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "s3cret-password" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("expected a bcrypt hash, got %q", hash)
	}
	if !h.Verify("s3cret-password", hash) {
		t.Error("correct password must verify")
	}
}

func TestPasswordHasher_WrongPassword(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	hash, _ := h.Hash("right-password")
	if h.Verify("wrong-password", hash) {
		t.Error("wrong password must not verify")
	}
}

func TestPasswordHasher_MalformedHash(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	if h.Verify("anything", "not-a-bcrypt-hash") {
		t.Error("malformed stored hash must not verify")
	}
	if h.Verify("anything", "") {
		t.Error("empty stored hash must not verify")
	}
}

func TestPasswordHasher_SaltedHashesDiffer(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	a, _ := h.Hash("same-password")
	b, _ := h.Hash("same-password")
	if a == b {
		t.Error("two hashes of the same password must differ (per-hash salt)")
	}
}

func TestNewPasswordHasher_ClampsCost(t *testing.T) {
	// Out-of-range costs fall back to the bcrypt default instead of failing
	// at hash time.
	for _, cost := range []int{-1, 0, 100} {
		h := NewPasswordHasher(cost)
		if h.cost != bcrypt.DefaultCost {
			t.Errorf("cost %d: expected clamp to %d, got %d", cost, bcrypt.DefaultCost, h.cost)
		}
	}
}
