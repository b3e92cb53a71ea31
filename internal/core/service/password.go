package service

import "golang.org/x/crypto/bcrypt"

// PasswordHasher wraps bcrypt hashing with a configurable cost. The cost is
// baked into each produced hash, so raising it later never breaks
// verification of previously stored hashes.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash returns a salted one-way hash of plaintext.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Verify reports whether plaintext produced hash. Malformed stored hashes
// report plain failure, never which part mismatched.
func (h *PasswordHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
