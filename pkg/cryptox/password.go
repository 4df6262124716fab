package cryptox

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the longest input bcrypt will hash.
const MaxPasswordBytes = 72

// DefaultWorkFactor is used when no cost is configured.
const DefaultWorkFactor = 12

var ErrPasswordTooLong = fmt.Errorf("cryptox: password exceeds %d bytes", MaxPasswordBytes)

// BcryptHasher hashes and verifies passwords with bcrypt. The cost factor is
// fixed at construction and embedded in every hash it produces, so hashes
// created under an older cost keep verifying after the cost changes.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher using the given cost. Costs outside the
// range bcrypt accepts fall back to DefaultWorkFactor.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultWorkFactor
	}
	return &BcryptHasher{cost: cost}
}

// Cost reports the configured work factor.
func (h *BcryptHasher) Cost() int { return h.cost }

// Hash returns a salted bcrypt hash of password.
func (h *BcryptHasher) Hash(password string) (string, error) {
	if len(password) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("cryptox: hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether password matches hash. It never returns an error:
// a malformed hash is treated the same as a mismatch.
func (h *BcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
