package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretBytes is the shortest HMAC secret a signer accepts.
const MinSecretBytes = 16

var ErrWeakSecret = errors.New("jwtx: signing secret too short")

// Signer is our interface for anything that can sign JWTs.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
	Validate() error
}

// HS256Signer signs compact tokens with a shared process-wide secret.
type HS256Signer struct {
	secret []byte
}

// NewSignerHS256 creates an HS256 signer. The secret is copied so later
// mutation by the caller cannot change signatures.
func NewSignerHS256(secret []byte) (*HS256Signer, error) {
	s := &HS256Signer{secret: append([]byte(nil), secret...)}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *HS256Signer) Alg() string { return jwt.SigningMethodHS256.Alg() }

// Sign takes your claims and turns them into a signed JWT string.
func (s *HS256Signer) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Validate does a quick sanity check to make sure we actually have a key.
func (s *HS256Signer) Validate() error {
	if len(s.secret) < MinSecretBytes {
		return ErrWeakSecret
	}
	return nil
}
