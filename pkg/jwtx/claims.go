package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the session token claims. The username is the only identity
// the service needs; the registered claims carry issuance metadata.
type Claims struct {
	jwt.RegisteredClaims

	// Username of the authenticated user
	Username string `json:"username"`
}

// NewSessionClaims builds claims for username issued at now. A zero ttl
// produces a token without an "exp" claim.
func NewSessionClaims(username, issuer string, ttl time.Duration, now time.Time) Claims {
	c := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			Subject:  username,
			IssuedAt: jwt.NewNumericDate(now),
		},
		Username: username,
	}
	if ttl > 0 {
		c.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}
	return c
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}

	if c.Issuer != expected {
		return ErrIssuer
	}

	return nil
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't before nbf.
// Tokens without exp never expire.
func (c *Claims) ValidateExpiry() error {
	return c.ValidateExpiryWithLeeway(0)
}

// ValidateExpiryWithLeeway adds a small grace period for clock skew.
func (c *Claims) ValidateExpiryWithLeeway(leeway time.Duration) error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Add(leeway)) {
		return ErrExpired
	}

	if c.NotBefore != nil && now.Before(c.NotBefore.Add(-leeway)) {
		return ErrNotYetValid
	}

	return nil
}

// ValidateUsername ensures the identity claim is present.
func (c *Claims) ValidateUsername() error {
	if c.Username == "" {
		return ErrInvalidClaim
	}
	return nil
}
