package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/messagely/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestNewSessionClaims(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("no ttl means no expiry", func(t *testing.T) {
		c := jwtx.NewSessionClaims("alice", "messagely", 0, now)
		require.Equal(t, "alice", c.Username)
		require.Equal(t, "alice", c.Subject)
		require.Equal(t, "messagely", c.Issuer)
		require.Equal(t, now, c.IssuedAt.Time)
		require.Nil(t, c.ExpiresAt)
	})

	t.Run("ttl sets expiry", func(t *testing.T) {
		c := jwtx.NewSessionClaims("alice", "messagely", time.Hour, now)
		require.NotNil(t, c.ExpiresAt)
		require.Equal(t, now.Add(time.Hour), c.ExpiresAt.Time)
	})
}

func TestValidateIssuer(t *testing.T) {
	c := &jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer: "messagely",
		},
	}

	t.Run("matching issuer", func(t *testing.T) {
		require.NoError(t, c.ValidateIssuer("messagely"))
	})

	t.Run("empty expected issuer", func(t *testing.T) {
		require.NoError(t, c.ValidateIssuer(""))
	})

	t.Run("mismatched issuer", func(t *testing.T) {
		err := c.ValidateIssuer("other-service")
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})
}

func TestValidateExpiry(t *testing.T) {
	now := time.Now().UTC()

	t.Run("valid token", func(t *testing.T) {
		claims := &jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(1 * time.Minute)),
			},
		}
		require.NoError(t, claims.ValidateExpiry())
	})

	t.Run("expired token", func(t *testing.T) {
		claims := &jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(-1 * time.Minute)),
			},
		}
		require.ErrorIs(t, claims.ValidateExpiry(), jwtx.ErrExpired)
	})

	t.Run("not yet valid", func(t *testing.T) {
		claims := &jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				NotBefore: jwt.NewNumericDate(now.Add(1 * time.Minute)),
			},
		}
		require.ErrorIs(t, claims.ValidateExpiry(), jwtx.ErrNotYetValid)
	})

	t.Run("no exp or nbf", func(t *testing.T) {
		claims := &jwtx.Claims{}
		require.NoError(t, claims.ValidateExpiry())
	})
}

func TestValidateExpiryWithLeeway(t *testing.T) {
	now := time.Now().UTC()

	t.Run("valid with leeway", func(t *testing.T) {
		claims := &jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(-10 * time.Second)),
			},
		}
		require.NoError(t, claims.ValidateExpiryWithLeeway(30*time.Second))
	})

	t.Run("expired beyond leeway", func(t *testing.T) {
		claims := &jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(-2 * time.Minute)),
			},
		}
		require.ErrorIs(t, claims.ValidateExpiryWithLeeway(30*time.Second), jwtx.ErrExpired)
	})
}
