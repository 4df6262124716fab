package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// Tests run at the minimum cost so the suite stays fast.
func newTestHasher() *BcryptHasher {
	return NewBcryptHasher(bcrypt.MinCost)
}

func TestNewBcryptHasher_Cost(t *testing.T) {
	tests := []struct {
		name string
		cost int
		want int
	}{
		{"min cost", bcrypt.MinCost, bcrypt.MinCost},
		{"configured cost", 10, 10},
		{"zero falls back", 0, DefaultWorkFactor},
		{"too high falls back", bcrypt.MaxCost + 1, DefaultWorkFactor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NewBcryptHasher(tt.cost).Cost())
		})
	}
}

func TestHash(t *testing.T) {
	h := newTestHasher()

	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "password123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"max length password", strings.Repeat("a", MaxPasswordBytes)},
		{"empty password", ""},
		{"whitespace password", "   spaces   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := h.Hash(tt.password)
			require.NoError(t, err)
			require.NotEqual(t, tt.password, hash, "hash must never equal the plaintext")
			require.True(t, strings.HasPrefix(hash, "$2a$"), "hash should be bcrypt encoded")

			cost, err := bcrypt.Cost([]byte(hash))
			require.NoError(t, err)
			require.Equal(t, bcrypt.MinCost, cost)

			require.True(t, h.Verify(tt.password, hash))
		})
	}
}

func TestHash_TooLong(t *testing.T) {
	_, err := newTestHasher().Hash(strings.Repeat("a", MaxPasswordBytes+1))
	require.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestHash_UniqueSalts(t *testing.T) {
	h := newTestHasher()

	hash1, err := h.Hash("samepassword")
	require.NoError(t, err)
	hash2, err := h.Hash("samepassword")
	require.NoError(t, err)

	require.NotEqual(t, hash1, hash2, "hashes should differ due to unique salts")
	require.True(t, h.Verify("samepassword", hash1))
	require.True(t, h.Verify("samepassword", hash2))
}

func TestVerify_WrongPassword(t *testing.T) {
	h := newTestHasher()
	hash, err := h.Hash("correct-password")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
	}{
		{"completely wrong", "wrong-password"},
		{"case difference", "Correct-Password"},
		{"extra space", "correct-password "},
		{"empty password", ""},
		{"prefix", "correct-passwor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.False(t, h.Verify(tt.password, hash))
		})
	}
}

func TestVerify_InvalidHashFormat(t *testing.T) {
	h := newTestHasher()

	for _, invalid := range []string{
		"",
		"plaintext",
		"$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		"$2a$04$short",
	} {
		require.False(t, h.Verify("test-password", invalid), "hash %q", invalid)
	}
}

func TestVerify_AcrossCosts(t *testing.T) {
	// A hash minted under one cost keeps verifying after the cost changes.
	old, err := NewBcryptHasher(bcrypt.MinCost).Hash("pw1")
	require.NoError(t, err)

	require.True(t, NewBcryptHasher(bcrypt.MinCost+1).Verify("pw1", old))
}
