package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// SecretSize256 is the recommended size in bytes for an HMAC signing secret.
const SecretSize256 = 32

// GenerateSecret returns size bytes of randomness encoded as base64url
// without padding. It is used to mint a signing secret when none is
// configured.
func GenerateSecret(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("secret size must be positive, got %d", size)
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random secret: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// MustGenerateSecret is like GenerateSecret but panics on error.
func MustGenerateSecret(size int) string {
	secret, err := GenerateSecret(size)
	if err != nil {
		panic(fmt.Sprintf("cryptox: failed to generate secret: %v", err))
	}
	return secret
}
