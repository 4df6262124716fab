package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/messagely/pkg/cryptox"
	"github.com/aussiebroadwan/messagely/pkg/jwtx"
)

// InitSigningKey builds the HS256 signer and verifier from cfg.SecretKey.
//
// When no secret is configured a random one is generated. Tokens issued by
// such a process stop verifying once it restarts, so a warning is logged.
func InitSigningKey(cfg Config, logger *slog.Logger) (*jwtx.HS256Signer, *jwtx.HS256Verifier, error) {
	secret := cfg.SecretKey
	if secret == "" {
		generated, err := cryptox.GenerateSecret(cryptox.SecretSize256)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to generate signing secret: %w", err)
		}
		secret = generated
		logger.Warn("SECRET_KEY not set, using a random signing secret; tokens will not survive a restart")
	}

	signer, err := jwtx.NewSignerHS256([]byte(secret))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid SECRET_KEY (need at least %d bytes): %w", jwtx.MinSecretBytes, err)
	}
	verifier := jwtx.NewVerifierHS256([]byte(secret), cfg.Issuer)

	logger.Info("signing key ready", "algorithm", signer.Alg())
	return signer, verifier, nil
}
