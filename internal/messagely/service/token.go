package service

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/messagely/pkg/jwtx"
)

// DefaultIssuer is the iss claim on every token.
const DefaultIssuer = "messagely"

type TokenService struct {
	Signer jwtx.Signer
	Issuer string
	// TTL of zero issues tokens without an exp claim.
	TTL time.Duration
	Now func() time.Time
}

// Issue signs a session token carrying username.
func (s *TokenService) Issue(ctx context.Context, username string) (string, error) {
	if username == "" {
		return "", errors.New("token: empty username")
	}

	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}

	issuer := s.Issuer
	if issuer == "" {
		issuer = DefaultIssuer
	}

	return s.Signer.Sign(jwtx.NewSessionClaims(username, issuer, s.TTL, now))
}
