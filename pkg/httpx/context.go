package httpx

import (
	"context"

	"github.com/aussiebroadwan/messagely/pkg/jwtx"
)

type ctxKey string

const (
	CtxKeyUsername ctxKey = "username"
	CtxKeyClaims   ctxKey = "claims"
)

// UsernameFromContext returns the authenticated username, or "".
func UsernameFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUsername).(string); ok {
		return v
	}
	return ""
}

// ClaimsFromContext returns the verified token claims, if any.
func ClaimsFromContext(ctx context.Context) (jwtx.Claims, bool) {
	c, ok := ctx.Value(CtxKeyClaims).(jwtx.Claims)
	return c, ok
}

// ContextWithClaims injects verified claims for downstream handlers.
func ContextWithClaims(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUsername, c.Username)
	ctx = context.WithValue(ctx, CtxKeyClaims, c)
	return ctx
}
