package grpcserver

import (
	"context"

	"github.com/and161185/gatekeeper/internal/authz"
)

type ctxKey string

const principalKey ctxKey = "gk.principal"

// WithPrincipal stores the authenticated principal in context.
func WithPrincipal(ctx context.Context, p authz.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFromCtx fetches the principal stored by AuthUnary.
func PrincipalFromCtx(ctx context.Context) (authz.Principal, bool) {
	p, ok := ctx.Value(principalKey).(authz.Principal)
	return p, ok
}
