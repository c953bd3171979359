package auth

import "context"

type contextKey string

const principalKey contextKey = "principal"

// Principal is the authenticated actor trusted by every ownership check.
type Principal struct {
	UserID string
	Email  string
	Role   string
}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey).(Principal)
	return p, ok
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
