package auth

import "context"

type tokenInfoContextKey struct{}

// WithUser stores the token of the authenticated caller in ctx.
func WithUser(ctx context.Context, info TokenInfo) context.Context {
	return context.WithValue(ctx, tokenInfoContextKey{}, info)
}

// GetUser returns the token stored by WithUser, if any.
func GetUser(ctx context.Context) (TokenInfo, bool) {
	info, ok := ctx.Value(tokenInfoContextKey{}).(TokenInfo)
	return info, ok
}
