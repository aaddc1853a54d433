package events

import "context"

type actorContextKey struct{}

// WithActor attributes the events recorded with ctx to accountID.
func WithActor(ctx context.Context, accountID int) context.Context {
	return context.WithValue(ctx, actorContextKey{}, accountID)
}

// ActorFrom returns the actor in ctx, or fallback when there is none.
func ActorFrom(ctx context.Context, fallback int) int {
	if accountID, ok := ctx.Value(actorContextKey{}).(int); ok {
		return accountID
	}

	return fallback
}
