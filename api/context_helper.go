package api

import (
	"context"
	"time"
)

// DefaultQueryTimeout bounds a database call when no timeout is configured
const DefaultQueryTimeout = 10 * time.Second

// WithQueryTimeout creates a context with query timeout
func WithQueryTimeout(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	if timeout <= 0 {
		timeout = DefaultQueryTimeout
	}
	return context.WithTimeout(parent, timeout)
}

// Identity is the authenticated caller of a request
type Identity struct {
	UserID   string
	Username string
	Admin    bool
	Role     string
}

type identityKey struct{}

// WithIdentity stores id in ctx
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom returns the identity stored in ctx, if any
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}
