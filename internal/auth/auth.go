package auth

import (
	"context"
)

// Identity is the decoded result of a verified bearer token.
type Identity struct {
	// UID is the unique subject identifier of the caller.
	UID string

	// Claims carries the remaining decoded token claims.
	Claims map[string]interface{}
}

// Verifier checks a bearer token against the identity provider.
// This interface enables mocking the provider in handler tests.
type Verifier interface {
	// VerifyToken verifies the raw token and returns the decoded identity.
	VerifyToken(ctx context.Context, token string) (*Identity, error)
}

type contextKey string

const identityKey contextKey = "identity"

// WithIdentity attaches a verified identity to the context.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext retrieves the verified identity, if any.
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(identityKey).(*Identity)
	return id, ok
}
