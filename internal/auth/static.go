package auth

import (
	"context"
)

// StaticVerifier accepts any non-empty token and resolves it to a fixed
// identity. Used in dev mode where no identity provider is configured.
type StaticVerifier struct {
	UID string
}

// VerifyToken returns the fixed identity regardless of token contents.
func (v *StaticVerifier) VerifyToken(ctx context.Context, token string) (*Identity, error) {
	return &Identity{UID: v.UID, Claims: map[string]interface{}{}}, nil
}

var _ Verifier = (*StaticVerifier)(nil)
