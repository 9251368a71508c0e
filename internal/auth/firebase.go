package auth

import (
	"context"
	"fmt"

	fbauth "firebase.google.com/go/v4/auth"
)

// FirebaseVerifier verifies Firebase Auth ID tokens.
type FirebaseVerifier struct {
	client *fbauth.Client
}

// NewFirebaseVerifier wraps an initialized Firebase Auth client.
func NewFirebaseVerifier(client *fbauth.Client) *FirebaseVerifier {
	return &FirebaseVerifier{client: client}
}

// VerifyToken verifies the ID token signature and expiry against Firebase
// and returns the decoded identity. Invalid and expired tokens are not
// distinguished; both surface as a verification error.
func (v *FirebaseVerifier) VerifyToken(ctx context.Context, token string) (*Identity, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("verifying ID token: %w", err)
	}

	return &Identity{
		UID:    decoded.UID,
		Claims: decoded.Claims,
	}, nil
}

var _ Verifier = (*FirebaseVerifier)(nil)
