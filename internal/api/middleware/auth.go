package middleware

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/zhaosongzhu/financial-app-backend/internal/auth"
)

// MissingBearerMessage is the error body returned when no usable
// Authorization header is present.
const MissingBearerMessage = "Authorization header with Bearer token is required"

// Auth verifies the bearer token on every request and attaches the decoded
// identity to the request context. A nil verifier means the identity
// provider never initialized; requests then fail with a 500 rather than
// letting unverified traffic through.
func Auth(verifier auth.Verifier, log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				WriteError(w, http.StatusUnauthorized, MissingBearerMessage)
				return
			}

			if verifier == nil {
				WriteError(w, http.StatusInternalServerError, "Identity service is not initialized")
				return
			}

			identity, err := verifier.VerifyToken(r.Context(), token)
			if err != nil {
				log.Warn().Err(err).Str("path", r.URL.Path).Msg("Token verification failed")
				WriteError(w, http.StatusUnauthorized, "Invalid or expired token: "+err.Error())
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), identity)))
		})
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. Reports false for missing headers, other schemes, or empty tokens.
func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}
